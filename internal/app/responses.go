package app

import (
	"strconv"
	"strings"

	"realestate_chatbot/internal/domain"
)

var sectionMarkers = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣"}

// Renderer turns an intent into reply text. It only reads package-level
// templates and is safe for concurrent use.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// Render never returns an empty string.
func (Renderer) Render(in domain.Intent) string {
	switch in.Kind {
	case domain.IntentGreeting:
		return greetingText
	case domain.IntentOffTopic:
		return renderOffTopic()
	case domain.IntentMenuSelection:
		return renderMenu(in.Menu)
	case domain.IntentCityInvestment:
		return renderCityInvestment(in.City)
	case domain.IntentEmpty:
		return noMessageText
	}
	if t, ok := topicTemplates[in.Kind]; ok {
		return t.render()
	}
	return unclassifiedText
}

func renderOffTopic() string {
	var b strings.Builder
	b.WriteString(offTopicTemplate.Lead + "\n\n")
	for _, t := range offTopicTemplate.Topics {
		b.WriteString("• " + t + "\n")
	}
	b.WriteString("\n" + offTopicTemplate.Closing)
	return b.String()
}

func renderMenu(n int) string {
	if n == 8 {
		return contactSupport.render()
	}
	t, ok := menuTemplates[n]
	if !ok {
		return menuRangeText
	}
	var b strings.Builder
	b.WriteString(t.Title + "\n\n" + t.Lead + "\n\n")
	for i, o := range t.Options {
		b.WriteString(strconv.Itoa(i+1) + ". " + o + "\n")
	}
	b.WriteString("\n" + t.Closing)
	return b.String()
}

func renderCityInvestment(city string) string {
	key := strings.ToLower(city)
	profile, ok := cityProfiles[key]
	if !ok {
		profile = genericCityProfile
	}
	return cityInvestmentTemplate(key, profile).render()
}

// displayCity upper-cases the first letter of a city key.
func displayCity(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

func (t topicTemplate) render() string {
	var b strings.Builder
	b.WriteString(t.Title + "\n\n")
	b.WriteString(t.Intro + "\n" + divider + "\n\n")
	for i, s := range t.Sections {
		b.WriteString(sectionMarkers[i] + " *" + s.Heading + "*\n")
		for _, item := range s.Items {
			b.WriteString("   • " + item + "\n")
		}
		b.WriteString("\n")
	}
	if t.Highlights != nil {
		b.WriteString("💡 *" + t.Highlights.Heading + "*\n")
		for _, item := range t.Highlights.Items {
			b.WriteString("• " + item + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(t.Closing)
	return b.String()
}

func (t contactTemplate) render() string {
	var b strings.Builder
	b.WriteString(t.Title + "\n\n")
	b.WriteString(t.Intro + "\n" + divider + "\n\n")
	b.WriteString("📞 Phone: " + ContactPhone + "\n")
	b.WriteString("📧 Email: " + ContactEmail + "\n\n")
	b.WriteString("Available for:\n")
	for _, s := range t.AvailableFor {
		b.WriteString("• " + s + "\n")
	}
	b.WriteString("\n⏰ *Available Hours:*\n" + t.Hours + "\n\n")
	b.WriteString("For immediate assistance:\n")
	for i, s := range t.Immediate {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + s)
	}
	return b.String()
}
