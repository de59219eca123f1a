package app

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"realestate_chatbot/internal/domain"
)

var greetings = map[string]bool{
	"hi": true, "hello": true, "hey": true, "hola": true, "namaste": true, "greetings": true,
}

// headings map menu titles typed as text onto their menu number. Ordered.
var headings = []struct {
	Text string
	Menu int
}{
	{"property valuation", 1},
	{"property search", 2},
	{"financial guidance", 3},
	{"legal information", 4},
}

var (
	menuRe           = regexp.MustCompile(`^[1-8]$`)
	cityInvestmentRe = regexp.MustCompile(`(?i)(?:invest|investment|property|properties|buy|opportunities).*(?:in|at)\s+(\w+)`)
	cityMentionRe    = regexp.MustCompile(`(?i)\b(mumbai|delhi|bangalore|hyderabad|kolkata|chennai|pune)\b`)
)

// shortMessageLimit is the length (in characters) below which a bare city
// mention counts as an investment query.
const shortMessageLimit = 20

// topics are tested in this order; the first match wins.
var topics = []struct {
	Kind domain.IntentKind
	Re   *regexp.Regexp
}{
	{domain.IntentPropertyValue, regexp.MustCompile(`(?i)(?:value|valuation|price|worth|estimate|cost|what is the price of|how much is|how much would|what would it cost)`)},
	{domain.IntentMarketTrends, regexp.MustCompile(`(?i)(?:trend|growth|appreciation|increase|decrease|market|statistics|data|reports?|analytics|research|study|projection)`)},
	{domain.IntentPropertyFeatures, regexp.MustCompile(`(?i)(?:features?|amenities|facility|service|specification|include|furnish|appliance|what does it have|what is included|what comes with)`)},
	{domain.IntentInvestmentAdvice, regexp.MustCompile(`(?i)(?:invest|roi|return|yield|profit|appreciation|growth|potential|opportunity|portfolio|diversify|strategy|plan)`)},
	{domain.IntentPropertyType, regexp.MustCompile(`(?i)(?:type|category|kind|style|apartment|flat|house|villa|plot|land|commercial|residential|office|retail|warehouse|industrial)`)},
	{domain.IntentFinancing, regexp.MustCompile(`(?i)(?:loan|mortgage|finance|payment|emi|interest|down payment|installment|credit|bank|lend|borrow)`)},
	{domain.IntentLegal, regexp.MustCompile(`(?i)(?:legal|document|registration|stamp duty|agreement|contract|tax|compliance|regulation|law|permit|approval|license|NOC|certificate)`)},
	{domain.IntentLocations, regexp.MustCompile(`(?i)(?:location|area|place|neighborhood|locality|region|zone|sector|where|which place|which area)`)},
}

// rule is one step of the classification cascade.
type rule struct {
	Name  string
	Match func(msg string) (domain.Intent, bool)
}

// Classifier maps a raw message onto exactly one intent. It holds no
// mutable state.
type Classifier struct {
	rules []rule
}

func NewClassifier() *Classifier {
	c := &Classifier{}
	c.rules = []rule{
		{"greeting", matchGreeting},
		{"off_topic", matchOffTopic},
		{"menu_number", matchMenuNumber},
		{"menu_heading", matchHeading},
		{"city_investment", matchCityInvestment},
		{"city_mention", c.matchCityMention},
		{"topic", matchTopic},
	}
	return c
}

// Classify is total: unmatched input yields IntentUnclassified.
func (c *Classifier) Classify(msg string) domain.Intent {
	for _, r := range c.rules {
		if in, ok := r.Match(msg); ok {
			return in
		}
	}
	return domain.Intent{Kind: domain.IntentUnclassified}
}

// RuleNames lists the cascade in evaluation order.
func (c *Classifier) RuleNames() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Name
	}
	return out
}

// MentionedCity reports the single major city named in a short message.
// Messages of 20+ characters, or naming more than one distinct city, report
// nothing.
func (c *Classifier) MentionedCity(msg string) (string, bool) {
	if utf8.RuneCountInString(msg) >= shortMessageLimit {
		return "", false
	}
	city := ""
	for _, m := range cityMentionRe.FindAllStringSubmatch(msg, -1) {
		name := strings.ToLower(m[1])
		if city != "" && city != name {
			return "", false
		}
		city = name
	}
	return city, city != ""
}

func (c *Classifier) matchCityMention(msg string) (domain.Intent, bool) {
	if city, ok := c.MentionedCity(msg); ok {
		return domain.CityInvestment(city), true
	}
	return domain.Intent{}, false
}

// IsOffTopic is true for messages of four or more tokens that contain none
// of the real-estate keywords.
func IsOffTopic(msg string) bool {
	if len(strings.Fields(msg)) < 4 {
		return false
	}
	lower := strings.ToLower(msg)
	return !containsAny(lower, realEstateKeywords)
}

func matchGreeting(msg string) (domain.Intent, bool) {
	if greetings[strings.ToLower(strings.TrimSpace(msg))] {
		return domain.Intent{Kind: domain.IntentGreeting}, true
	}
	return domain.Intent{}, false
}

func matchOffTopic(msg string) (domain.Intent, bool) {
	if IsOffTopic(msg) {
		return domain.Intent{Kind: domain.IntentOffTopic}, true
	}
	return domain.Intent{}, false
}

func matchMenuNumber(msg string) (domain.Intent, bool) {
	if !menuRe.MatchString(msg) {
		return domain.Intent{}, false
	}
	n, _ := strconv.Atoi(msg)
	return domain.MenuSelection(n), true
}

func matchHeading(msg string) (domain.Intent, bool) {
	lower := strings.ToLower(strings.TrimSpace(msg))
	for _, h := range headings {
		if strings.Contains(lower, h.Text) {
			return domain.MenuSelection(h.Menu), true
		}
	}
	return domain.Intent{}, false
}

func matchCityInvestment(msg string) (domain.Intent, bool) {
	m := cityInvestmentRe.FindStringSubmatch(msg)
	if m == nil {
		return domain.Intent{}, false
	}
	city := strings.ToLower(m[1])
	for _, c := range majorCities {
		if c == city {
			return domain.CityInvestment(city), true
		}
	}
	return domain.Intent{}, false
}

func matchTopic(msg string) (domain.Intent, bool) {
	for _, t := range topics {
		if t.Re.MatchString(msg) {
			return domain.Intent{Kind: t.Kind}, true
		}
	}
	return domain.Intent{}, false
}
