package app_test

import (
	"reflect"
	"strings"
	"testing"

	"realestate_chatbot/internal/app"
	"realestate_chatbot/internal/domain"
)

func TestClassifier_RuleOrder(t *testing.T) {
	c := app.NewClassifier()
	want := []string{"greeting", "off_topic", "menu_number", "menu_heading", "city_investment", "city_mention", "topic"}
	if got := c.RuleNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("rule order: got %v want %v", got, want)
	}
}

func TestClassifier_Classify(t *testing.T) {
	c := app.NewClassifier()
	cases := []struct {
		msg  string
		want domain.Intent
	}{
		{"hi", domain.Intent{Kind: domain.IntentGreeting}},
		{"  Namaste ", domain.Intent{Kind: domain.IntentGreeting}},
		{"hi there", domain.Intent{Kind: domain.IntentUnclassified}},
		{"what is the weather like today", domain.Intent{Kind: domain.IntentOffTopic}},
		{"5", domain.MenuSelection(5)},
		{"8", domain.MenuSelection(8)},
		{"9", domain.Intent{Kind: domain.IntentUnclassified}},
		{"Property Search", domain.MenuSelection(2)},
		{"i need legal information", domain.MenuSelection(4)},
		{"I want to invest in Pune", domain.CityInvestment("pune")},
		{"properties at Hyderabad", domain.CityInvestment("hyderabad")},
		{"investment opportunities in Ahmedabad", domain.Intent{Kind: domain.IntentInvestmentAdvice}},
		{"Mumbai", domain.CityInvestment("mumbai")},
		{"chennai?", domain.CityInvestment("chennai")},
		{"Mumbai and Delhi", domain.Intent{Kind: domain.IntentUnclassified}},
		{"what is the price", domain.Intent{Kind: domain.IntentPropertyValue}},
		{"market value", domain.Intent{Kind: domain.IntentPropertyValue}},
		{"market growth", domain.Intent{Kind: domain.IntentMarketTrends}},
		{"which amenities", domain.Intent{Kind: domain.IntentPropertyFeatures}},
		{"good roi", domain.Intent{Kind: domain.IntentInvestmentAdvice}},
		{"villa", domain.Intent{Kind: domain.IntentPropertyType}},
		{"home loan interest rates", domain.Intent{Kind: domain.IntentFinancing}},
		{"stamp duty", domain.Intent{Kind: domain.IntentLegal}},
		{"which locality", domain.Intent{Kind: domain.IntentLocations}},
		{"the cat sat", domain.Intent{Kind: domain.IntentUnclassified}},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.msg); got != tc.want {
			t.Errorf("Classify(%q) = %+v, want %+v", tc.msg, got, tc.want)
		}
	}
}

func TestClassifier_BareCityNames(t *testing.T) {
	c := app.NewClassifier()
	for _, city := range []string{"mumbai", "delhi", "bangalore", "hyderabad", "kolkata", "chennai", "pune"} {
		for _, msg := range []string{city, strings.ToUpper(city[:1]) + city[1:]} {
			if got := c.Classify(msg); got != domain.CityInvestment(city) {
				t.Errorf("Classify(%q) = %+v, want city investment %s", msg, got, city)
			}
		}
	}
}

func TestIsOffTopic_ShortMessagesNeverOffTopic(t *testing.T) {
	for _, msg := range []string{"tell me jokes", "the cat sat", "a b c"} {
		if app.IsOffTopic(msg) {
			t.Errorf("%q has fewer than four tokens and must not be off-topic", msg)
		}
	}
	if !app.IsOffTopic("who won the cricket match") {
		t.Errorf("expected long unrelated message to be off-topic")
	}
	if app.IsOffTopic("who builds flats near the stadium") {
		t.Errorf("keyword 'flat' should keep the message on-topic")
	}
}

func TestClassifier_MentionedCity(t *testing.T) {
	c := app.NewClassifier()
	cases := []struct {
		msg  string
		city string
		ok   bool
	}{
		{"Pune", "pune", true},
		{"pune pune", "pune", true},
		{"pune or delhi", "", false},
		{"tell me about kolkata please", "", false},
		{"punekar", "", false},
		{"ahmedabad", "", false},
	}
	for _, tc := range cases {
		city, ok := c.MentionedCity(tc.msg)
		if city != tc.city || ok != tc.ok {
			t.Errorf("MentionedCity(%q) = %q,%v want %q,%v", tc.msg, city, ok, tc.city, tc.ok)
		}
	}
}
