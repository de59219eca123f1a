package domain

// IntentKind names the response category a message was classified into.
type IntentKind string

const (
	IntentGreeting         IntentKind = "greeting"
	IntentOffTopic         IntentKind = "off_topic"
	IntentMenuSelection    IntentKind = "menu_selection"
	IntentCityInvestment   IntentKind = "city_investment"
	IntentPropertyValue    IntentKind = "property_valuation"
	IntentMarketTrends     IntentKind = "market_trends"
	IntentPropertyFeatures IntentKind = "property_features"
	IntentInvestmentAdvice IntentKind = "investment_advice"
	IntentPropertyType     IntentKind = "property_type"
	IntentFinancing        IntentKind = "financing"
	IntentLegal            IntentKind = "legal"
	IntentLocations        IntentKind = "locations"
	IntentUnclassified     IntentKind = "unclassified"

	// IntentEmpty is produced by the dialogue layer for blank input; the
	// classifier never returns it.
	IntentEmpty IntentKind = "empty"
)

// Intent is the classifier's verdict. Menu is set for IntentMenuSelection,
// City (lowercase) for IntentCityInvestment.
type Intent struct {
	Kind IntentKind
	Menu int
	City string
}

func MenuSelection(n int) Intent        { return Intent{Kind: IntentMenuSelection, Menu: n} }
func CityInvestment(city string) Intent { return Intent{Kind: IntentCityInvestment, City: city} }
