package app

import "realestate_chatbot/internal/domain"

const (
	ContactPhone = "+91 8859985607"
	ContactEmail = "vasurastogi213@gmail.com"

	divider = "━━━━━━━━━━━━━━━━━━━━━━━━"

	noMessageText    = "I didn't receive a message. How can I help you with real estate in India today?"
	greetingText     = "👋 Hello! How can I help you with your real estate queries today?"
	unclassifiedText = "I'm not sure what you're asking about. Could you please provide more details about your real estate query?"
	menuRangeText    = "Please enter a number between 1 and 8 for specific information."
)

// section is a numbered block of bullet points.
type section struct {
	Heading string
	Items   []string
}

// topicTemplate is the fixed multi-section reply for a topic intent.
type topicTemplate struct {
	Title      string
	Intro      string
	Sections   []section
	Highlights *section
	Closing    string
}

// menuTemplate is the reply for a numbered menu option.
type menuTemplate struct {
	Title   string
	Lead    string
	Options []string
	Closing string
}

type contactTemplate struct {
	Title        string
	Intro        string
	AvailableFor []string
	Hours        string
	Immediate    []string
}

var offTopicTemplate = struct {
	Lead    string
	Topics  []string
	Closing string
}{
	Lead: "I apologize, but I'm specialized in Indian real estate topics only. I can help you with:",
	Topics: []string{
		"Property valuations and price estimates",
		"Investment opportunities in Indian cities",
		"Market trends and analysis",
		"Financing and loan options",
		"Legal aspects of real estate",
	},
	Closing: "Please feel free to ask about any of these topics!",
}

var menuTemplates = map[int]menuTemplate{
	1: {
		Title: "💰 *Property Valuation*",
		Lead:  "Please provide:",
		Options: []string{
			"Location", "Square footage", "Bedrooms/bathrooms", "Year built", "Additional features",
		},
		Closing: "You can enter these details in the form on the right, or describe the property you're interested in evaluating.",
	},
	2: {
		Title: "🏠 *Property Search*",
		Lead:  "To help you find the perfect property, please tell me:",
		Options: []string{
			"Which city are you interested in?",
			"What type of property are you looking for?",
			"Do you have a specific budget in mind?",
			"Any particular features or amenities you need?",
		},
		Closing: "I can provide insights on different locations, property types, and help compare features.",
	},
	3: {
		Title: "💳 *Financial Guidance*",
		Lead:  "I can help with real estate financial planning. Please specify:",
		Options: []string{
			"Your budget or loan amount needed",
			"Preferred down payment percentage",
			"Loan tenure preference (5-30 years)",
			"Monthly income (for EMI calculation)",
		},
		Closing: "I can provide information on loan options, EMI calculations, and investment ROI analysis.",
	},
	4: {
		Title: "⚖️ *Legal Information*",
		Lead:  "To help with legal aspects of real estate, I can provide information on:",
		Options: []string{
			"Documentation required for property purchase/sale",
			"Registration process and stamp duty",
			"Compliance requirements",
			"Legal due diligence",
		},
		Closing: "Which specific legal aspect of real estate transactions would you like to know more about?",
	},
	5: {
		Title: "📊 *Market Trends*",
		Lead:  "I can provide the latest real estate market trends and analysis. What would you like to know about?",
		Options: []string{
			"City-specific market trends",
			"Segment performance (residential/commercial)",
			"Investment hotspots",
			"Future projections",
		},
		Closing: "Specify a city or region for detailed market insights.",
	},
	6: {
		Title: "🏢 *Property Types*",
		Lead:  "I can provide information on different property types:",
		Options: []string{
			"Residential properties (apartments, villas, independent houses)",
			"Commercial properties (office spaces, retail, warehouses)",
			"Land/plots",
			"Special purpose properties",
		},
		Closing: "Which property type are you interested in learning more about?",
	},
	7: {
		Title: "🏗️ *Property Features*",
		Lead:  "I can help you understand how different features affect property value:",
		Options: []string{
			"Location advantages",
			"Size and layout considerations",
			"Amenities and facilities",
			"Construction quality and specifications",
		},
		Closing: "Which aspects are most important for your property considerations?",
	},
}

var contactSupport = contactTemplate{
	Title:        "📱 *Contact Support*",
	Intro:        "*Get in touch with our real estate expert:*",
	AvailableFor: []string{"Property consultations", "Market insights", "Investment guidance", "Site visits"},
	Hours:        "Mon-Sat: 9:00 AM - 7:00 PM IST",
	Immediate:    []string{"Call/WhatsApp: " + ContactPhone, "Email for detailed queries", "Response time: Within 2 hours"},
}

var topicTemplates = map[domain.IntentKind]topicTemplate{
	domain.IntentPropertyValue: {
		Title: "💰 *Property Valuation*",
		Intro: "*Factors Affecting Value:*",
		Sections: []section{
			{"Location", []string{"City tier", "Neighborhood", "Proximity to amenities", "Connectivity"}},
			{"Property Specifications", []string{"Built-up area", "Bedrooms/bathrooms", "Floor number", "Age of construction"}},
			{"Additional Features", []string{"Parking availability", "Security systems", "Amenities (gym, pool, etc.)", "Furnishing status"}},
			{"Market Factors", []string{"Current demand", "Supply in the area", "Recent transactions", "Future development plans"}},
		},
		Closing: "To get an accurate valuation, please provide property details using the form.",
	},
	domain.IntentMarketTrends: {
		Title: "📊 *Indian Real Estate Market Trends*",
		Intro: "*Current Insights:*",
		Sections: []section{
			{"Market Overview", []string{
				"Residential sector: Growing at 9.5% YoY",
				"Commercial sector: Stable with 7% YoY growth",
				"Affordable housing: High demand in Tier 2 cities",
				"Luxury segment: Recovering in metro cities",
			}},
			{"City-wise Growth", []string{"Hyderabad: +14.3%", "Bengaluru: +11.8%", "Pune: +9.6%", "Mumbai: +8.2%", "Delhi-NCR: +7.4%"}},
			{"Key Drivers", []string{"Infrastructure development", "Remote work policies", "Foreign investment", "Government initiatives"}},
			{"2025 Projections", []string{"Residential prices: +12-15%", "Commercial yields: 7-9%", "Rental market: +8-10%", "NRI investments: +20%"}},
		},
		Highlights: &section{"Recent Trends:", []string{"Post-pandemic recovery: +15%", "Rental market growth: +8%", "Commercial revival: +12%"}},
		Closing:    "Please specify your investment criteria for detailed market analysis.",
	},
	domain.IntentPropertyFeatures: {
		Title: "🏗️ *Property Features & Amenities*",
		Intro: "*Key Value Factors:*",
		Sections: []section{
			{"Location Advantages", []string{"Metro/railway connectivity", "School and hospital proximity", "Shopping and entertainment", "Road connectivity"}},
			{"Property Specifications", []string{"Total built-up area", "Bedrooms and bathrooms", "Floor number and view", "Age and condition"}},
			{"Modern Amenities", []string{"Parking (covered/open)", "Power backup", "Security system", "Clubhouse facilities"}},
			{"Premium Features", []string{"Modular kitchen", "Smart home features", "Garden/balcony", "Furnishing status"}},
		},
		Highlights: &section{"Value Impact:", []string{"Each premium feature: +2-5%", "Modern amenities: +5-10%", "Location benefits: +10-15%"}},
		Closing:    "Which features are most important to you?",
	},
	domain.IntentInvestmentAdvice: {
		Title: "💼 *Real Estate Investment Guide*",
		Intro: "*Investment Options:*",
		Sections: []section{
			{"Property Types", []string{"Residential properties", "Commercial spaces", "Plots/Land", "REITs"}},
			{"Key Metrics", []string{"Location growth potential", "Rental yield (2-4%)", "Capital appreciation", "Property management"}},
			{"Financial Planning", []string{"Down payment (20-30%)", "Home loan options", "Property taxes", "Maintenance costs"}},
			{"Risk Assessment", []string{"Market fluctuations", "Legal issues", "Maintenance challenges", "Tenant management"}},
		},
		Highlights: &section{"Investment Tips:", []string{"Diversify across locations", "Consider rental potential", "Factor in maintenance costs", "Plan for long-term growth"}},
		Closing:    "What type of investment interests you?",
	},
	domain.IntentPropertyType: {
		Title: "🏘️ *Property Types & Categories*",
		Intro: "*Available Options:*",
		Sections: []section{
			{"Residential Properties", []string{"Apartments/Flats", "Independent Houses", "Villas/Bungalows", "Penthouses"}},
			{"Commercial Properties", []string{"Office Spaces", "Retail Shops", "Warehouses", "Showrooms"}},
			{"Land/Plots", []string{"Residential Plots", "Commercial Plots", "Agricultural Land"}},
			{"Special Properties", []string{"Farmhouses", "Holiday Homes", "Industrial Units"}},
		},
		Highlights: &section{"Selection Guide:", []string{
			"Residential: Best for first-time buyers",
			"Commercial: Higher rental yields",
			"Land: Long-term appreciation",
			"Special: Unique investment opportunities",
		}},
		Closing: "Which property type interests you?",
	},
	domain.IntentFinancing: {
		Title: "💳 *Real Estate Financing Guide*",
		Intro: "*Loan Options:*",
		Sections: []section{
			{"Home Loans", []string{"Interest rates: 6.5-8.5%", "Tenure: up to 30 years", "Down payment: 20-30%", "EMI calculator available"}},
			{"Lending Institutions", []string{"Public sector banks", "Private sector banks", "Housing finance companies"}},
			{"Additional Costs", []string{"Registration charges", "Stamp duty", "Property tax", "Maintenance charges"}},
			{"Tax Benefits", []string{"Home loan interest deduction", "Principal repayment deduction", "Property tax deduction"}},
		},
		Highlights: &section{"Financial Tips:", []string{"Compare multiple lenders", "Consider pre-EMI options", "Factor in all costs", "Plan for long-term EMI"}},
		Closing:    "Would you like specific loan details for your budget?",
	},
	domain.IntentLegal: {
		Title: "⚖️ *Legal Aspects of Real Estate*",
		Intro: "*Essential Information:*",
		Sections: []section{
			{"Required Documents", []string{"Sale deed", "Property tax receipts", "Building approval plans", "NOC from authorities"}},
			{"Verification Process", []string{"Title verification", "Encumbrance certificate", "Property tax clearance", "Building compliance"}},
			{"Registration Steps", []string{"Stamp duty payment", "Document registration", "Mutation entry"}},
			{"Society/Association", []string{"Maintenance charges", "Society rules", "Common area rights"}},
		},
		Highlights: &section{"Legal Tips:", []string{"Always verify documents", "Check property history", "Understand local laws", "Keep records updated"}},
		Closing:    "Which legal aspect would you like to know more about?",
	},
	domain.IntentLocations: {
		Title: "📍 *Real Estate Locations Guide*",
		Intro: "*Popular Cities:*",
		Sections: []section{
			{"Tier 1 Cities", []string{"Mumbai: ₹15,000-35,000/sqft", "Delhi NCR: ₹8,000-25,000/sqft", "Bangalore: ₹6,000-18,000/sqft", "Hyderabad: ₹5,000-12,000/sqft"}},
			{"Tier 2 Cities", []string{"Pune: ₹5,500-12,000/sqft", "Ahmedabad: ₹3,500-8,000/sqft", "Jaipur: ₹3,200-7,500/sqft", "Lucknow: ₹3,000-6,500/sqft"}},
			{"Emerging Markets", []string{"Kochi: ₹4,500-9,000/sqft", "Bhubaneswar: ₹3,200-6,500/sqft", "Indore: ₹3,000-6,000/sqft", "Coimbatore: ₹3,800-7,500/sqft"}},
			{"Location Selection Factors", []string{"Infrastructure development", "Employment opportunities", "Lifestyle amenities", "Future growth projections"}},
		},
		Closing: "Which location would you like to know more about?",
	},
}

// cityInvestmentTemplate fills the investment layout from a profile. The
// title carries the capitalised name, the closing line the name as given.
func cityInvestmentTemplate(city string, p domain.CityProfile) topicTemplate {
	display := displayCity(city)
	return topicTemplate{
		Title: "🏢 *Investment Opportunities in " + display + "*",
		Intro: "*Top Areas for Investment:*",
		Sections: []section{
			{"High-Potential Locations", p.Areas},
			{"Investment Returns", []string{
				"Expected ROI: " + p.Returns,
				"Growth potential: " + p.Growth,
				"Current trends: Positive",
			}},
			{"Recommended Properties", []string{p.Properties}},
			{"Budget Recommendations", []string{"Entry level: ₹40L - ₹80L", "Mid-range: ₹80L - ₹1.5Cr", "Premium: ₹1.5Cr+"}},
		},
		Highlights: &section{"Investment Tips:", []string{
			"Look for infrastructure development plans",
			"Consider connectivity and amenities",
			"Research builder reputation",
			"Evaluate rental yield potential",
		}},
		Closing: "Would you like more specific information about any of these areas in " + city + "?",
	}
}
