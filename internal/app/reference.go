package app

import "realestate_chatbot/internal/domain"

// DefaultPricePerSqft is returned for locations outside the price table.
const DefaultPricePerSqft = 8000

// DefaultPriceTable returns the reference price table (INR per sq ft).
// Each call builds a fresh value; callers construct it once at startup and
// share it read-only.
func DefaultPriceTable() domain.CityPriceTable {
	return domain.CityPriceTable{
		// tier 1
		{
			City: "mumbai", BasePricePerSqft: 25000,
			PremiumAreas: []string{"bandra", "juhu", "worli", "colaba"}, PremiumMultiplier: 2.5,
			Areas: []domain.AreaPrice{
				{Area: "bandra", PricePerSqft: 45000},
				{Area: "juhu", PricePerSqft: 50000},
				{Area: "worli", PricePerSqft: 48000},
				{Area: "colaba", PricePerSqft: 47000},
				{Area: "andheri", PricePerSqft: 25000},
				{Area: "thane", PricePerSqft: 15000},
				{Area: "navi mumbai", PricePerSqft: 12000},
			},
		},
		{
			City: "delhi", BasePricePerSqft: 15000,
			PremiumAreas: []string{"south delhi", "delhi ncr", "dwarka"}, PremiumMultiplier: 2,
			Areas: []domain.AreaPrice{
				{Area: "south delhi", PricePerSqft: 30000},
				{Area: "delhi ncr", PricePerSqft: 25000},
				{Area: "dwarka", PricePerSqft: 12000},
				{Area: "rohini", PricePerSqft: 10000},
				{Area: "mayur vihar", PricePerSqft: 11000},
			},
		},
		{
			City: "bangalore", BasePricePerSqft: 12000,
			PremiumAreas: []string{"indiranagar", "koramangala", "whitefield"}, PremiumMultiplier: 1.8,
			Areas: []domain.AreaPrice{
				{Area: "indiranagar", PricePerSqft: 18000},
				{Area: "koramangala", PricePerSqft: 20000},
				{Area: "whitefield", PricePerSqft: 15000},
				{Area: "electronic city", PricePerSqft: 8000},
				{Area: "marathahalli", PricePerSqft: 10000},
			},
		},
		// tier 2
		{
			City: "pune", BasePricePerSqft: 8000,
			PremiumAreas: []string{"koregaon park", "kalyani nagar"}, PremiumMultiplier: 1.6,
			Areas: []domain.AreaPrice{
				{Area: "koregaon park", PricePerSqft: 15000},
				{Area: "kalyani nagar", PricePerSqft: 14000},
				{Area: "hinjewadi", PricePerSqft: 7500},
				{Area: "wakad", PricePerSqft: 7000},
			},
		},
		{
			City: "hyderabad", BasePricePerSqft: 7000,
			PremiumAreas: []string{"banjara hills", "jubilee hills"}, PremiumMultiplier: 1.7,
			Areas: []domain.AreaPrice{
				{Area: "banjara hills", PricePerSqft: 12000},
				{Area: "jubilee hills", PricePerSqft: 13000},
				{Area: "gachibowli", PricePerSqft: 8000},
				{Area: "madhapur", PricePerSqft: 7500},
			},
		},
		{
			City: "chennai", BasePricePerSqft: 9000,
			PremiumAreas: []string{"boat club", "adyar"}, PremiumMultiplier: 1.8,
			Areas: []domain.AreaPrice{
				{Area: "boat club", PricePerSqft: 18000},
				{Area: "adyar", PricePerSqft: 15000},
				{Area: "velachery", PricePerSqft: 8000},
				{Area: "omr", PricePerSqft: 7000},
			},
		},
		// tier 3
		{
			City: "ahmedabad", BasePricePerSqft: 5500,
			PremiumAreas: []string{"bodakdev", "satellite"}, PremiumMultiplier: 1.5,
			Areas: []domain.AreaPrice{
				{Area: "bodakdev", PricePerSqft: 8000},
				{Area: "satellite", PricePerSqft: 7500},
				{Area: "bopal", PricePerSqft: 5000},
				{Area: "sg highway", PricePerSqft: 6000},
			},
		},
		{
			City: "kolkata", BasePricePerSqft: 6000,
			PremiumAreas: []string{"ballygunge", "alipore"}, PremiumMultiplier: 1.6,
			Areas: []domain.AreaPrice{
				{Area: "ballygunge", PricePerSqft: 12000},
				{Area: "alipore", PricePerSqft: 11000},
				{Area: "rajarhat", PricePerSqft: 5500},
				{Area: "salt lake", PricePerSqft: 6500},
			},
		},
	}
}

// majorCities are the cities the classifier recognises for investment queries.
var majorCities = []string{"mumbai", "delhi", "bangalore", "hyderabad", "kolkata", "chennai", "pune"}

var cityProfiles = map[string]domain.CityProfile{
	"mumbai": {
		Areas:      []string{"Bandra", "Worli", "Andheri", "Powai", "Navi Mumbai"},
		Returns:    "8-12%",
		Growth:     "High",
		Properties: "Premium residential and commercial spaces",
	},
	"delhi": {
		Areas:      []string{"South Delhi", "Dwarka", "Noida Extension", "Gurgaon", "Greater Noida"},
		Returns:    "7-10%",
		Growth:     "Moderate to High",
		Properties: "Residential plots and luxury apartments",
	},
	"bangalore": {
		Areas:      []string{"Whitefield", "Electronic City", "Hebbal", "Sarjapur Road", "Yelahanka"},
		Returns:    "8-14%",
		Growth:     "Very High",
		Properties: "Tech-hub adjacent residential and office spaces",
	},
	"hyderabad": {
		Areas:      []string{"Gachibowli", "HITEC City", "Kondapur", "Kukatpally", "Manikonda"},
		Returns:    "9-15%",
		Growth:     "Very High",
		Properties: "IT corridor properties and gated communities",
	},
	"kolkata": {
		Areas:      []string{"New Town", "Salt Lake", "Rajarhat", "Ballygunge", "Alipore"},
		Returns:    "6-9%",
		Growth:     "Moderate",
		Properties: "Mixed residential and developing commercial areas",
	},
	"chennai": {
		Areas:      []string{"OMR", "ECR", "Porur", "Sholinganallur", "Siruseri"},
		Returns:    "7-11%",
		Growth:     "Moderate to High",
		Properties: "IT corridor apartments and beach-side properties",
	},
	"pune": {
		Areas:      []string{"Kharadi", "Hinjewadi", "Baner", "Wakad", "Kothrud"},
		Returns:    "8-12%",
		Growth:     "High",
		Properties: "Tech-park adjacent properties and township projects",
	},
}

var genericCityProfile = domain.CityProfile{
	Areas:      []string{"Prime localities", "Developing areas"},
	Returns:    "7-10%",
	Growth:     "Varies by location",
	Properties: "Mixed residential and commercial",
}

// realEstateKeywords keep a message on-topic when any of them is a substring.
var realEstateKeywords = []string{
	"property", "house", "apartment", "flat", "villa", "real estate", "home",
	"buy", "rent", "sell", "price", "valuation", "loan", "mortgage", "emi",
	"location", "area", "city", "market", "investment", "commercial",
	"residential", "land", "plot", "construction", "builder", "broker",
	"agent", "bedroom", "bathroom", "square foot", "sqft", "amenities",
	"feature", "floor", "society", "registration", "legal", "document",
	"stamp duty", "property tax", "reit", "capital gain", "rate", "return",
	"mumbai", "delhi", "bangalore", "hyderabad", "chennai", "kolkata",
	"pune", "ahmedabad", "jaipur", "lucknow", "kochi", "chandigarh",
	"gurgaon", "noida", "goa", "indore", "bhubaneswar", "coimbatore",
}
