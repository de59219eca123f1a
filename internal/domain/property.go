package domain

// AreaPrice is a per-area override inside a city.
type AreaPrice struct {
	Area         string  `yaml:"area" json:"area"`
	PricePerSqft float64 `yaml:"price_per_sqft" json:"price_per_sqft"`
}

// CityPrice holds the price-per-square-foot reference data for one city.
// Areas are ordered: the resolver returns the first area contained in the query.
type CityPrice struct {
	City              string      `yaml:"city" json:"city"`
	BasePricePerSqft  float64     `yaml:"base_price_per_sqft" json:"base_price_per_sqft"`
	PremiumAreas      []string    `yaml:"premium_areas" json:"premium_areas"`
	PremiumMultiplier float64     `yaml:"premium_multiplier" json:"premium_multiplier"`
	Areas             []AreaPrice `yaml:"areas" json:"areas"`
}

// CityPriceTable is the ordered, read-only price table. Enumeration order
// decides which city wins when a location names more than one.
type CityPriceTable []CityPrice

// PropertyDetails are the structured inputs for a valuation.
// Optional attributes are nil when absent.
type PropertyDetails struct {
	Location           string   `json:"location"`
	SquareFootage      *float64 `json:"squareFootage,omitempty"`
	Bedrooms           *int     `json:"bedrooms,omitempty"`
	Bathrooms          *int     `json:"bathrooms,omitempty"`
	YearBuilt          *int     `json:"yearBuilt,omitempty"`
	AdditionalFeatures *string  `json:"additionalFeatures,omitempty"`
}

// CityProfile is the investment summary rendered for a city query.
type CityProfile struct {
	Areas      []string
	Returns    string
	Growth     string
	Properties string
}
