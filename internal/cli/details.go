package cli

import (
	"github.com/spf13/cobra"

	"realestate_chatbot/internal/domain"
)

// detailFlags binds the property-detail flags shared by ask and estimate.
type detailFlags struct {
	location  string
	sqft      float64
	bedrooms  int
	bathrooms int
	yearBuilt int
	features  string
}

func (f *detailFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.location, "location", "", "free-text location, e.g. \"Bandra, Mumbai\"")
	cmd.Flags().Float64Var(&f.sqft, "sqft", 0, "built-up area in square feet")
	cmd.Flags().IntVar(&f.bedrooms, "bedrooms", 0, "number of bedrooms")
	cmd.Flags().IntVar(&f.bathrooms, "bathrooms", 0, "number of bathrooms")
	cmd.Flags().IntVar(&f.yearBuilt, "year-built", 0, "year of construction")
	cmd.Flags().StringVar(&f.features, "features", "", "additional features, e.g. \"parking, gym\"")
}

// details returns nil when no detail flag was given.
func (f *detailFlags) details(cmd *cobra.Command) *domain.PropertyDetails {
	changed := func(name string) bool { return cmd.Flags().Changed(name) }
	if !changed("location") && !changed("sqft") && !changed("bedrooms") &&
		!changed("bathrooms") && !changed("year-built") && !changed("features") {
		return nil
	}
	d := &domain.PropertyDetails{Location: f.location}
	if changed("sqft") {
		d.SquareFootage = &f.sqft
	}
	if changed("bedrooms") {
		d.Bedrooms = &f.bedrooms
	}
	if changed("bathrooms") {
		d.Bathrooms = &f.bathrooms
	}
	if changed("year-built") {
		d.YearBuilt = &f.yearBuilt
	}
	if changed("features") {
		d.AdditionalFeatures = &f.features
	}
	return d
}
