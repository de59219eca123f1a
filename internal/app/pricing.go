package app

import (
	"fmt"
	"strings"

	"realestate_chatbot/internal/domain"
)

// Resolver maps free-text locations to a price per square foot.
// The table is never mutated after construction, so a Resolver is safe for
// concurrent use.
type Resolver struct {
	table domain.CityPriceTable
}

func NewResolver(table domain.CityPriceTable) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the first matching area override of the first matching
// city, that city's base price, or DefaultPricePerSqft.
func (r *Resolver) Resolve(location string) float64 {
	loc := strings.ToLower(location)
	for _, c := range r.table {
		if !strings.Contains(loc, c.City) {
			continue
		}
		for _, a := range c.Areas {
			if strings.Contains(loc, a.Area) {
				return a.PricePerSqft
			}
		}
		return c.BasePricePerSqft
	}
	return DefaultPricePerSqft
}

// Table exposes the table for read-only listing.
func (r *Resolver) Table() domain.CityPriceTable { return r.table }

// ValidatePriceTable checks the invariants a loaded table must hold.
func ValidatePriceTable(t domain.CityPriceTable) error {
	if len(t) == 0 {
		return fmt.Errorf("%w: price table is empty", domain.ErrValidation)
	}
	seen := make(map[string]bool, len(t))
	for _, c := range t {
		if c.City == "" || c.City != strings.ToLower(c.City) {
			return fmt.Errorf("%w: city key %q must be non-empty lowercase", domain.ErrValidation, c.City)
		}
		if seen[c.City] {
			return fmt.Errorf("%w: duplicate city %q", domain.ErrValidation, c.City)
		}
		seen[c.City] = true
		if c.BasePricePerSqft <= 0 {
			return fmt.Errorf("%w: %s: base price must be positive", domain.ErrValidation, c.City)
		}
		for _, a := range c.Areas {
			if a.Area == "" || a.Area != strings.ToLower(a.Area) {
				return fmt.Errorf("%w: %s: area key %q must be non-empty lowercase", domain.ErrValidation, c.City, a.Area)
			}
			if a.PricePerSqft <= 0 {
				return fmt.Errorf("%w: %s/%s: price must be positive", domain.ErrValidation, c.City, a.Area)
			}
		}
	}
	return nil
}
