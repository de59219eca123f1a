package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"realestate_chatbot/internal/domain"
)

const (
	perBedroom  = 500000
	perBathroom = 300000
)

var (
	newBuildPremium  = decimal.RequireFromString("1.2")
	oldBuildDiscount = decimal.RequireFromString("0.8")
)

// featureBonus adds Amount when any keyword is a substring of the features text.
type featureBonus struct {
	Keywords []string
	Amount   int64
}

var featureBonuses = []featureBonus{
	{Keywords: []string{"parking"}, Amount: 200000},
	{Keywords: []string{"garden", "terrace"}, Amount: 500000},
	{Keywords: []string{"gym", "swimming"}, Amount: 1000000},
	{Keywords: []string{"furnished"}, Amount: 1500000},
}

// Estimator computes a deterministic property value in INR.
type Estimator struct {
	prices *Resolver
	now    func() time.Time
}

// NewEstimator builds an estimator; a nil clock defaults to time.Now.
func NewEstimator(prices *Resolver, now func() time.Time) *Estimator {
	if now == nil {
		now = time.Now
	}
	return &Estimator{prices: prices, now: now}
}

// Estimate returns the rounded valuation or an error wrapping domain.ErrInvalidInput.
func (e *Estimator) Estimate(d domain.PropertyDetails) (int64, error) {
	if d.SquareFootage == nil || *d.SquareFootage <= 0 {
		return 0, fmt.Errorf("%w: squareFootage must be a positive number", domain.ErrInvalidInput)
	}
	if d.Bedrooms != nil && *d.Bedrooms < 0 {
		return 0, fmt.Errorf("%w: bedrooms must not be negative", domain.ErrInvalidInput)
	}
	if d.Bathrooms != nil && *d.Bathrooms < 0 {
		return 0, fmt.Errorf("%w: bathrooms must not be negative", domain.ErrInvalidInput)
	}

	v := decimal.NewFromFloat(e.prices.Resolve(d.Location)).Mul(decimal.NewFromFloat(*d.SquareFootage))

	if d.Bedrooms != nil {
		v = v.Add(decimal.NewFromInt(int64(*d.Bedrooms) * perBedroom))
	}
	if d.Bathrooms != nil {
		v = v.Add(decimal.NewFromInt(int64(*d.Bathrooms) * perBathroom))
	}

	// yearBuilt <= 0 is treated as not supplied
	if d.YearBuilt != nil && *d.YearBuilt > 0 {
		age := e.now().Year() - *d.YearBuilt
		switch {
		case age <= 2:
			v = v.Mul(newBuildPremium)
		case age > 20:
			v = v.Mul(oldBuildDiscount)
		}
	}

	if d.AdditionalFeatures != nil {
		features := strings.ToLower(*d.AdditionalFeatures)
		for _, b := range featureBonuses {
			if containsAny(features, b.Keywords) {
				v = v.Add(decimal.NewFromInt(b.Amount))
			}
		}
	}

	return v.Round(0).IntPart(), nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
