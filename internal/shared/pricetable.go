package shared

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"realestate_chatbot/internal/app"
	"realestate_chatbot/internal/domain"
)

type priceTableFile struct {
	Cities domain.CityPriceTable `yaml:"cities"`
}

// LoadPriceTable returns the built-in table when path is empty, otherwise
// the validated table read from the YAML file.
func LoadPriceTable(path string) (domain.CityPriceTable, error) {
	if path == "" {
		return app.DefaultPriceTable(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price table: %w", err)
	}
	return ParsePriceTable(b)
}

func ParsePriceTable(b []byte) (domain.CityPriceTable, error) {
	var f priceTableFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decode price table: %v", domain.ErrValidation, err)
	}
	if err := app.ValidatePriceTable(f.Cities); err != nil {
		return nil, err
	}
	return f.Cities, nil
}
