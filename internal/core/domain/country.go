package domain

import (
	"fmt"
	"strings"
)

// CountryData is a reference record tying a country code to its currency.
// Currency fields are descriptive only.
type CountryData struct {
	Name         string
	Code         string
	CurrencyCode string
	CurrencyName string
}

// DisplayName renders the country for selection lists, e.g. "Japan (JPY)".
func (c CountryData) DisplayName() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.CurrencyCode)
}

// EnumValue is the country name with spaces replaced by underscores.
func (c CountryData) EnumValue() string {
	return strings.ReplaceAll(c.Name, " ", "_")
}
