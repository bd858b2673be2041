// Package countries provides the static country/currency reference data
// used to validate payout countries. The dataset is embedded in the binary
// and can be replaced by a file at startup.
package countries

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"campaign-api/internal/core/domain"
)

//go:embed data/countries.json
var dataFS embed.FS

const defaultDataset = "data/countries.json"

// Catalog is an immutable, ordered mapping of country code to country data.
// It is safe for concurrent use.
type Catalog struct {
	ordered []domain.CountryData
	byCode  map[string]domain.CountryData
}

type record struct {
	Country      string `json:"COUNTRY"`
	CountryCode  string `json:"COUNTRY_CODE"`
	CurrencyCode string `json:"CURRENCY_CODE"`
	CurrencyName string `json:"NAME_OF_CURRENCY"`
}

type dataset struct {
	Countries []record `json:"countries"`
}

// Load parses a dataset of the form {"countries": [{"COUNTRY": ...,
// "COUNTRY_CODE": ..., "CURRENCY_CODE": ..., "NAME_OF_CURRENCY": ...}]}.
// An empty dataset, a record with a blank field or a repeated code is an
// error.
func Load(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var ds dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}
	if len(ds.Countries) == 0 {
		return nil, errors.New("countries dataset is empty")
	}

	c := &Catalog{
		ordered: make([]domain.CountryData, 0, len(ds.Countries)),
		byCode:  make(map[string]domain.CountryData, len(ds.Countries)),
	}
	for i, rec := range ds.Countries {
		if rec.Country == "" || rec.CountryCode == "" || rec.CurrencyCode == "" || rec.CurrencyName == "" {
			return nil, fmt.Errorf("country record %d: missing field", i)
		}
		if _, dup := c.byCode[rec.CountryCode]; dup {
			return nil, fmt.Errorf("country record %d: duplicate code %q", i, rec.CountryCode)
		}
		cd := domain.CountryData{
			Name:         rec.Country,
			Code:         rec.CountryCode,
			CurrencyCode: rec.CurrencyCode,
			CurrencyName: rec.CurrencyName,
		}
		c.ordered = append(c.ordered, cd)
		c.byCode[cd.Code] = cd
	}
	return c, nil
}

// LoadDefault loads the embedded dataset.
func LoadDefault() (*Catalog, error) {
	raw, err := dataFS.ReadFile(defaultDataset)
	if err != nil {
		return nil, err
	}
	return Load(bytes.NewReader(raw))
}

// LoadFile loads a dataset from path. An empty path selects the embedded
// dataset.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return LoadDefault()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns the country registered under code.
func (c *Catalog) Lookup(code string) (domain.CountryData, bool) {
	cd, ok := c.byCode[code]
	return cd, ok
}

// All returns the countries in dataset order. The slice is a copy.
func (c *Catalog) All() []domain.CountryData {
	out := make([]domain.CountryData, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Codes returns the closed set of valid country codes in dataset order.
func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.ordered))
	for i, cd := range c.ordered {
		codes[i] = cd.Code
	}
	return codes
}
