package validation

import (
	"fmt"

	"campaign-api/internal/core/domain"
)

// CountryLookup resolves a country code against the reference data.
type CountryLookup interface {
	Lookup(code string) (domain.CountryData, bool)
}

// ValidatePayout checks, in order, that the amount is positive, that the
// country is known and that no other payout in existing already covers the
// same campaign and country. A payout with the same ID as p is skipped so
// an update does not collide with itself.
func ValidatePayout(countries CountryLookup, p domain.Payout, existing []domain.Payout) error {
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w (got %s)", domain.ErrInvalidAmount, p.Amount.String())
	}
	if _, ok := countries.Lookup(p.Country); !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCountry, p.Country)
	}
	for _, other := range existing {
		if other.CampaignID != p.CampaignID || other.Country != p.Country {
			continue
		}
		if p.ID != 0 && other.ID == p.ID {
			continue
		}
		return fmt.Errorf("%w: %s", domain.ErrDuplicatePayoutCountry, p.Country)
	}
	return nil
}
