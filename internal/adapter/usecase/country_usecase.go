package usecase

import (
	"context"

	"campaign-api/internal/core/port"
)

// ListCountries returns the catalog prepared for client-side selection, in
// catalog order.
func (u *CampaignUseCase) ListCountries(_ context.Context) []port.CountryOption {
	all := u.countries.All()
	out := make([]port.CountryOption, 0, len(all))
	for _, cd := range all {
		out = append(out, port.CountryOption{
			Name:         cd.Name,
			Code:         cd.Code,
			CurrencyCode: cd.CurrencyCode,
			CurrencyName: cd.CurrencyName,
			EnumValue:    cd.EnumValue(),
			DisplayName:  cd.DisplayName(),
		})
	}
	return out
}
