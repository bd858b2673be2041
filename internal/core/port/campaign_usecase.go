package port

import (
	"context"

	"github.com/shopspring/decimal"

	"campaign-api/internal/core/domain"
)

// CampaignUseCase defines the business operations over campaigns, payouts
// and the country catalog. This interface represents the primary port into
// the application domain. Mock implementations are generated from it for
// testing the HTTP adapter.
type CampaignUseCase interface {
	// CreateCampaign stores a campaign together with its payouts in one
	// transaction. Any invalid payout aborts the whole operation.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	// GetCampaign returns nil when the campaign does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, f domain.CampaignFilter, p domain.Page) ([]domain.Campaign, error)
	SearchCampaigns(ctx context.Context, term string, p domain.Page) ([]domain.Campaign, error)
	// UpdateCampaign applies only the fields present in patch. It returns
	// nil when the campaign does not exist.
	UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error)
	// ToggleCampaignStatus flips the running flag. It returns nil when the
	// campaign does not exist.
	ToggleCampaignStatus(ctx context.Context, id int64) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) (bool, error)

	// CreatePayout fails with domain.ErrCampaignNotFound when the campaign
	// is missing.
	CreatePayout(ctx context.Context, campaignID int64, req CreatePayoutReq) (*domain.Payout, error)
	// GetCampaignPayouts fails with domain.ErrCampaignNotFound when the
	// campaign is missing.
	GetCampaignPayouts(ctx context.Context, campaignID int64) ([]domain.Payout, error)
	ListPayouts(ctx context.Context, f domain.PayoutFilter, p domain.Page) ([]domain.Payout, error)
	UpdatePayout(ctx context.Context, id int64, patch domain.PayoutPatch) (*domain.Payout, error)
	DeletePayout(ctx context.Context, id int64) (bool, error)

	// ListCountries returns the selectable countries in catalog order.
	ListCountries(ctx context.Context) []CountryOption
}

// CreateCampaignReq is the input for CreateCampaign. Nil fields take the
// campaign defaults.
type CreateCampaignReq struct {
	Title      *string
	LandingURL *string
	IsRunning  *bool
	Payouts    []CreatePayoutReq
}

// CreatePayoutReq is a single payout to create.
type CreatePayoutReq struct {
	Country string
	Amount  decimal.Decimal
}

// CountryOption is a catalog entry prepared for client-side selection.
type CountryOption struct {
	Name         string
	Code         string
	CurrencyCode string
	CurrencyName string
	EnumValue    string
	DisplayName  string
}
