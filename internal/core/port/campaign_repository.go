package port

import (
	"context"

	"campaign-api/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns and their
// payouts. It is an outbound port in hexagonal architecture. Lookups return
// (nil, nil) when the row does not exist; deletes report whether a row was
// removed.
type CampaignRepository interface {
	// InTx runs fn inside a single transaction. The repository passed to fn
	// is bound to that transaction; fn returning an error rolls it back.
	// Nested calls reuse the outer transaction.
	InTx(ctx context.Context, fn func(repo CampaignRepository) error) error

	// CreateCampaign inserts the campaign row and fills ID and timestamps.
	// Payouts on c are ignored.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign with its payouts.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// LockCampaign takes a row lock on the campaign for the rest of the
	// transaction. It reports false when the campaign does not exist.
	LockCampaign(ctx context.Context, id int64) (bool, error)
	// ListCampaigns returns campaigns matching every non-nil filter field.
	ListCampaigns(ctx context.Context, f domain.CampaignFilter, p domain.Page) ([]domain.Campaign, error)
	// SearchCampaigns returns campaigns whose title or landing URL contains
	// term, ignoring case.
	SearchCampaigns(ctx context.Context, term string, p domain.Page) ([]domain.Campaign, error)
	// UpdateCampaign writes title, landing URL and running status.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// DeleteCampaign removes the campaign and, by cascade, its payouts.
	DeleteCampaign(ctx context.Context, id int64) (bool, error)

	// CreatePayout inserts a payout. A second payout for the same campaign
	// and country fails with domain.ErrDuplicatePayoutCountry.
	CreatePayout(ctx context.Context, p *domain.Payout) error
	// GetPayout returns a payout by id.
	GetPayout(ctx context.Context, id int64) (*domain.Payout, error)
	// ListCampaignPayouts returns the payouts of one campaign ordered by id.
	ListCampaignPayouts(ctx context.Context, campaignID int64) ([]domain.Payout, error)
	// ListPayouts returns payouts across all campaigns.
	ListPayouts(ctx context.Context, f domain.PayoutFilter, p domain.Page) ([]domain.Payout, error)
	// UpdatePayout writes country and amount.
	UpdatePayout(ctx context.Context, p *domain.Payout) error
	// DeletePayout removes a payout.
	DeletePayout(ctx context.Context, id int64) (bool, error)
}

// CountryCatalog is the read-only country/currency reference data.
type CountryCatalog interface {
	Lookup(code string) (domain.CountryData, bool)
	All() []domain.CountryData
}
