package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"campaign-api/internal/core/domain"
	"campaign-api/internal/core/port"
	"campaign-api/internal/core/validation"
)

// CampaignUseCase provides business logic for campaigns and payouts. It
// orchestrates the repository and the country catalog to implement the
// port.CampaignUseCase interface. Every mutation runs inside one repository
// transaction.
type CampaignUseCase struct {
	repo      port.CampaignRepository
	countries port.CountryCatalog
	logger    *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates a new usecase with the provided repository and
// country catalog.
func NewCampaignUseCase(repo port.CampaignRepository, countries port.CountryCatalog, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, countries: countries, logger: logger}
}

// CreateCampaign normalizes the landing URL, then stores the campaign and
// its payouts in submission order. Each payout is validated against the
// ones already stored for the campaign, so a repeated country fails the
// whole request and nothing is persisted.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	c := &domain.Campaign{
		Title:      domain.DefaultCampaignTitle,
		LandingURL: domain.DefaultLandingURL,
	}
	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.IsRunning != nil {
		c.IsRunning = *req.IsRunning
	}
	if req.LandingURL != nil {
		landingURL, err := validation.NormalizeURL(*req.LandingURL)
		if err != nil {
			return nil, err
		}
		c.LandingURL = landingURL
	}

	err := u.repo.InTx(ctx, func(repo port.CampaignRepository) error {
		if err := repo.CreateCampaign(ctx, c); err != nil {
			return err
		}
		c.Payouts = make([]domain.Payout, 0, len(req.Payouts))
		for _, pr := range req.Payouts {
			p := domain.Payout{CampaignID: c.ID, Country: pr.Country, Amount: pr.Amount}
			if err := validation.ValidatePayout(u.countries, p, c.Payouts); err != nil {
				return err
			}
			if err := repo.CreatePayout(ctx, &p); err != nil {
				return err
			}
			c.Payouts = append(c.Payouts, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	u.logger.Info("campaign created",
		slog.Int64("campaign_id", c.ID),
		slog.Int("payouts", len(c.Payouts)),
	)
	return c, nil
}

// GetCampaign returns the campaign with its payouts, or nil when absent.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.repo.GetCampaign(ctx, id)
}

// ListCampaigns returns campaigns matching every filter field that is set.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, f domain.CampaignFilter, p domain.Page) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx, f, p)
}

// SearchCampaigns matches term against title or landing URL.
func (u *CampaignUseCase) SearchCampaigns(ctx context.Context, term string, p domain.Page) ([]domain.Campaign, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: search term is required", domain.ErrValidation)
	}
	return u.repo.SearchCampaigns(ctx, term, p)
}

// UpdateCampaign applies the fields present in patch. A present landing URL
// is normalized; null title or landing URL falls back to the placeholder.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	if patch.IsRunning.Set && patch.IsRunning.Null {
		return nil, fmt.Errorf("%w: is_running cannot be null", domain.ErrValidation)
	}
	var landingURL string
	if patch.LandingURL.Set {
		landingURL = domain.DefaultLandingURL
		if !patch.LandingURL.Null {
			normalized, err := validation.NormalizeURL(patch.LandingURL.Value)
			if err != nil {
				return nil, err
			}
			landingURL = normalized
		}
	}

	return u.mutateCampaign(ctx, id, func(c *domain.Campaign) {
		if patch.Title.Set {
			c.Title = patch.Title.Value
			if patch.Title.Null {
				c.Title = domain.DefaultCampaignTitle
			}
		}
		if patch.LandingURL.Set {
			c.LandingURL = landingURL
		}
		if patch.IsRunning.Set {
			c.IsRunning = patch.IsRunning.Value
		}
	})
}

// ToggleCampaignStatus flips the running flag.
func (u *CampaignUseCase) ToggleCampaignStatus(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.mutateCampaign(ctx, id, func(c *domain.Campaign) {
		c.IsRunning = !c.IsRunning
	})
	if err != nil || c == nil {
		return c, err
	}
	u.logger.Info("campaign status toggled",
		slog.Int64("campaign_id", id),
		slog.Bool("is_running", c.IsRunning),
	)
	return c, nil
}

// mutateCampaign locks the campaign, applies fn and writes it back. It
// returns nil when the campaign does not exist.
func (u *CampaignUseCase) mutateCampaign(ctx context.Context, id int64, fn func(c *domain.Campaign)) (*domain.Campaign, error) {
	var c *domain.Campaign
	err := u.repo.InTx(ctx, func(repo port.CampaignRepository) error {
		found, err := repo.LockCampaign(ctx, id)
		if err != nil || !found {
			return err
		}
		if c, err = repo.GetCampaign(ctx, id); err != nil || c == nil {
			return err
		}
		fn(c)
		return repo.UpdateCampaign(ctx, c)
	})
	if err != nil {
		return nil, fmt.Errorf("update campaign %d: %w", id, err)
	}
	return c, nil
}

// DeleteCampaign removes a campaign and its payouts. It reports false when
// the campaign does not exist.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id int64) (bool, error) {
	deleted, err := u.repo.DeleteCampaign(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete campaign %d: %w", id, err)
	}
	if deleted {
		u.logger.Info("campaign deleted", slog.Int64("campaign_id", id))
	}
	return deleted, nil
}
