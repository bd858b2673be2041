package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"campaign-api/internal/core/domain"
	"campaign-api/internal/core/port"
	"campaign-api/internal/core/validation"
)

// CreatePayout adds a payout to an existing campaign. The campaign row is
// locked while the payout is validated and inserted, so two concurrent
// requests for the same country cannot both pass the duplicate check.
func (u *CampaignUseCase) CreatePayout(ctx context.Context, campaignID int64, req port.CreatePayoutReq) (*domain.Payout, error) {
	p := &domain.Payout{CampaignID: campaignID, Country: req.Country, Amount: req.Amount}

	err := u.repo.InTx(ctx, func(repo port.CampaignRepository) error {
		found, err := repo.LockCampaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrCampaignNotFound
		}
		existing, err := repo.ListCampaignPayouts(ctx, campaignID)
		if err != nil {
			return err
		}
		if err = validation.ValidatePayout(u.countries, *p, existing); err != nil {
			return err
		}
		return repo.CreatePayout(ctx, p)
	})
	if err != nil {
		return nil, fmt.Errorf("create payout for campaign %d: %w", campaignID, err)
	}

	u.logger.Info("payout created",
		slog.Int64("campaign_id", campaignID),
		slog.Int64("payout_id", p.ID),
		slog.String("country", p.Country),
		slog.String("amount", p.Amount.String()),
	)
	return p, nil
}

// GetCampaignPayouts lists the payouts of one campaign.
func (u *CampaignUseCase) GetCampaignPayouts(ctx context.Context, campaignID int64) ([]domain.Payout, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c.Payouts, nil
}

// ListPayouts lists payouts across campaigns.
func (u *CampaignUseCase) ListPayouts(ctx context.Context, f domain.PayoutFilter, p domain.Page) ([]domain.Payout, error) {
	return u.repo.ListPayouts(ctx, f, p)
}

// UpdatePayout applies the fields present in patch and re-validates the
// result, including the one-payout-per-country rule. It returns nil when the
// payout does not exist.
func (u *CampaignUseCase) UpdatePayout(ctx context.Context, id int64, patch domain.PayoutPatch) (*domain.Payout, error) {
	if patch.Country.Set && patch.Country.Null {
		return nil, fmt.Errorf("%w: country cannot be null", domain.ErrValidation)
	}
	if patch.Amount.Set && patch.Amount.Null {
		return nil, fmt.Errorf("%w: amount cannot be null", domain.ErrValidation)
	}

	var updated *domain.Payout
	err := u.repo.InTx(ctx, func(repo port.CampaignRepository) error {
		current, err := repo.GetPayout(ctx, id)
		if err != nil || current == nil {
			return err
		}
		if _, err = repo.LockCampaign(ctx, current.CampaignID); err != nil {
			return err
		}
		// Writers of this campaign's payouts are serialized from here on, so
		// reread the row to merge the patch onto committed values.
		p, err := repo.GetPayout(ctx, id)
		if err != nil || p == nil {
			return err
		}
		if patch.Country.Set {
			p.Country = patch.Country.Value
		}
		if patch.Amount.Set {
			p.Amount = patch.Amount.Value
		}
		existing, err := repo.ListCampaignPayouts(ctx, p.CampaignID)
		if err != nil {
			return err
		}
		if err = validation.ValidatePayout(u.countries, *p, existing); err != nil {
			return err
		}
		if err = repo.UpdatePayout(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update payout %d: %w", id, err)
	}
	return updated, nil
}

// DeletePayout removes a payout. It reports false when the payout does not
// exist.
func (u *CampaignUseCase) DeletePayout(ctx context.Context, id int64) (bool, error) {
	deleted, err := u.repo.DeletePayout(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete payout %d: %w", id, err)
	}
	if deleted {
		u.logger.Info("payout deleted", slog.Int64("payout_id", id))
	}
	return deleted, nil
}
