package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"campaign-api/internal/core/domain"
)

const payoutColumns = `id, campaign_id, country, amount, created_at, updated_at`

func scanPayout(row pgx.CollectableRow) (domain.Payout, error) {
	var p domain.Payout
	err := row.Scan(&p.ID, &p.CampaignID, &p.Country, &p.Amount, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreatePayout inserts a payout. Constraint violations surface as domain
// errors.
func (r *CampaignRepository) CreatePayout(ctx context.Context, p *domain.Payout) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO payouts (campaign_id, country, amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		p.CampaignID, p.Country, p.Amount,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert payout: %w", mapPayoutError(err))
	}
	return nil
}

// GetPayout returns a payout by id, or nil when absent.
func (r *CampaignRepository) GetPayout(ctx context.Context, id int64) (*domain.Payout, error) {
	rows, err := r.q.Query(ctx, `SELECT `+payoutColumns+` FROM payouts WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	p, err := pgx.CollectOneRow(rows, scanPayout)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListCampaignPayouts returns all payouts of a campaign ordered by id.
func (r *CampaignRepository) ListCampaignPayouts(ctx context.Context, campaignID int64) ([]domain.Payout, error) {
	rows, err := r.q.Query(ctx, `SELECT `+payoutColumns+` FROM payouts WHERE campaign_id = $1 ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	payouts, err := pgx.CollectRows(rows, scanPayout)
	if err != nil {
		return nil, err
	}
	if payouts == nil {
		payouts = []domain.Payout{}
	}
	return payouts, nil
}

// ListPayouts returns payouts across campaigns, optionally for a single
// country.
func (r *CampaignRepository) ListPayouts(ctx context.Context, f domain.PayoutFilter, p domain.Page) ([]domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts`
	var args []any
	if f.Country != nil {
		args = append(args, *f.Country)
		query += " WHERE country = $1"
	}
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, p.Limit, p.Skip)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanPayout)
}

// UpdatePayout writes country and amount.
func (r *CampaignRepository) UpdatePayout(ctx context.Context, p *domain.Payout) error {
	err := r.q.QueryRow(ctx, `
		UPDATE payouts SET country = $1, amount = $2, updated_at = now()
		WHERE id = $3
		RETURNING updated_at`,
		p.Country, p.Amount, p.ID,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrPayoutNotFound
	}
	if err != nil {
		return fmt.Errorf("update payout: %w", mapPayoutError(err))
	}
	return nil
}

// DeletePayout removes a payout.
func (r *CampaignRepository) DeletePayout(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM payouts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
