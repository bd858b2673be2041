package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-api/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. A repository returned by InTx runs every statement on the
// transaction instead of the pool.
type CampaignRepository struct {
	pool txBeginner
	q    querier
	inTx bool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool, q: pool}
}

const campaignColumns = `id, title, landing_url, is_running, created_at, updated_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Title, &c.LandingURL, &c.IsRunning, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CreateCampaign inserts the campaign row.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO campaigns (title, landing_url, is_running)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		c.Title, c.LandingURL, c.IsRunning,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetCampaign returns a campaign with its payouts, or nil when absent.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	rows, err := r.q.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.Payouts, err = r.ListCampaignPayouts(ctx, c.ID); err != nil {
		return nil, err
	}
	return &c, nil
}

// LockCampaign locks the campaign row until the surrounding transaction
// ends.
func (r *CampaignRepository) LockCampaign(ctx context.Context, id int64) (bool, error) {
	var locked int64
	err := r.q.QueryRow(ctx, `SELECT id FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListCampaigns returns campaigns matching the filter, ordered by id.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, f domain.CampaignFilter, p domain.Page) ([]domain.Campaign, error) {
	var (
		where []string
		args  []any
	)
	if f.Title != nil {
		args = append(args, containsPattern(*f.Title))
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if f.LandingURL != nil {
		args = append(args, containsPattern(*f.LandingURL))
		where = append(where, fmt.Sprintf("landing_url ILIKE $%d", len(args)))
	}
	if f.IsRunning != nil {
		args = append(args, *f.IsRunning)
		where = append(where, fmt.Sprintf("is_running = $%d", len(args)))
	}

	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	return r.listCampaigns(ctx, query, args, p)
}

// SearchCampaigns matches term against title or landing URL.
func (r *CampaignRepository) SearchCampaigns(ctx context.Context, term string, p domain.Page) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE title ILIKE $1 OR landing_url ILIKE $1`
	return r.listCampaigns(ctx, query, []any{containsPattern(term)}, p)
}

func (r *CampaignRepository) listCampaigns(ctx context.Context, query string, args []any, p domain.Page) ([]domain.Campaign, error) {
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, p.Limit, p.Skip)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, err
	}
	if err = r.attachPayouts(ctx, campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// attachPayouts loads the payouts of all campaigns with one query.
func (r *CampaignRepository) attachPayouts(ctx context.Context, campaigns []domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}
	ids := make([]int64, len(campaigns))
	index := make(map[int64]int, len(campaigns))
	for i := range campaigns {
		ids[i] = campaigns[i].ID
		index[campaigns[i].ID] = i
		campaigns[i].Payouts = []domain.Payout{}
	}

	rows, err := r.q.Query(ctx, `SELECT `+payoutColumns+` FROM payouts WHERE campaign_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return err
	}
	payouts, err := pgx.CollectRows(rows, scanPayout)
	if err != nil {
		return err
	}
	for _, p := range payouts {
		i := index[p.CampaignID]
		campaigns[i].Payouts = append(campaigns[i].Payouts, p)
	}
	return nil
}

// UpdateCampaign writes the mutable campaign fields.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.q.QueryRow(ctx, `
		UPDATE campaigns SET title = $1, landing_url = $2, is_running = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at`,
		c.Title, c.LandingURL, c.IsRunning, c.ID,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrCampaignNotFound
	}
	return err
}

// DeleteCampaign removes a campaign; its payouts go with it through
// ON DELETE CASCADE.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE
// wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
