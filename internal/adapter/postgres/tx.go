package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"campaign-api/internal/core/domain"
	"campaign-api/internal/core/port"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txBeginner starts transactions; *pgxpool.Pool implements it.
type txBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// InTx runs fn in a read-committed transaction. Row locks taken through
// LockCampaign and the table constraints provide the isolation the use
// cases need.
func (r *CampaignRepository) InTx(ctx context.Context, fn func(repo port.CampaignRepository) error) (err error) {
	if r.inTx {
		return fn(r)
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()
	return fn(&CampaignRepository{pool: r.pool, q: tx, inTx: true})
}

// Constraint names from db/migrations.
const (
	constraintCampaignCountry = "payouts_campaign_country_key"
	constraintAmountPositive  = "payouts_amount_positive"
)

// mapPayoutError translates constraint violations raised while writing a
// payout into domain errors.
func mapPayoutError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == "23505" && pgErr.ConstraintName == constraintCampaignCountry:
		return domain.ErrDuplicatePayoutCountry
	case pgErr.Code == "23514" && pgErr.ConstraintName == constraintAmountPositive:
		return domain.ErrInvalidAmount
	case pgErr.Code == "23503":
		return domain.ErrCampaignNotFound
	}
	return err
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)
