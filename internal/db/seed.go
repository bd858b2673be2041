package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// seedCampaigns is the number of demo campaigns Seed creates.
const seedCampaigns = 5

// Seed inserts demo campaigns with a few payouts each, drawing countries
// from countryCodes. It does nothing when campaigns already exist, so it is
// safe to run on every start.
func Seed(ctx context.Context, pool *pgxpool.Pool, countryCodes []string) error {
	if len(countryCodes) == 0 {
		return errors.New("seed: no country codes")
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var existing int64
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&existing); err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		for i := 1; i <= seedCampaigns; i++ {
			title := fmt.Sprintf("Campaign %d", i)
			landingURL := fmt.Sprintf("https://www.campaign%d.example.com", i)
			isRunning := i%2 == 1

			var campaignID int64
			err := tx.QueryRow(ctx, `INSERT INTO campaigns (title, landing_url, is_running)
VALUES ($1, $2, $3) RETURNING id`, title, landingURL, isRunning).Scan(&campaignID)
			if err != nil {
				return err
			}

			// distinct countries per campaign
			perm := r.Perm(len(countryCodes))
			n := min(3, len(perm))
			for _, idx := range perm[:n] {
				amount := decimal.New(int64(100+r.Intn(9900)), -2) // 1.00 .. 99.99
				_, err = tx.Exec(ctx, `INSERT INTO payouts (campaign_id, country, amount)
VALUES ($1, $2, $3)`, campaignID, countryCodes[idx], amount)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
