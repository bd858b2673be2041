package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"campaign-api/internal/core/domain"
	"campaign-api/internal/core/port"
	"campaign-api/internal/db"
)

// RepositorySuite runs against a real database named by PSQL_TEST_ADDRESS.
// Every test starts from empty tables.
type RepositorySuite struct {
	suite.Suite
	ctx  context.Context
	pool *pgxpool.Pool
	repo *CampaignRepository
}

func TestRepositorySuite(t *testing.T) {
	if os.Getenv("PSQL_TEST_ADDRESS") == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	s.ctx = context.Background()
	s.Require().NoError(db.Migrate(addr))

	pool, err := pgxpool.New(s.ctx, addr)
	s.Require().NoError(err)
	s.pool = pool
	s.repo = NewCampaignRepository(pool)
}

func (s *RepositorySuite) TearDownSuite() {
	s.pool.Close()
}

func (s *RepositorySuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE payouts, campaigns RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *RepositorySuite) createCampaign(title, landingURL string, running bool) *domain.Campaign {
	c := &domain.Campaign{Title: title, LandingURL: landingURL, IsRunning: running}
	s.Require().NoError(s.repo.CreateCampaign(s.ctx, c))
	return c
}

func (s *RepositorySuite) createPayout(campaignID int64, country, amount string) *domain.Payout {
	p := &domain.Payout{CampaignID: campaignID, Country: country, Amount: decimal.RequireFromString(amount)}
	s.Require().NoError(s.repo.CreatePayout(s.ctx, p))
	return p
}

func (s *RepositorySuite) TestGetCampaignWithPayouts() {
	c := s.createCampaign("Test Campaign", "http://test.com", true)
	s.createPayout(c.ID, "USA", "100.50")
	s.createPayout(c.ID, "DEU", "0.01")

	got, err := s.repo.GetCampaign(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("Test Campaign", got.Title)
	s.Require().Len(got.Payouts, 2)
	s.Equal("USA", got.Payouts[0].Country)
	s.True(decimal.RequireFromString("100.50").Equal(got.Payouts[0].Amount))
	s.True(decimal.RequireFromString("0.01").Equal(got.Payouts[1].Amount))

	missing, err := s.repo.GetCampaign(s.ctx, c.ID+100)
	s.NoError(err)
	s.Nil(missing)
}

func (s *RepositorySuite) TestDeleteCampaignCascadesToPayouts() {
	c := s.createCampaign("Doomed", "https://www.doomed.com", false)
	p := s.createPayout(c.ID, "USA", "5")
	keep := s.createCampaign("Keeper", "https://www.keeper.com", false)
	s.createPayout(keep.ID, "USA", "5")

	deleted, err := s.repo.DeleteCampaign(s.ctx, c.ID)
	s.Require().NoError(err)
	s.True(deleted)

	var orphans int
	s.Require().NoError(s.pool.QueryRow(s.ctx,
		`SELECT count(*) FROM payouts p LEFT JOIN campaigns c ON c.id = p.campaign_id WHERE c.id IS NULL`,
	).Scan(&orphans))
	s.Zero(orphans)

	gone, err := s.repo.GetPayout(s.ctx, p.ID)
	s.NoError(err)
	s.Nil(gone)

	remaining, err := s.repo.ListPayouts(s.ctx, domain.PayoutFilter{}, domain.Page{Limit: 100})
	s.Require().NoError(err)
	s.Len(remaining, 1)

	deleted, err = s.repo.DeleteCampaign(s.ctx, c.ID)
	s.NoError(err)
	s.False(deleted)
}

func (s *RepositorySuite) TestListCampaignsFiltersIntersect() {
	s.createCampaign("Summer Sale", "https://www.shop.com", true)
	s.createCampaign("Summer Archive", "https://www.shop.com", false)
	s.createCampaign("Winter Sale", "https://www.other.org", true)

	title, running := "summer", true
	got, err := s.repo.ListCampaigns(s.ctx, domain.CampaignFilter{Title: &title, IsRunning: &running}, domain.Page{Limit: 100})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Summer Sale", got[0].Title)
	s.NotNil(got[0].Payouts)

	site := "other"
	got, err = s.repo.ListCampaigns(s.ctx, domain.CampaignFilter{LandingURL: &site}, domain.Page{Limit: 100})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Winter Sale", got[0].Title)

	all, err := s.repo.ListCampaigns(s.ctx, domain.CampaignFilter{}, domain.Page{Skip: 1, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("Summer Archive", all[0].Title)
}

func (s *RepositorySuite) TestListCampaignsTreatsWildcardsLiterally() {
	s.createCampaign("50% off", "https://www.a.com", true)
	s.createCampaign("500 off", "https://www.b.com", true)

	title := "50%"
	got, err := s.repo.ListCampaigns(s.ctx, domain.CampaignFilter{Title: &title}, domain.Page{Limit: 100})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("50% off", got[0].Title)
}

func (s *RepositorySuite) TestSearchCampaigns() {
	s.createCampaign("Shoes", "https://www.brand.com", true)
	s.createCampaign("Hats", "https://www.shoestore.net", false)
	s.createCampaign("Gloves", "https://www.gloves.com", false)

	got, err := s.repo.SearchCampaigns(s.ctx, "SHOE", domain.Page{Limit: 100})
	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *RepositorySuite) TestPayoutConstraints() {
	c := s.createCampaign("C", "https://www.c.com", true)
	s.createPayout(c.ID, "USA", "1")

	dup := &domain.Payout{CampaignID: c.ID, Country: "USA", Amount: decimal.NewFromInt(2)}
	s.ErrorIs(s.repo.CreatePayout(s.ctx, dup), domain.ErrDuplicatePayoutCountry)

	zero := &domain.Payout{CampaignID: c.ID, Country: "FRA", Amount: decimal.Zero}
	s.ErrorIs(s.repo.CreatePayout(s.ctx, zero), domain.ErrInvalidAmount)

	orphan := &domain.Payout{CampaignID: c.ID + 1000, Country: "FRA", Amount: decimal.NewFromInt(1)}
	s.ErrorIs(s.repo.CreatePayout(s.ctx, orphan), domain.ErrCampaignNotFound)

	other := s.createCampaign("D", "https://www.d.com", true)
	s.createPayout(other.ID, "USA", "1")
}

func (s *RepositorySuite) TestUpdateMissingRows() {
	err := s.repo.UpdateCampaign(s.ctx, &domain.Campaign{ID: 42, Title: "x"})
	s.ErrorIs(err, domain.ErrCampaignNotFound)

	err = s.repo.UpdatePayout(s.ctx, &domain.Payout{ID: 42, Country: "USA", Amount: decimal.NewFromInt(1)})
	s.ErrorIs(err, domain.ErrPayoutNotFound)
}

func (s *RepositorySuite) TestUpdatePayout() {
	c := s.createCampaign("C", "https://www.c.com", true)
	p := s.createPayout(c.ID, "USA", "1")
	s.createPayout(c.ID, "DEU", "1")

	p.Amount = decimal.RequireFromString("3.333")
	s.Require().NoError(s.repo.UpdatePayout(s.ctx, p))

	got, err := s.repo.GetPayout(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("3.333").Equal(got.Amount))

	p.Country = "DEU"
	s.ErrorIs(s.repo.UpdatePayout(s.ctx, p), domain.ErrDuplicatePayoutCountry)
}

func (s *RepositorySuite) TestInTxRollsBackOnError() {
	boom := errors.New("boom")
	err := s.repo.InTx(s.ctx, func(repo port.CampaignRepository) error {
		c := &domain.Campaign{Title: "Rolled back", LandingURL: "https://www.x.com"}
		if err := repo.CreateCampaign(s.ctx, c); err != nil {
			return err
		}
		found, err := repo.LockCampaign(s.ctx, c.ID)
		s.True(found)
		if err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	got, err := s.repo.ListCampaigns(s.ctx, domain.CampaignFilter{}, domain.Page{Limit: 100})
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *RepositorySuite) TestListPayoutsByCountry() {
	a := s.createCampaign("A", "https://www.a.com", true)
	b := s.createCampaign("B", "https://www.b.com", true)
	s.createPayout(a.ID, "USA", "1")
	s.createPayout(a.ID, "FRA", "1")
	s.createPayout(b.ID, "USA", "2")

	country := "USA"
	got, err := s.repo.ListPayouts(s.ctx, domain.PayoutFilter{Country: &country}, domain.Page{Limit: 100})
	s.Require().NoError(err)
	s.Len(got, 2)
	for _, p := range got {
		s.Equal("USA", p.Country)
	}
}
