package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-api/internal/core/domain"
	"campaign-api/internal/core/port"
)

func TestCreatePayout(t *testing.T) {
	svc, repo := newTestUseCase(t)
	expectTx(repo)

	repo.EXPECT().LockCampaign(mock.Anything, int64(1)).Return(true, nil)
	repo.EXPECT().ListCampaignPayouts(mock.Anything, int64(1)).
		Return([]domain.Payout{{ID: 1, CampaignID: 1, Country: "USA", Amount: decimal.NewFromInt(5)}}, nil)
	repo.EXPECT().
		CreatePayout(mock.Anything, mock.MatchedBy(func(p *domain.Payout) bool {
			return p.CampaignID == 1 && p.Country == "FRA"
		})).
		Run(func(_ context.Context, p *domain.Payout) { p.ID = 2 }).
		Return(nil)

	p, err := svc.CreatePayout(context.Background(), 1, port.CreatePayoutReq{
		Country: "FRA",
		Amount:  decimal.RequireFromString("0.01"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
	assert.Equal(t, "0.01", p.Amount.String())
}

func TestCreatePayoutCampaignNotFound(t *testing.T) {
	svc, repo := newTestUseCase(t)
	expectTx(repo)
	repo.EXPECT().LockCampaign(mock.Anything, int64(404)).Return(false, nil)

	_, err := svc.CreatePayout(context.Background(), 404, port.CreatePayoutReq{
		Country: "USA",
		Amount:  decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePayoutDuplicateCountry(t *testing.T) {
	svc, repo := newTestUseCase(t)
	expectTx(repo)

	repo.EXPECT().LockCampaign(mock.Anything, int64(1)).Return(true, nil)
	repo.EXPECT().ListCampaignPayouts(mock.Anything, int64(1)).
		Return([]domain.Payout{{ID: 1, CampaignID: 1, Country: "USA", Amount: decimal.NewFromInt(5)}}, nil)

	_, err := svc.CreatePayout(context.Background(), 1, port.CreatePayoutReq{
		Country: "USA",
		Amount:  decimal.NewFromInt(7),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicatePayoutCountry)
	repo.AssertNotCalled(t, "CreatePayout", mock.Anything, mock.Anything)
}

func TestCreatePayoutConstraintRace(t *testing.T) {
	svc, repo := newTestUseCase(t)
	expectTx(repo)

	repo.EXPECT().LockCampaign(mock.Anything, int64(1)).Return(true, nil)
	repo.EXPECT().ListCampaignPayouts(mock.Anything, int64(1)).Return([]domain.Payout{}, nil)
	repo.EXPECT().CreatePayout(mock.Anything, mock.Anything).Return(domain.ErrDuplicatePayoutCountry)

	_, err := svc.CreatePayout(context.Background(), 1, port.CreatePayoutReq{
		Country: "USA",
		Amount:  decimal.NewFromInt(7),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicatePayoutCountry)
}

func TestCreatePayoutInvalidAmount(t *testing.T) {
	for _, amount := range []string{"0", "0.00", "-5"} {
		t.Run(amount, func(t *testing.T) {
			svc, repo := newTestUseCase(t)
			expectTx(repo)
			repo.EXPECT().LockCampaign(mock.Anything, int64(1)).Return(true, nil)
			repo.EXPECT().ListCampaignPayouts(mock.Anything, int64(1)).Return(nil, nil)

			_, err := svc.CreatePayout(context.Background(), 1, port.CreatePayoutReq{
				Country: "USA",
				Amount:  decimal.RequireFromString(amount),
			})
			assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		})
	}
}

func TestGetCampaignPayouts(t *testing.T) {
	svc, repo := newTestUseCase(t)
	payouts := []domain.Payout{{ID: 3, CampaignID: 1, Country: "DEU", Amount: decimal.NewFromInt(9)}}
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&domain.Campaign{ID: 1, Payouts: payouts}, nil)
	repo.EXPECT().GetCampaign(mock.Anything, int64(2)).Return(nil, nil)

	got, err := svc.GetCampaignPayouts(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, payouts, got)

	_, err = svc.GetCampaignPayouts(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestListPayoutsPassesFilter(t *testing.T) {
	svc, repo := newTestUseCase(t)
	f := domain.PayoutFilter{Country: ptr("USA")}
	page := domain.Page{Limit: 100}
	repo.EXPECT().ListPayouts(mock.Anything, f, page).Return([]domain.Payout{}, nil)

	got, err := svc.ListPayouts(context.Background(), f, page)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdatePayoutAmountOnly(t *testing.T) {
	svc, repo := newTestUseCase(t)
	expectTx(repo)

	stored := &domain.Payout{ID: 1, CampaignID: 5, Country: "USA", Amount: decimal.NewFromInt(10)}
	repo.EXPECT().GetPayout(mock.Anything, int64(1)).Return(stored, nil)
	repo.EXPECT().LockCampaign(mock.Anything, int64(5)).Return(true, nil)
	repo.EXPECT().ListCampaignPayouts(mock.Anything, int64(5)).
		Return([]domain.Payout{{ID: 1, CampaignID: 5, Country: "USA", Amount: decimal.NewFromInt(10)}}, nil)
	repo.EXPECT().
		UpdatePayout(mock.Anything, mock.MatchedBy(func(p *domain.Payout) bool {
			return p.Country == "USA" && p.Amount.Equal(decimal.RequireFromString("12.75"))
		})).
		Return(nil)

	p, err := svc.UpdatePayout(context.Background(), 1, domain.PayoutPatch{
		Amount: domain.Some(decimal.RequireFromString("12.75")),
	})
	require.NoError(t, err)
	assert.Equal(t, "USA", p.Country)
}

func TestUpdatePayoutDuplicateCountry(t *testing.T) {
	svc, repo := newTestUseCase(t)
	expectTx(repo)

	repo.EXPECT().GetPayout(mock.Anything, int64(1)).
		Return(&domain.Payout{ID: 1, CampaignID: 5, Country: "USA", Amount: decimal.NewFromInt(10)}, nil)
	repo.EXPECT().LockCampaign(mock.Anything, int64(5)).Return(true, nil)
	repo.EXPECT().ListCampaignPayouts(mock.Anything, int64(5)).Return([]domain.Payout{
		{ID: 1, CampaignID: 5, Country: "USA", Amount: decimal.NewFromInt(10)},
		{ID: 2, CampaignID: 5, Country: "DEU", Amount: decimal.NewFromInt(3)},
	}, nil)

	_, err := svc.UpdatePayout(context.Background(), 1, domain.PayoutPatch{Country: domain.Some("DEU")})
	assert.ErrorIs(t, err, domain.ErrDuplicatePayoutCountry)
}

func TestUpdatePayoutRejectsNulls(t *testing.T) {
	svc, _ := newTestUseCase(t)

	_, err := svc.UpdatePayout(context.Background(), 1, domain.PayoutPatch{Country: domain.Null[string]()})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdatePayout(context.Background(), 1, domain.PayoutPatch{Amount: domain.Null[decimal.Decimal]()})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdatePayoutNotFound(t *testing.T) {
	svc, repo := newTestUseCase(t)
	expectTx(repo)
	repo.EXPECT().GetPayout(mock.Anything, int64(8)).Return(nil, nil)

	p, err := svc.UpdatePayout(context.Background(), 8, domain.PayoutPatch{Amount: domain.Some(decimal.NewFromInt(1))})
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestDeletePayout(t *testing.T) {
	svc, repo := newTestUseCase(t)
	repo.EXPECT().DeletePayout(mock.Anything, int64(1)).Return(true, nil)
	repo.EXPECT().DeletePayout(mock.Anything, int64(2)).Return(false, nil)
	repo.EXPECT().DeletePayout(mock.Anything, int64(3)).Return(false, assert.AnError)

	ok, err := svc.DeletePayout(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.DeletePayout(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.DeletePayout(context.Background(), 3)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestListCountries(t *testing.T) {
	svc, _ := newTestUseCase(t)

	opts := svc.ListCountries(context.Background())
	require.NotEmpty(t, opts)
	assert.Equal(t, "USA", opts[0].Code)
	assert.Equal(t, "United States", opts[0].Name)
	assert.Equal(t, "USD", opts[0].CurrencyCode)
	assert.Equal(t, "United_States", opts[0].EnumValue)
	assert.Equal(t, "United States (USD)", opts[0].DisplayName)
}

func TestUpdatePayoutRereadsAfterLock(t *testing.T) {
	svc, repo := newTestUseCase(t)
	expectTx(repo)

	var calls []string
	record := func(name string) func(context.Context, int64) {
		return func(context.Context, int64) { calls = append(calls, name) }
	}

	// A concurrent update commits amount 50 while this request waits on the lock.
	repo.EXPECT().GetPayout(mock.Anything, int64(1)).
		Run(record("GetPayout")).
		Return(&domain.Payout{ID: 1, CampaignID: 5, Country: "USA", Amount: decimal.NewFromInt(10)}, nil).
		Once()
	repo.EXPECT().LockCampaign(mock.Anything, int64(5)).
		Run(record("LockCampaign")).
		Return(true, nil)
	repo.EXPECT().GetPayout(mock.Anything, int64(1)).
		Run(record("GetPayout")).
		Return(&domain.Payout{ID: 1, CampaignID: 5, Country: "USA", Amount: decimal.NewFromInt(50)}, nil).
		Once()
	repo.EXPECT().ListCampaignPayouts(mock.Anything, int64(5)).
		Return([]domain.Payout{{ID: 1, CampaignID: 5, Country: "USA", Amount: decimal.NewFromInt(50)}}, nil)
	repo.EXPECT().
		UpdatePayout(mock.Anything, mock.MatchedBy(func(p *domain.Payout) bool {
			return p.Country == "DEU" && p.Amount.Equal(decimal.NewFromInt(50))
		})).
		Return(nil)

	p, err := svc.UpdatePayout(context.Background(), 1, domain.PayoutPatch{Country: domain.Some("DEU")})
	require.NoError(t, err)
	assert.Equal(t, []string{"GetPayout", "LockCampaign", "GetPayout"}, calls)
	assert.Equal(t, "DEU", p.Country)
	assert.True(t, decimal.NewFromInt(50).Equal(p.Amount))
}

func TestUpdatePayoutDeletedWhileWaiting(t *testing.T) {
	svc, repo := newTestUseCase(t)
	expectTx(repo)

	repo.EXPECT().GetPayout(mock.Anything, int64(1)).
		Return(&domain.Payout{ID: 1, CampaignID: 5, Country: "USA", Amount: decimal.NewFromInt(10)}, nil).
		Once()
	repo.EXPECT().LockCampaign(mock.Anything, int64(5)).Return(true, nil)
	repo.EXPECT().GetPayout(mock.Anything, int64(1)).Return(nil, nil).Once()

	p, err := svc.UpdatePayout(context.Background(), 1, domain.PayoutPatch{Amount: domain.Some(decimal.NewFromInt(2))})
	require.NoError(t, err)
	assert.Nil(t, p)
}
