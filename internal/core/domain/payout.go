package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payout is the amount paid for a conversion from one country within a
// campaign. A campaign has at most one payout per country.
type Payout struct {
	ID         int64
	CampaignID int64
	Country    string
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PayoutFilter narrows a listing of payouts across all campaigns.
type PayoutFilter struct {
	Country *string
}

// PayoutPatch carries a partial payout update.
type PayoutPatch struct {
	Country Optional[string]          `json:"country"`
	Amount  Optional[decimal.Decimal] `json:"amount"`
}
