package httpadapter

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"campaign-api/internal/core/domain"
	"campaign-api/internal/core/port"
)

type createPayoutRequest struct {
	Country string          `json:"country" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`
}

func (p createPayoutRequest) toPort() port.CreatePayoutReq {
	return port.CreatePayoutReq{Country: p.Country, Amount: p.Amount}
}

type createCampaignRequest struct {
	Title      *string               `json:"title" validate:"omitempty,max=255"`
	LandingURL *string               `json:"landing_url" validate:"omitempty,max=2048"`
	IsRunning  *bool                 `json:"is_running"`
	Payouts    []createPayoutRequest `json:"payouts" validate:"dive"`
}

func (c createCampaignRequest) toPort() port.CreateCampaignReq {
	req := port.CreateCampaignReq{
		Title:      c.Title,
		LandingURL: c.LandingURL,
		IsRunning:  c.IsRunning,
		Payouts:    make([]port.CreatePayoutReq, 0, len(c.Payouts)),
	}
	for _, p := range c.Payouts {
		req.Payouts = append(req.Payouts, p.toPort())
	}
	return req
}

type payoutResponse struct {
	ID         int64       `json:"id"`
	CampaignID int64       `json:"campaign_id"`
	Country    string      `json:"country"`
	Amount     json.Number `json:"amount"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Amounts are written as JSON numbers carrying the exact decimal text.
func toPayoutResponse(p domain.Payout) payoutResponse {
	return payoutResponse{
		ID:         p.ID,
		CampaignID: p.CampaignID,
		Country:    p.Country,
		Amount:     json.Number(p.Amount.String()),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toPayoutResponses(ps []domain.Payout) []payoutResponse {
	out := make([]payoutResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPayoutResponse(p))
	}
	return out
}

type campaignResponse struct {
	ID         int64            `json:"id"`
	Title      string           `json:"title"`
	LandingURL string           `json:"landing_url"`
	IsRunning  bool             `json:"is_running"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Payouts    []payoutResponse `json:"payouts"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:         c.ID,
		Title:      c.Title,
		LandingURL: c.LandingURL,
		IsRunning:  c.IsRunning,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		Payouts:    toPayoutResponses(c.Payouts),
	}
}

func toCampaignResponses(cs []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignResponse(c))
	}
	return out
}

type countryResponse struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	CurrencyCode string `json:"currency_code"`
	CurrencyName string `json:"currency_name"`
	EnumValue    string `json:"enum_value"`
	DisplayName  string `json:"display_name"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}
