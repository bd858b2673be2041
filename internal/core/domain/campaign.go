package domain

import "time"

// Placeholders applied when a campaign is created without a title or
// landing URL, or when a patch explicitly nulls them.
const (
	DefaultCampaignTitle = "Default Campaign"
	DefaultLandingURL    = "https://www.example.com"
)

// Campaign represents an advertising campaign. It owns its payouts:
// deleting a campaign deletes every payout attached to it.
type Campaign struct {
	ID         int64
	Title      string
	LandingURL string
	IsRunning  bool
	Payouts    []Payout
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CampaignFilter narrows a campaign listing. Nil fields are ignored; the
// text fields match case-insensitive substrings.
type CampaignFilter struct {
	Title      *string
	LandingURL *string
	IsRunning  *bool
}

// CampaignPatch carries a partial campaign update. Only fields that were
// present in the request are applied.
type CampaignPatch struct {
	Title      Optional[string] `json:"title"`
	LandingURL Optional[string] `json:"landing_url"`
	IsRunning  Optional[bool]   `json:"is_running"`
}

// Page is an offset/limit window over a listing.
type Page struct {
	Skip  int
	Limit int
}
