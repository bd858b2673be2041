package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignPatchExcludeUnset(t *testing.T) {
	var p CampaignPatch
	require.NoError(t, json.Unmarshal([]byte(`{"is_running": false}`), &p))

	assert.False(t, p.Title.Set)
	assert.False(t, p.LandingURL.Set)
	assert.True(t, p.IsRunning.Set)
	assert.False(t, p.IsRunning.Null)
	assert.False(t, p.IsRunning.Value)
}

func TestCampaignPatchNullAndEmpty(t *testing.T) {
	var p CampaignPatch
	require.NoError(t, json.Unmarshal([]byte(`{"title": "", "landing_url": null}`), &p))

	assert.True(t, p.Title.Set)
	assert.False(t, p.Title.Null)
	assert.Equal(t, "", p.Title.Value)

	assert.True(t, p.LandingURL.Set)
	assert.True(t, p.LandingURL.Null)
}

func TestPayoutPatchDecimal(t *testing.T) {
	var p PayoutPatch
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 12.50}`), &p))

	assert.False(t, p.Country.Set)
	require.True(t, p.Amount.Set)
	assert.True(t, decimal.RequireFromString("12.5").Equal(p.Amount.Value))
}

func TestOptionalTypeMismatch(t *testing.T) {
	var p CampaignPatch
	assert.Error(t, json.Unmarshal([]byte(`{"is_running": "yes"}`), &p))
}

func TestCountryDataNames(t *testing.T) {
	c := CountryData{Name: "United States", Code: "USA", CurrencyCode: "USD", CurrencyName: "US Dollar"}

	assert.Equal(t, "United States (USD)", c.DisplayName())
	assert.Equal(t, "United_States", c.EnumValue())
}
