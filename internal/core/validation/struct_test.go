package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-api/internal/core/domain"
)

type pageQuery struct {
	Skip  int `query:"skip" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0,lte=1000"`
}

type item struct {
	Country string `json:"country" validate:"required"`
}

type body struct {
	Title *string `json:"title" validate:"omitempty,max=5"`
	Items []item  `json:"items" validate:"dive"`
}

func TestStructOk(t *testing.T) {
	assert.NoError(t, Struct(pageQuery{Skip: 0, Limit: 100}))
	assert.NoError(t, Struct(body{Items: []item{{Country: "USA"}}}))
}

func TestStructReportsTagNames(t *testing.T) {
	err := Struct(pageQuery{Skip: -1, Limit: 5000})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "skip must be at least 0")
	assert.Contains(t, err.Error(), "limit must be at most 1000")
}

func TestStructDive(t *testing.T) {
	long := "too long title"
	err := Struct(body{Title: &long, Items: []item{{Country: "USA"}, {}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "items[1].country is required")
	assert.Contains(t, err.Error(), "title must be at most 5")
}
