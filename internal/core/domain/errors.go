package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound and ErrValidation are the two client-facing error classes.
// Every other error is treated as an internal failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

var (
	ErrCampaignNotFound = fmt.Errorf("campaign %w", ErrNotFound)
	ErrPayoutNotFound   = fmt.Errorf("payout %w", ErrNotFound)

	ErrInvalidURL             = fmt.Errorf("%w: invalid url format", ErrValidation)
	ErrInvalidAmount          = fmt.Errorf("%w: payout amount must be greater than 0", ErrValidation)
	ErrUnknownCountry         = fmt.Errorf("%w: unknown country", ErrValidation)
	ErrDuplicatePayoutCountry = fmt.Errorf("%w: payout for country already exists", ErrValidation)
)
