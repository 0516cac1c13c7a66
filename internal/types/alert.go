// Package types provides type definitions for structured data used throughout the JOBY matching system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// AlertFrequency controls how often job alerts may be sent.
type AlertFrequency string

// Alert frequencies.
const (
	FrequencyInstant  AlertFrequency = "instant"
	FrequencyDaily    AlertFrequency = "daily"
	FrequencyWeekly   AlertFrequency = "weekly"
	FrequencyDisabled AlertFrequency = "disabled"
)

// AlertPreference holds a user's job alert settings.
type AlertPreference struct {
	Enabled            bool           `json:"enabled"`
	Frequency          AlertFrequency `json:"frequency" validate:"omitempty,oneof=instant daily weekly disabled"`
	RemoteOnly         bool           `json:"remote_only,omitempty"`
	PreferredJobTypes  []JobType      `json:"preferred_job_types,omitempty" validate:"dive,oneof=full_time part_time contract internship freelance"`
	PreferredLocations []string       `json:"preferred_locations,omitempty"`
	MinSalary          *float64       `json:"min_salary,omitempty" validate:"omitempty,gte=0"`
	LastAlertSent      *time.Time     `json:"last_alert_sent,omitempty"`
}

// DefaultAlertPreference returns the settings a user gets when none were stored.
func DefaultAlertPreference() AlertPreference {
	return AlertPreference{
		Enabled:   true,
		Frequency: FrequencyInstant,
	}
}

// Validate validates the AlertPreference using the validator.
func (p *AlertPreference) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
