// Package types provides type definitions for structured data used throughout the JOBY matching system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// MentorCandidate is a user with a success story who may mentor others.
type MentorCandidate struct {
	UserProfile
	Company         string `json:"company,omitempty"`
	Position        string `json:"position,omitempty"`
	WillingToMentor bool   `json:"willing_to_mentor"`
	Active          bool   `json:"active"`
}

// Available reports whether the mentor can take mentees.
func (m *MentorCandidate) Available() bool {
	return m.WillingToMentor && m.Active
}

// Validate validates the MentorCandidate using the validator.
func (m *MentorCandidate) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}
