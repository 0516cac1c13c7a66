// Package types provides type definitions for structured data used throughout the JOBY matching system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserProfile is the matching view of a user: the subject of every search and,
// for mentorship, also a candidate.
type UserProfile struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Name     string    `json:"name,omitempty"`
	Skills   SkillSet  `json:"skills"`
	Location string    `json:"location,omitempty"`
	// Experience is free text describing the user's work history.
	Experience string `json:"experience,omitempty"`
	// ExperienceLevel is an optional fixed-choice label. It stands in for the
	// free text when Experience is empty.
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty" validate:"omitempty,oneof=entry mid senior lead executive"`
}

// ExperienceText returns the text experience levels are inferred from. When the
// free text is empty the ExperienceLevel label is used instead; both the job
// scorer and the profile scorer read it, so a user with only a label still
// earns experience points in job matching.
func (u *UserProfile) ExperienceText() string {
	if u.Experience != "" {
		return u.Experience
	}
	return string(u.ExperienceLevel)
}

// Validate validates the UserProfile using the validator.
func (u *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}
