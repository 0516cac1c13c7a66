// Package types provides type definitions for structured data used throughout the JOBY matching system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CourseLevel is the difficulty of a course.
type CourseLevel string

// Course levels.
const (
	CourseBeginner     CourseLevel = "beginner"
	CourseIntermediate CourseLevel = "intermediate"
	CourseAdvanced     CourseLevel = "advanced"
	CourseExpert       CourseLevel = "expert"
)

// IsIntroductory reports whether the level is beginner or intermediate.
func (l CourseLevel) IsIntroductory() bool {
	return l == CourseBeginner || l == CourseIntermediate
}

// CourseCandidate is a course offered for recommendation.
type CourseCandidate struct {
	ID             uuid.UUID   `json:"id" validate:"required"`
	Title          string      `json:"title"`
	CompanyName    string      `json:"company_name,omitempty"`
	RequiredSkills SkillSet    `json:"required_skills"`
	SkillsTaught   SkillSet    `json:"skills_taught"`
	Level          CourseLevel `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Rating         float64     `json:"rating" validate:"gte=0,lte=5"`
	Enrollments    int         `json:"enrollments,omitempty" validate:"gte=0"`
}

// Validate validates the CourseCandidate using the validator.
func (c *CourseCandidate) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
