// Package types provides type definitions for structured data used throughout the JOBY matching system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ExperienceLevel is the seniority a job asks for.
type ExperienceLevel string

// Experience levels, in ascending order.
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelExecutive ExperienceLevel = "executive"
)

// ExperienceLevels lists every level from lowest to highest.
var ExperienceLevels = []ExperienceLevel{LevelEntry, LevelMid, LevelSenior, LevelLead, LevelExecutive}

// Index returns the position of the level on the ordered scale, or -1 if unknown.
func (l ExperienceLevel) Index() int {
	for i, level := range ExperienceLevels {
		if level == l {
			return i
		}
	}
	return -1
}

// JobType is the contract type of a job posting.
type JobType string

// Job types.
const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
)

// JobCandidate is a job posting offered to the matching engine.
type JobCandidate struct {
	ID              uuid.UUID       `json:"id" validate:"required"`
	Title           string          `json:"title"`
	CompanyName     string          `json:"company_name"`
	SkillsRequired  SkillSet        `json:"skills_required"`
	Location        string          `json:"location"`
	RemoteOK        bool            `json:"remote_ok"`
	JobType         JobType         `json:"job_type,omitempty" validate:"omitempty,oneof=full_time part_time contract internship freelance"`
	ExperienceLevel ExperienceLevel `json:"experience_level" validate:"omitempty,oneof=entry mid senior lead executive"`
	SalaryMin       *float64        `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax       *float64        `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	PostedAt        time.Time       `json:"posted_at,omitempty"`
}

// HasSalary reports whether the posting carries any salary information.
func (j *JobCandidate) HasSalary() bool {
	return j.SalaryMin != nil || j.SalaryMax != nil
}

// Validate validates the JobCandidate using the validator.
func (j *JobCandidate) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
