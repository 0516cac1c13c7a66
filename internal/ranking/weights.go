// Package ranking scores jobs, courses and mentor profiles against a user and ranks the results.
package ranking

import (
	"github.com/go-playground/validator/v10"
)

// JobWeights holds the component weights of the job match score.
// The defaults add up to exactly 100.
type JobWeights struct {
	Skills             float64 `json:"skills" mapstructure:"skills" validate:"gte=0"`
	Location           float64 `json:"location" mapstructure:"location" validate:"gte=0"`
	SameCountry        float64 `json:"same_country" mapstructure:"same_country" validate:"gte=0"`
	Experience         float64 `json:"experience" mapstructure:"experience" validate:"gte=0"`
	ExperienceOneBelow float64 `json:"experience_one_below" mapstructure:"experience_one_below" validate:"gte=0"`
	ExperienceAbove    float64 `json:"experience_above" mapstructure:"experience_above" validate:"gte=0"`
}

// DefaultJobWeights returns the standard job match weights.
func DefaultJobWeights() JobWeights {
	return JobWeights{
		Skills:             40,
		Location:           30,
		SameCountry:        15,
		Experience:         30,
		ExperienceOneBelow: 25,
		ExperienceAbove:    15,
	}
}

// CourseWeights holds the component weights of the course match score.
type CourseWeights struct {
	PerNewSkill       float64 `json:"per_new_skill" mapstructure:"per_new_skill" validate:"gte=0"`
	Prerequisites     float64 `json:"prerequisites" mapstructure:"prerequisites" validate:"gte=0"`
	IntroductoryLevel float64 `json:"introductory_level" mapstructure:"introductory_level" validate:"gte=0"`
	AdvancedLevel     float64 `json:"advanced_level" mapstructure:"advanced_level" validate:"gte=0"`
	Popularity        float64 `json:"popularity" mapstructure:"popularity" validate:"gte=0"`
}

// DefaultCourseWeights returns the standard course match weights.
func DefaultCourseWeights() CourseWeights {
	return CourseWeights{
		PerNewSkill:       40,
		Prerequisites:     30,
		IntroductoryLevel: 15,
		AdvancedLevel:     10,
		Popularity:        15,
	}
}

// ProfileWeights holds the component weights of the profile similarity score.
type ProfileWeights struct {
	// SkillSimilarity scales the Jaccard percentage (0-100).
	SkillSimilarity float64 `json:"skill_similarity" mapstructure:"skill_similarity" validate:"gte=0,lte=1"`
	Location        float64 `json:"location" mapstructure:"location" validate:"gte=0"`
	SameLevel       float64 `json:"same_level" mapstructure:"same_level" validate:"gte=0"`
	OneLevelApart   float64 `json:"one_level_apart" mapstructure:"one_level_apart" validate:"gte=0"`
	TwoLevelsApart  float64 `json:"two_levels_apart" mapstructure:"two_levels_apart" validate:"gte=0"`
}

// DefaultProfileWeights returns the standard profile similarity weights.
func DefaultProfileWeights() ProfileWeights {
	return ProfileWeights{
		SkillSimilarity: 0.6,
		Location:        20,
		SameLevel:       20,
		OneLevelApart:   15,
		TwoLevelsApart:  10,
	}
}

// Validate checks that no weight is negative.
func (w *JobWeights) Validate() error {
	return validator.New().Struct(w)
}

// Validate checks that no weight is negative.
func (w *CourseWeights) Validate() error {
	return validator.New().Struct(w)
}

// Validate checks that no weight is negative and the skill factor is a fraction.
func (w *ProfileWeights) Validate() error {
	return validator.New().Struct(w)
}
