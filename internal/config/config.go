// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Pauuvl/JOBY/internal/ranking"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. JOBY_JOBS_MIN_SCORE.
const EnvPrefix = "JOBY"

// DefaultConfigName is the config file looked up in the working directory when no path is given.
const DefaultConfigName = "joby"

// Config represents the CLI configuration.
// Every field has a default, so an absent config file is not an error.
type Config struct {
	Jobs    JobsConfig    `mapstructure:"jobs" json:"jobs"`
	Alerts  AlertsConfig  `mapstructure:"alerts" json:"alerts"`
	Courses SearchConfig  `mapstructure:"courses" json:"courses"`
	Mentors SearchConfig  `mapstructure:"mentors" json:"mentors"`
	Weights WeightsConfig `mapstructure:"weights" json:"weights"`

	// Workers is the number of goroutines scoring candidates in one ranking call.
	Workers int `mapstructure:"workers" json:"workers" validate:"gte=1,lte=256"`
}

// SearchConfig is the threshold and result limit of one kind of search.
type SearchConfig struct {
	MinScore int `mapstructure:"min_score" json:"min_score" validate:"gte=0,lte=100"`
	Limit    int `mapstructure:"limit" json:"limit" validate:"gte=0"`
}

// JobsConfig configures job matching.
type JobsConfig struct {
	SearchConfig `mapstructure:",squash"`
	// CandidateCap is how many jobs are considered before scoring; zero considers all.
	CandidateCap int `mapstructure:"candidate_cap" json:"candidate_cap" validate:"gte=0"`
}

// AlertsConfig configures new-job alert checks.
type AlertsConfig struct {
	SearchConfig `mapstructure:",squash"`
	// Lookback is how far back jobs count as new when no alert was sent yet.
	Lookback time.Duration `mapstructure:"lookback" json:"lookback" validate:"gt=0"`
}

// WeightsConfig holds the scorer weights. Unset keys keep their defaults.
type WeightsConfig struct {
	Job     ranking.JobWeights     `mapstructure:"job" json:"job"`
	Course  ranking.CourseWeights  `mapstructure:"course" json:"course"`
	Profile ranking.ProfileWeights `mapstructure:"profile" json:"profile"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Jobs: JobsConfig{
			SearchConfig: SearchConfig{MinScore: 60, Limit: 10},
			CandidateCap: 50,
		},
		Alerts: AlertsConfig{
			SearchConfig: SearchConfig{MinScore: 70, Limit: 10},
			Lookback:     7 * 24 * time.Hour,
		},
		Courses: SearchConfig{MinScore: 40, Limit: 20},
		Mentors: SearchConfig{MinScore: 5, Limit: 20},
		Weights: WeightsConfig{
			Job:     ranking.DefaultJobWeights(),
			Course:  ranking.DefaultCourseWeights(),
			Profile: ranking.DefaultProfileWeights(),
		},
		Workers: 4,
	}
}

// setDefaults registers every default key so env overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("jobs.min_score", d.Jobs.MinScore)
	v.SetDefault("jobs.limit", d.Jobs.Limit)
	v.SetDefault("jobs.candidate_cap", d.Jobs.CandidateCap)
	v.SetDefault("alerts.min_score", d.Alerts.MinScore)
	v.SetDefault("alerts.limit", d.Alerts.Limit)
	v.SetDefault("alerts.lookback", d.Alerts.Lookback)
	v.SetDefault("courses.min_score", d.Courses.MinScore)
	v.SetDefault("courses.limit", d.Courses.Limit)
	v.SetDefault("mentors.min_score", d.Mentors.MinScore)
	v.SetDefault("mentors.limit", d.Mentors.Limit)
	v.SetDefault("workers", d.Workers)

	jw := d.Weights.Job
	v.SetDefault("weights.job.skills", jw.Skills)
	v.SetDefault("weights.job.location", jw.Location)
	v.SetDefault("weights.job.same_country", jw.SameCountry)
	v.SetDefault("weights.job.experience", jw.Experience)
	v.SetDefault("weights.job.experience_one_below", jw.ExperienceOneBelow)
	v.SetDefault("weights.job.experience_above", jw.ExperienceAbove)

	cw := d.Weights.Course
	v.SetDefault("weights.course.per_new_skill", cw.PerNewSkill)
	v.SetDefault("weights.course.prerequisites", cw.Prerequisites)
	v.SetDefault("weights.course.introductory_level", cw.IntroductoryLevel)
	v.SetDefault("weights.course.advanced_level", cw.AdvancedLevel)
	v.SetDefault("weights.course.popularity", cw.Popularity)

	pw := d.Weights.Profile
	v.SetDefault("weights.profile.skill_similarity", pw.SkillSimilarity)
	v.SetDefault("weights.profile.location", pw.Location)
	v.SetDefault("weights.profile.same_level", pw.SameLevel)
	v.SetDefault("weights.profile.one_level_apart", pw.OneLevelApart)
	v.SetDefault("weights.profile.two_levels_apart", pw.TwoLevelsApart)
}

// New returns a viper instance with defaults and JOBY_* environment overrides registered.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig loads configuration from path, or from joby.yaml in the working
// directory when path is empty. A missing default file is not an error; a
// missing explicit file is.
func LoadConfig(path string) (*Config, error) {
	v := New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &Error{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed %q check (value %v)", fe.Tag(), fe.Value()),
			Cause:   err,
		}
	}
	return &Error{Message: "invalid configuration", Cause: err}
}

// Scoring builds the ranking parameters for one search.
func (c *Config) Scoring(s SearchConfig) ranking.ScoringConfig {
	return ranking.ScoringConfig{
		MinScore: s.MinScore,
		Limit:    s.Limit,
		Workers:  c.Workers,
	}
}
