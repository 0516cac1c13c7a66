package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeConfig(t, "joby.yaml", `
jobs:
  min_score: 55
  candidate_cap: 100
alerts:
  lookback: 72h
courses:
  limit: 5
workers: 8
weights:
  job:
    location: 20
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 55, cfg.Jobs.MinScore)
	assert.Equal(t, 10, cfg.Jobs.Limit)
	assert.Equal(t, 100, cfg.Jobs.CandidateCap)
	assert.Equal(t, 72*time.Hour, cfg.Alerts.Lookback)
	assert.Equal(t, 70, cfg.Alerts.MinScore)
	assert.Equal(t, 5, cfg.Courses.Limit)
	assert.Equal(t, 40, cfg.Courses.MinScore)
	assert.Equal(t, 8, cfg.Workers)

	assert.Equal(t, 20.0, cfg.Weights.Job.Location)
	assert.Equal(t, 40.0, cfg.Weights.Job.Skills, "unset weights keep their defaults")
	assert.Equal(t, 0.6, cfg.Weights.Profile.SkillSimilarity)
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, "joby.json", `{"mentors": {"min_score": 10, "limit": 3}}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Mentors.MinScore)
	assert.Equal(t, 3, cfg.Mentors.Limit)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JOBY_JOBS_MIN_SCORE", "75")
	t.Setenv("JOBY_ALERTS_LOOKBACK", "24h")
	t.Setenv("JOBY_WEIGHTS_COURSE_POPULARITY", "5")
	path := writeConfig(t, "joby.yaml", "jobs:\n  min_score: 55\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 75, cfg.Jobs.MinScore)
	assert.Equal(t, 24*time.Hour, cfg.Alerts.Lookback)
	assert.Equal(t, 5.0, cfg.Weights.Course.Popularity)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "joby.yaml", "jobs: [unclosed")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/joby.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := writeConfig(t, "joby.yaml", "courses:\n  min_score: 150\n")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)

	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Field, "MinScore")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := Default()
	cfg.Jobs.CandidateCap = -1

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CandidateCap")
}

func TestValidate_NegativeWeight(t *testing.T) {
	cfg := Default()
	cfg.Weights.Job.Skills = -10

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Skills")
}

func TestValidate_ZeroWorkers(t *testing.T) {
	cfg := Default()
	cfg.Workers = 0

	assert.Error(t, cfg.Validate())
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestScoring(t *testing.T) {
	cfg := Default()
	cfg.Workers = 6

	sc := cfg.Scoring(cfg.Alerts.SearchConfig)

	assert.Equal(t, 70, sc.MinScore)
	assert.Equal(t, 10, sc.Limit)
	assert.Equal(t, 6, sc.Workers)
	assert.Nil(t, sc.Observer)
}
