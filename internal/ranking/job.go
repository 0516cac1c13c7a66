package ranking

import (
	"strings"

	"github.com/Pauuvl/JOBY/internal/types"
)

// JobBreakdown is the contribution of each component to a job match score.
type JobBreakdown struct {
	Skills     float64 `json:"skills"`
	Location   float64 `json:"location"`
	Experience float64 `json:"experience"`
}

// JobMatch explains how a job scored against a user.
type JobMatch struct {
	Score          int                   `json:"score"`
	MatchingSkills []string              `json:"matching_skills"`
	Breakdown      JobBreakdown          `json:"breakdown"`
	UserLevel      types.ExperienceLevel `json:"user_level,omitempty"`
}

// JobScorer scores job postings against user profiles.
type JobScorer struct {
	Weights JobWeights
}

// NewJobScorer returns a JobScorer using w, or the default weights when w is nil.
func NewJobScorer(w *JobWeights) *JobScorer {
	if w == nil {
		defaults := DefaultJobWeights()
		w = &defaults
	}
	return &JobScorer{Weights: *w}
}

// Score computes the match between user and job.
func (s *JobScorer) Score(user types.UserProfile, job types.JobCandidate) JobMatch {
	skills := s.skillScore(user.Skills, job.SkillsRequired)
	location := s.locationScore(user.Location, job)
	userLevel := InferExperienceLevel(user.ExperienceText())
	experience := s.experienceScore(userLevel, job.ExperienceLevel)

	return JobMatch{
		Score:          finalScore(skills + location + experience),
		MatchingSkills: job.SkillsRequired.Intersect(user.Skills),
		Breakdown: JobBreakdown{
			Skills:     skills,
			Location:   location,
			Experience: experience,
		},
		UserLevel: userLevel,
	}
}

// ScoreFunc adapts the scorer for Rank.
func (s *JobScorer) ScoreFunc() ScoreFunc[types.UserProfile, types.JobCandidate, JobMatch] {
	return func(user types.UserProfile, job types.JobCandidate) (int, JobMatch) {
		m := s.Score(user, job)
		return m.Score, m
	}
}

// skillScore is the fraction of required skills the user has, times the weight.
func (s *JobScorer) skillScore(userSkills, required types.SkillSet) float64 {
	if userSkills.IsEmpty() || required.IsEmpty() {
		return 0
	}
	matched := len(required.Intersect(userSkills))
	return ratio(matched, required.Len()) * s.Weights.Skills
}

func (s *JobScorer) locationScore(userLocation string, job types.JobCandidate) float64 {
	if job.RemoteOK {
		return s.Weights.Location
	}
	if userLocation == "" || job.Location == "" {
		return 0
	}

	u := strings.ToLower(userLocation)
	j := strings.ToLower(job.Location)
	if strings.Contains(j, u) || strings.Contains(u, j) {
		return s.Weights.Location
	}
	if lastSegment(u) == lastSegment(j) {
		return s.Weights.SameCountry
	}
	return 0
}

// lastSegment returns the trailing comma-separated part of a location, usually the country.
func lastSegment(location string) string {
	parts := strings.Split(location, ",")
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
}

func (s *JobScorer) experienceScore(userLevel, jobLevel types.ExperienceLevel) float64 {
	if userLevel == "" {
		return 0
	}
	if userLevel == jobLevel {
		return s.Weights.Experience
	}

	userIdx := userLevel.Index()
	jobIdx := jobLevel.Index()
	if userIdx < 0 || jobIdx < 0 {
		return 0
	}

	switch {
	case userIdx > jobIdx:
		return s.Weights.ExperienceAbove
	case userIdx == jobIdx-1:
		return s.Weights.ExperienceOneBelow
	default:
		return 0
	}
}
