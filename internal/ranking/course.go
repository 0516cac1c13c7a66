package ranking

import (
	"math"

	"github.com/Pauuvl/JOBY/internal/types"
)

const maxRating = 5.0

// CourseBreakdown is the contribution of each component to a course match score.
type CourseBreakdown struct {
	NewSkills     float64 `json:"new_skills"`
	Prerequisites float64 `json:"prerequisites"`
	Level         float64 `json:"level"`
	Popularity    float64 `json:"popularity"`
}

// CourseMatch explains how a course scored against a user's skills.
type CourseMatch struct {
	Score     int             `json:"score"`
	NewSkills int             `json:"new_skills"`
	Breakdown CourseBreakdown `json:"breakdown"`
}

// CourseScorer scores courses against the skills a user already has.
type CourseScorer struct {
	Weights CourseWeights
}

// NewCourseScorer returns a CourseScorer using w, or the default weights when w is nil.
func NewCourseScorer(w *CourseWeights) *CourseScorer {
	if w == nil {
		defaults := DefaultCourseWeights()
		w = &defaults
	}
	return &CourseScorer{Weights: *w}
}

// Score computes how useful course is for a user with userSkills.
// Each skill the user would learn adds a full PerNewSkill; the sum is only capped at 100.
func (s *CourseScorer) Score(userSkills types.SkillSet, course types.CourseCandidate) CourseMatch {
	if userSkills.IsEmpty() {
		return CourseMatch{}
	}

	newSkills := course.SkillsTaught.MinusLen(userSkills)
	breakdown := CourseBreakdown{
		NewSkills:     float64(newSkills) * s.Weights.PerNewSkill,
		Prerequisites: s.prerequisiteScore(userSkills, course.RequiredSkills),
		Level:         s.levelScore(course.Level),
		Popularity:    s.popularityScore(course.Rating),
	}

	total := breakdown.NewSkills + breakdown.Prerequisites + breakdown.Level + breakdown.Popularity
	return CourseMatch{
		Score:     finalScore(math.Min(maxScore, total)),
		NewSkills: newSkills,
		Breakdown: breakdown,
	}
}

// ScoreFunc adapts the scorer for Rank.
func (s *CourseScorer) ScoreFunc() ScoreFunc[types.SkillSet, types.CourseCandidate, CourseMatch] {
	return func(userSkills types.SkillSet, course types.CourseCandidate) (int, CourseMatch) {
		m := s.Score(userSkills, course)
		return m.Score, m
	}
}

func (s *CourseScorer) prerequisiteScore(userSkills, required types.SkillSet) float64 {
	covered := len(required.Intersect(userSkills))
	return ratio(covered, max(required.Len(), 1)) * s.Weights.Prerequisites
}

func (s *CourseScorer) levelScore(level types.CourseLevel) float64 {
	if level.IsIntroductory() {
		return s.Weights.IntroductoryLevel
	}
	return s.Weights.AdvancedLevel
}

func (s *CourseScorer) popularityScore(rating float64) float64 {
	rating = math.Max(0, math.Min(maxRating, rating))
	return math.Min(s.Weights.Popularity, rating/maxRating*s.Weights.Popularity)
}
