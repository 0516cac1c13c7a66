package ranking

import (
	"strings"

	"github.com/Pauuvl/JOBY/internal/types"
)

// ProfileMatch explains how similar two user profiles are.
// SkillOverlapPct is relative to the first profile only.
type ProfileMatch struct {
	Score                  int      `json:"score"`
	MatchingSkills         []string `json:"matching_skills"`
	SkillOverlapPct        float64  `json:"skill_overlap_percentage"`
	SameLocation           bool     `json:"same_location"`
	SimilarExperienceLevel bool     `json:"similar_experience_level"`
}

// ProfileScorer scores user profiles against each other for mentorship matching.
type ProfileScorer struct {
	Weights ProfileWeights
}

// NewProfileScorer returns a ProfileScorer using w, or the default weights when w is nil.
func NewProfileScorer(w *ProfileWeights) *ProfileScorer {
	if w == nil {
		defaults := DefaultProfileWeights()
		w = &defaults
	}
	return &ProfileScorer{Weights: *w}
}

// Score computes the similarity between a and b.
func (s *ProfileScorer) Score(a, b types.UserProfile) ProfileMatch {
	matching := a.Skills.Intersect(b.Skills)

	var score float64
	if !a.Skills.IsEmpty() && !b.Skills.IsEmpty() {
		jaccard := ratio(len(matching), a.Skills.UnionLen(b.Skills)) * 100
		score += jaccard * s.Weights.SkillSimilarity
	}

	sameLocation := a.Location != "" && b.Location != "" &&
		strings.EqualFold(a.Location, b.Location)
	if sameLocation {
		score += s.Weights.Location
	}

	rankA := SeniorityRank(a.ExperienceText())
	rankB := SeniorityRank(b.ExperienceText())
	if rankA > 0 && rankB > 0 {
		switch abs(rankA - rankB) {
		case 0:
			score += s.Weights.SameLevel
		case 1:
			score += s.Weights.OneLevelApart
		case 2:
			// Credited twice: stored mentor scores were computed this way.
			score += s.Weights.TwoLevelsApart
			score += s.Weights.TwoLevelsApart
		}
	}

	overlap := 0.0
	if !a.Skills.IsEmpty() {
		overlap = roundTo(ratio(len(matching), a.Skills.Len())*100, 2)
	}

	return ProfileMatch{
		Score:                  finalScore(score),
		MatchingSkills:         matching,
		SkillOverlapPct:        overlap,
		SameLocation:           sameLocation,
		SimilarExperienceLevel: rankA > 0 && rankA == rankB,
	}
}

// ScoreFunc adapts the scorer for Rank.
func (s *ProfileScorer) ScoreFunc() ScoreFunc[types.UserProfile, types.UserProfile, ProfileMatch] {
	return func(a, b types.UserProfile) (int, ProfileMatch) {
		m := s.Score(a, b)
		return m.Score, m
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
