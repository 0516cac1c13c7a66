// Package courses recommends courses that fill a user's skill gaps.
package courses

import (
	"context"
	"fmt"
	"sort"

	"github.com/Pauuvl/JOBY/internal/ranking"
	"github.com/Pauuvl/JOBY/internal/types"
	"go.uber.org/zap"
)

// CourseMatchResult is one recommended course.
type CourseMatchResult = ranking.MatchResult[types.CourseCandidate, ranking.CourseMatch]

// Recommender ranks courses for a user.
type Recommender struct {
	scorer *ranking.CourseScorer
	cfg    ranking.ScoringConfig
	logger *zap.Logger
}

// NewRecommender creates a Recommender. A nil scorer uses the default weights; a nil logger discards logs.
func NewRecommender(scorer *ranking.CourseScorer, cfg ranking.ScoringConfig, logger *zap.Logger) *Recommender {
	if scorer == nil {
		scorer = ranking.NewCourseScorer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{scorer: scorer, cfg: cfg, logger: logger}
}

// Recommend returns the courses that best complement userSkills.
// Users without skills get the most popular courses instead, with a zero score.
func (r *Recommender) Recommend(ctx context.Context, userSkills types.SkillSet, courses []types.CourseCandidate) ([]CourseMatchResult, error) {
	if userSkills.IsEmpty() {
		popular := Popular(courses, r.cfg.Limit)
		r.logger.Info("user has no skills, recommending popular courses", zap.Int("courses", len(popular)))

		out := make([]CourseMatchResult, 0, len(popular))
		for _, c := range popular {
			out = append(out, CourseMatchResult{Candidate: c})
		}
		return out, nil
	}

	matches, err := ranking.Rank(ctx, userSkills, courses, r.scorer.ScoreFunc(), r.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to rank courses: %w", err)
	}

	r.logger.Info("recommended courses", zap.Int("candidates", len(courses)), zap.Int("matches", len(matches)))
	return matches, nil
}

// Popular orders courses by rating, then enrollments, both descending, and keeps
// at most limit of them. Equal courses keep their input order. limit <= 0 keeps all.
func Popular(courses []types.CourseCandidate, limit int) []types.CourseCandidate {
	sorted := make([]types.CourseCandidate, len(courses))
	copy(sorted, courses)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].Enrollments > sorted[j].Enrollments
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
