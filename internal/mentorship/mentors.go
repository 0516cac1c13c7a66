// Package mentorship finds mentors whose profiles resemble a user's.
package mentorship

import (
	"context"
	"fmt"

	"github.com/Pauuvl/JOBY/internal/ranking"
	"github.com/Pauuvl/JOBY/internal/types"
	"go.uber.org/zap"
)

// MentorMatchResult is one suggested mentor.
type MentorMatchResult = ranking.MatchResult[types.MentorCandidate, ranking.ProfileMatch]

// Finder suggests mentors for a user.
type Finder struct {
	scorer *ranking.ProfileScorer
	cfg    ranking.ScoringConfig
	logger *zap.Logger
}

// NewFinder creates a Finder. A nil scorer uses the default weights; a nil logger discards logs.
func NewFinder(scorer *ranking.ProfileScorer, cfg ranking.ScoringConfig, logger *zap.Logger) *Finder {
	if scorer == nil {
		scorer = ranking.NewProfileScorer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Finder{scorer: scorer, cfg: cfg, logger: logger}
}

// Eligible keeps the mentors that are willing, active and not the user.
func Eligible(user types.UserProfile, mentors []types.MentorCandidate) []types.MentorCandidate {
	out := make([]types.MentorCandidate, 0, len(mentors))
	for _, m := range mentors {
		if !m.Available() || m.ID == user.ID {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FindMentors ranks the eligible mentors by profile similarity to user.
func (f *Finder) FindMentors(ctx context.Context, user types.UserProfile, mentors []types.MentorCandidate) ([]MentorMatchResult, error) {
	eligible := Eligible(user, mentors)

	score := func(u types.UserProfile, m types.MentorCandidate) (int, ranking.ProfileMatch) {
		match := f.scorer.Score(u, m.UserProfile)
		return match.Score, match
	}

	matches, err := ranking.Rank(ctx, user, eligible, score, f.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to rank mentors: %w", err)
	}

	f.logger.Info("found mentors",
		zap.Int("mentors", len(mentors)),
		zap.Int("eligible", len(eligible)),
		zap.Int("matches", len(matches)),
	)
	return matches, nil
}
