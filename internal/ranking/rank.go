// Package ranking scores jobs, courses and mentor profiles against a user and ranks the results.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ScoreFunc scores one candidate against the subject and returns the score with its explanation.
type ScoreFunc[S, C, D any] func(subject S, candidate C) (int, D)

// MatchResult is one scored candidate.
type MatchResult[C, D any] struct {
	Candidate C   `json:"candidate"`
	Score     int `json:"score"`
	Detail    D   `json:"detail"`
}

// Observer receives a summary of every ranking call.
type Observer interface {
	ObserveRank(scored int, kept int, scores []int)
}

// ScoringConfig holds the per-call ranking parameters.
type ScoringConfig struct {
	// MinScore drops candidates scoring below it.
	MinScore int `json:"min_score" mapstructure:"min_score" validate:"gte=0"`
	// Limit caps the number of results; zero or less keeps all of them.
	Limit int `json:"limit" mapstructure:"limit" validate:"gte=0"`
	// Workers is the number of goroutines scoring candidates; zero or less means one.
	Workers int `json:"workers" mapstructure:"workers" validate:"gte=0"`
	// Observer, if set, is told about the call once it finishes.
	Observer Observer `json:"-" mapstructure:"-"`
}

// Rank scores every candidate against subject, keeps those scoring at least
// cfg.MinScore, sorts them by descending score and truncates to cfg.Limit.
// Candidates with equal scores keep their input order.
// The returned slice is never nil. The only error is ctx being done.
func Rank[S, C, D any](ctx context.Context, subject S, candidates []C, score ScoreFunc[S, C, D], cfg ScoringConfig) ([]MatchResult[C, D], error) {
	scored := make([]MatchResult[C, D], len(candidates))

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			s, detail := score(subject, candidates[i])
			scored[i] = MatchResult[C, D]{Candidate: candidates[i], Score: s, Detail: detail}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to score candidates: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to score candidates: %w", err)
	}

	kept := make([]MatchResult[C, D], 0, len(scored))
	for _, r := range scored {
		if r.Score >= cfg.MinScore {
			kept = append(kept, r)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})

	if cfg.Limit > 0 && len(kept) > cfg.Limit {
		kept = kept[:cfg.Limit]
	}

	if cfg.Observer != nil {
		scores := make([]int, len(scored))
		for i, r := range scored {
			scores[i] = r.Score
		}
		cfg.Observer.ObserveRank(len(scored), len(kept), scores)
	}

	return kept, nil
}
