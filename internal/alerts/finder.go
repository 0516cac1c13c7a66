package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/Pauuvl/JOBY/internal/ranking"
	"github.com/Pauuvl/JOBY/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configures a Finder.
type Options struct {
	// Alert is the stricter scoring used for new-job alerts.
	Alert ranking.ScoringConfig
	// CandidateCap limits how many filtered jobs are scored; zero scores all of them.
	CandidateCap int
	// Lookback bounds what counts as new when no alert was ever sent.
	Lookback time.Duration
}

// Finder matches jobs to a user under their alert preferences.
type Finder struct {
	scorer *ranking.JobScorer
	opts   Options
	logger *zap.Logger
}

// NewFinder creates a Finder. A nil scorer uses the default weights; a nil logger discards logs.
func NewFinder(scorer *ranking.JobScorer, opts Options, logger *zap.Logger) *Finder {
	if scorer == nil {
		scorer = ranking.NewJobScorer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Finder{scorer: scorer, opts: opts, logger: logger}
}

// FindMatchingJobs filters jobs by the preferences, caps them and ranks them for user.
// Disabled preferences yield no jobs.
func (f *Finder) FindMatchingJobs(ctx context.Context, user types.UserProfile, pref types.AlertPreference, jobs []types.JobCandidate, cfg ranking.ScoringConfig) ([]JobMatchResult, error) {
	if !pref.Enabled {
		f.logger.Debug("alerts disabled, skipping job matching", zap.Stringer("user", user.ID))
		return []JobMatchResult{}, nil
	}

	filtered := FilterByPreference(pref, jobs)
	capped := CapCandidates(filtered, f.opts.CandidateCap)

	f.logger.Debug("filtering jobs by preference",
		zap.Int("initial", len(jobs)),
		zap.Int("dropped", len(jobs)-len(filtered)),
		zap.Int("considered", len(capped)),
	)

	matches, err := ranking.Rank(ctx, user, capped, f.scorer.ScoreFunc(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to rank jobs: %w", err)
	}

	f.logger.Info("matched jobs", zap.Int("candidates", len(capped)), zap.Int("matches", len(matches)))
	return matches, nil
}

// CheckNewJobs builds an alert digest of recently posted jobs matching user.
// It returns nil when the cadence does not allow an alert or nothing new matches.
func (f *Finder) CheckNewJobs(ctx context.Context, user types.UserProfile, pref types.AlertPreference, jobs []types.JobCandidate, now time.Time) (*Digest, error) {
	if !ShouldSend(pref, now) {
		f.logger.Debug("alert cadence not due",
			zap.Stringer("user", user.ID),
			zap.String("frequency", string(pref.Frequency)),
		)
		return nil, nil
	}

	since := RecentSince(pref, now, f.opts.Lookback)
	recent := make(map[uuid.UUID]struct{})
	for _, job := range jobs {
		if !job.PostedAt.Before(since) {
			recent[job.ID] = struct{}{}
		}
	}
	if len(recent) == 0 {
		f.logger.Debug("no jobs posted since last alert", zap.Time("since", since))
		return nil, nil
	}

	matches, err := f.FindMatchingJobs(ctx, user, pref, jobs, f.opts.Alert)
	if err != nil {
		return nil, err
	}

	fresh := make([]JobMatchResult, 0, len(matches))
	for _, m := range matches {
		if _, ok := recent[m.Candidate.ID]; ok {
			fresh = append(fresh, m)
		}
	}

	f.logger.Info("checked new jobs",
		zap.Int("recent", len(recent)),
		zap.Int("matches", len(matches)),
		zap.Int("new_matches", len(fresh)),
	)

	return BuildDigest(fresh, now), nil
}
