package main

import (
	"github.com/Pauuvl/JOBY/internal/alerts"
	"github.com/Pauuvl/JOBY/internal/inputs"
	"github.com/Pauuvl/JOBY/internal/observability"
	"github.com/Pauuvl/JOBY/internal/ranking"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newJobFinder(e *env) *alerts.Finder {
	return alerts.NewFinder(
		ranking.NewJobScorer(&e.cfg.Weights.Job),
		alerts.Options{
			Alert:        e.scoring(e.cfg.Alerts.SearchConfig),
			CandidateCap: e.cfg.Jobs.CandidateCap,
			Lookback:     e.cfg.Alerts.Lookback,
		},
		e.logger,
	)
}

func newMatchJobsCmd(root *rootOptions) *cobra.Command {
	var (
		userPath  string
		jobsPath  string
		prefsPath string
		minScore  int
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "match-jobs",
		Short: "Rank job postings against a user profile",
		Long:  "Filters jobs by the user's alert preferences, scores them on skills, location and experience, and prints the best matches.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := root.setup(cmd)
			if err != nil {
				return err
			}

			user, err := inputs.LoadUserProfile(userPath)
			if err != nil {
				return err
			}
			jobs, err := inputs.LoadJobs(jobsPath)
			if err != nil {
				return err
			}
			pref, err := inputs.LoadAlertPreference(prefsPath)
			if err != nil {
				return err
			}

			search := e.cfg.Jobs.SearchConfig
			applyOverrides(cmd, &search, minScore, limit)

			e.logger.Info("matching jobs",
				zap.Stringer("user", user.ID),
				zap.Int("jobs", len(jobs)),
				zap.Int("min_score", search.MinScore),
				zap.Int("limit", search.Limit),
			)

			matches, err := newJobFinder(e).FindMatchingJobs(cmd.Context(), *user, pref, jobs, e.scoring(search))
			if err != nil {
				return err
			}

			if err := e.emit(matches, func(p *observability.Printer) { p.PrintJobMatches(matches) }); err != nil {
				return err
			}
			return e.finish()
		},
	}

	cmd.Flags().StringVarP(&userPath, "user", "u", "", "Path to UserProfile JSON file (required)")
	cmd.Flags().StringVar(&jobsPath, "jobs", "", "Path to Jobs JSON file (required)")
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "Path to AlertPreference JSON file (default: alerts enabled, no filters)")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "Minimum match score (overrides config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (overrides config)")
	markRequired(cmd, "user", "jobs")

	return cmd
}
