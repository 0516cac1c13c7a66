package main

import (
	"github.com/Pauuvl/JOBY/internal/inputs"
	"github.com/Pauuvl/JOBY/internal/mentorship"
	"github.com/Pauuvl/JOBY/internal/observability"
	"github.com/Pauuvl/JOBY/internal/ranking"
	"github.com/spf13/cobra"
)

func newFindMentorsCmd(root *rootOptions) *cobra.Command {
	var (
		userPath    string
		mentorsPath string
		minScore    int
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "find-mentors",
		Short: "Suggest mentors with a similar profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := root.setup(cmd)
			if err != nil {
				return err
			}

			user, err := inputs.LoadUserProfile(userPath)
			if err != nil {
				return err
			}
			mentors, err := inputs.LoadMentors(mentorsPath)
			if err != nil {
				return err
			}

			search := e.cfg.Mentors
			applyOverrides(cmd, &search, minScore, limit)

			finder := mentorship.NewFinder(ranking.NewProfileScorer(&e.cfg.Weights.Profile), e.scoring(search), e.logger)
			matches, err := finder.FindMentors(cmd.Context(), *user, mentors)
			if err != nil {
				return err
			}

			if err := e.emit(matches, func(p *observability.Printer) { p.PrintMentorMatches(matches) }); err != nil {
				return err
			}
			return e.finish()
		},
	}

	cmd.Flags().StringVarP(&userPath, "user", "u", "", "Path to UserProfile JSON file (required)")
	cmd.Flags().StringVar(&mentorsPath, "mentors", "", "Path to Mentors JSON file (required)")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "Minimum similarity score (overrides config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (overrides config)")
	markRequired(cmd, "user", "mentors")

	return cmd
}
