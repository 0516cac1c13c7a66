package main

import (
	"github.com/Pauuvl/JOBY/internal/courses"
	"github.com/Pauuvl/JOBY/internal/inputs"
	"github.com/Pauuvl/JOBY/internal/observability"
	"github.com/Pauuvl/JOBY/internal/ranking"
	"github.com/spf13/cobra"
)

func newRecommendCoursesCmd(root *rootOptions) *cobra.Command {
	var (
		userPath    string
		coursesPath string
		minScore    int
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "recommend-courses",
		Short: "Recommend courses that teach skills the user lacks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := root.setup(cmd)
			if err != nil {
				return err
			}

			user, err := inputs.LoadUserProfile(userPath)
			if err != nil {
				return err
			}
			catalog, err := inputs.LoadCourses(coursesPath)
			if err != nil {
				return err
			}

			search := e.cfg.Courses
			applyOverrides(cmd, &search, minScore, limit)

			recommender := courses.NewRecommender(ranking.NewCourseScorer(&e.cfg.Weights.Course), e.scoring(search), e.logger)
			matches, err := recommender.Recommend(cmd.Context(), user.Skills, catalog)
			if err != nil {
				return err
			}

			if err := e.emit(matches, func(p *observability.Printer) { p.PrintCourseMatches(matches) }); err != nil {
				return err
			}
			return e.finish()
		},
	}

	cmd.Flags().StringVarP(&userPath, "user", "u", "", "Path to UserProfile JSON file (required)")
	cmd.Flags().StringVar(&coursesPath, "courses", "", "Path to Courses JSON file (required)")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "Minimum match score (overrides config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (overrides config)")
	markRequired(cmd, "user", "courses")

	return cmd
}
