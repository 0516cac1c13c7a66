package main

import (
	"fmt"
	"time"

	"github.com/Pauuvl/JOBY/internal/inputs"
	"github.com/Pauuvl/JOBY/internal/observability"
	"github.com/spf13/cobra"
)

func newCheckAlertsCmd(root *rootOptions) *cobra.Command {
	var (
		userPath  string
		jobsPath  string
		prefsPath string
		nowFlag   string
	)

	cmd := &cobra.Command{
		Use:   "check-alerts",
		Short: "Build a new-jobs alert for a user",
		Long:  "Checks the user's alert cadence and, when an alert is due, prints a digest of recently posted jobs that match well.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now().UTC()
			if nowFlag != "" {
				parsed, err := time.Parse(time.RFC3339, nowFlag)
				if err != nil {
					return fmt.Errorf("invalid --now value: %w", err)
				}
				now = parsed
			}

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

			digest, err := newJobFinder(e).CheckNewJobs(cmd.Context(), *user, pref, jobs, now)
			if err != nil {
				return err
			}

			if err := e.emit(digest, func(p *observability.Printer) { p.PrintDigest(digest) }); err != nil {
				return err
			}
			return e.finish()
		},
	}

	cmd.Flags().StringVarP(&userPath, "user", "u", "", "Path to UserProfile JSON file (required)")
	cmd.Flags().StringVar(&jobsPath, "jobs", "", "Path to Jobs JSON file (required)")
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "Path to AlertPreference JSON file (default: instant alerts)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Evaluate the alert at this RFC3339 time instead of the current time")
	markRequired(cmd, "user", "jobs")

	return cmd
}
