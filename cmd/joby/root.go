package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Pauuvl/JOBY/internal/config"
	"github.com/Pauuvl/JOBY/internal/observability"
	"github.com/Pauuvl/JOBY/internal/ranking"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	debug      bool
	jsonLogs   bool
	format     string
	metricsOut string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "joby",
		Short:         "JOBY matching engine",
		Long:          "joby scores job postings, courses and mentors against a user profile and prints the best matches.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "a config file (default is joby.yaml in current directory)")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	flags.BoolVarP(&opts.jsonLogs, "json", "j", false, "json format for logging")
	flags.StringVarP(&opts.format, "format", "f", formatText, "output format: text or json")
	flags.StringVar(&opts.metricsOut, "metrics-out", "", "write ranking metrics in Prometheus text format to this file")

	cmd.AddCommand(
		newMatchJobsCmd(opts),
		newRecommendCoursesCmd(opts),
		newFindMentorsCmd(opts),
		newCheckAlertsCmd(opts),
		newValidateCmd(opts),
	)

	return cmd
}

// env is what a subcommand needs once flags are parsed.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *ranking.Metrics
	registry *prometheus.Registry
	out      io.Writer
	opts     *rootOptions
}

func (o *rootOptions) setup(cmd *cobra.Command) (*env, error) {
	if o.format != formatText && o.format != formatJSON {
		return nil, fmt.Errorf("unknown output format %q", o.format)
	}

	logger, err := observability.NewLogger(o.jsonLogs, o.debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", zap.Any("config", cfg))

	registry := prometheus.NewRegistry()
	metrics := ranking.NewMetrics()
	if err := metrics.Register(registry); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &env{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		registry: registry,
		out:      cmd.OutOrStdout(),
		opts:     o,
	}, nil
}

// scoring returns the ranking parameters of one search, reporting to the metrics.
func (e *env) scoring(s config.SearchConfig) ranking.ScoringConfig {
	sc := e.cfg.Scoring(s)
	sc.Observer = e.metrics
	return sc
}

// emit writes v as JSON, or lets text print it for humans.
func (e *env) emit(v any, text func(*observability.Printer)) error {
	if e.opts.format == formatJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = fmt.Fprintln(e.out, string(data))
		return err
	}
	text(observability.NewPrinter(e.out))
	return nil
}

// finish flushes logs and writes the metrics file when requested.
func (e *env) finish() error {
	_ = e.logger.Sync()
	if e.opts.metricsOut == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(e.opts.metricsOut, e.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

// applyOverrides replaces the configured threshold and limit with flags the user set.
func applyOverrides(cmd *cobra.Command, s *config.SearchConfig, minScore, limit int) {
	if cmd.Flags().Changed("min-score") {
		s.MinScore = minScore
	}
	if cmd.Flags().Changed("limit") {
		s.Limit = limit
	}
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
