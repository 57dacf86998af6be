package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/logger"
	"pathly/run-planner/internal/repository/kv"
	"pathly/run-planner/internal/service"
)

type options struct {
	goal       string
	frequency  int
	experience string
	start      string
	format     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "plangen",
		Short: "Generate a four-week run/walk training plan",
		Long: `Generate a four-week run/walk training plan from the three onboarding answers.

EXAMPLES:
  # Beginner, three days a week, training for a 5K
  plangen --goal run_5k --frequency 3 --experience beginner

  # Fixed start date, JSON output
  plangen --goal marathon --frequency 5 --experience advanced --start 2025-01-01 --format json`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.goal, "goal", "", "training goal (build_endurance, lose_weight, run_5k, run_10k, half_marathon, marathon)")
	cmd.Flags().IntVar(&opts.frequency, "frequency", 3, "training days per week (1-6)")
	cmd.Flags().StringVar(&opts.experience, "experience", "", "experience level (beginner, intermediate, advanced)")
	cmd.Flags().StringVar(&opts.start, "start", "", "plan reference date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log generation steps to stderr")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("experience")
	return cmd
}

func runGenerate(ctx context.Context, out io.Writer, opts *options) error {
	goal, err := domain.ParseGoal(opts.goal)
	if err != nil {
		return err
	}
	frequency, err := domain.ParseFrequency(opts.frequency)
	if err != nil {
		return err
	}
	experience, err := domain.ParseExperience(opts.experience)
	if err != nil {
		return err
	}
	if opts.format != "yaml" && opts.format != "json" {
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	log := logger.NewNop()
	if opts.verbose {
		if log, err = logger.New("development"); err != nil {
			return err
		}
		defer log.Sync()
	}

	rt := service.NewRuntime(log)
	if opts.start != "" {
		start, err := time.Parse(time.DateOnly, opts.start)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		rt.Now = func() time.Time { return start }
	}

	store := kv.NewMemoryStore()
	plans := kv.NewPlanRepository(store)
	profileService := service.NewProfileService(rt, kv.NewProfileRepository(store), plans)
	planService := service.NewPlanService(rt, plans)

	profile, plan, err := service.NewOnboardingService(profileService, planService).
		Complete(ctx, goal, frequency, experience)
	if err != nil {
		return err
	}

	view := newPlanView(profile, plan)
	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err = enc.Encode(view); err != nil {
		return err
	}
	return enc.Close()
}
