package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "voxplan",
		Short: "Anytime kinodynamic sampling-based motion planner",
	}

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(gridCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// planFlags collects every flag of the plan subcommand.
type planFlags struct {
	start string
	goal  string
	min   string
	max   string

	mapPath    string
	resolution float64
	threshold  int

	model      string
	maxSpeed   float64
	maxYawRate float64
	maxSteer   float64
	wheelbase  float64

	budget        time.Duration
	threads       int
	batch         int
	seed          int64
	goalTolerance float64
	verbose       bool
}

func planCmd() *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a path between two states and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), f)
		},
	}

	cmd.Flags().StringVar(&f.start, "start", "", "start state as comma-separated components (required)")
	cmd.Flags().StringVar(&f.goal, "goal", "", "goal state as comma-separated components (required)")
	cmd.Flags().StringVar(&f.min, "min", "-10,-10", "lower world bounds")
	cmd.Flags().StringVar(&f.max, "max", "10,10", "upper world bounds")
	cmd.Flags().StringVar(&f.mapPath, "map", "", "occupancy raster file; empty means free space")
	cmd.Flags().Float64Var(&f.resolution, "resolution", 1, "occupancy cell size in world units")
	cmd.Flags().IntVar(&f.threshold, "threshold", 1, "raster value at or above which a cell is occupied")
	cmd.Flags().StringVar(&f.model, "model", "geometric",
		"dynamics model: geometric, integrator, unicycle or bicycle")
	cmd.Flags().Float64Var(&f.maxSpeed, "max-speed", 1, "speed bound for dynamic models")
	cmd.Flags().Float64Var(&f.maxYawRate, "max-yaw-rate", 1, "yaw-rate bound for the unicycle model")
	cmd.Flags().Float64Var(&f.maxSteer, "max-steer", 0.5, "steering bound (rad) for the bicycle model")
	cmd.Flags().Float64Var(&f.wheelbase, "wheelbase", 1, "wheelbase for the bicycle model")
	cmd.Flags().DurationVar(&f.budget, "time", 2*time.Second, "planning time budget")
	cmd.Flags().IntVar(&f.threads, "threads", 0, "worker count; 0 keeps the default")
	cmd.Flags().IntVar(&f.batch, "batch", 0, "samples per round; 0 keeps the default")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&f.goalTolerance, "goal-tolerance", 0.25, "goal-region radius")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "log per-round planner progress")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}
