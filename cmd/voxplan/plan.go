package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang/geo/r3"

	"github.com/VincidaB/vox-nav/dynamics"
	"github.com/VincidaB/vox-nav/occupancy"
	"github.com/VincidaB/vox-nav/planner"
	"github.com/VincidaB/vox-nav/state"
)

// planOutput is the JSON document written to stdout.
type planOutput struct {
	Status    string         `json:"status"`
	Geometric *pathOutput    `json:"geometric,omitempty"`
	Control   *pathOutput    `json:"control,omitempty"`
	Stats     map[string]any `json:"stats"`
}

type pathOutput struct {
	Cost      float64          `json:"cost"`
	Waypoints []waypointOutput `json:"waypoints"`
}

type waypointOutput struct {
	State    []float64 `json:"state"`
	Control  []float64 `json:"control,omitempty"`
	Duration float64   `json:"duration,omitempty"`
}

func runPlan(ctx context.Context, f planFlags) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(f.verbose),
	}))

	start, err := parseState(f.start)
	if err != nil {
		return fmt.Errorf("parsing --start: %w", err)
	}
	goal, err := parseState(f.goal)
	if err != nil {
		return fmt.Errorf("parsing --goal: %w", err)
	}
	low, err := parseState(f.min)
	if err != nil {
		return fmt.Errorf("parsing --min: %w", err)
	}
	high, err := parseState(f.max)
	if err != nil {
		return fmt.Errorf("parsing --max: %w", err)
	}

	space, prop, err := buildModel(f, low, high)
	if err != nil {
		return err
	}

	validity, err := buildValidity(f, low)
	if err != nil {
		return err
	}

	opts := []planner.Option{
		planner.WithSeed(f.seed),
		planner.WithGoalTolerance(f.goalTolerance),
		planner.WithLogger(logger),
	}
	if f.threads > 0 {
		opts = append(opts, planner.WithNumThreads(f.threads))
	}
	if f.batch > 0 {
		opts = append(opts, planner.WithBatchSize(f.batch))
	}
	if prop != nil {
		opts = append(opts, planner.WithPropagator(prop))
	}

	p, err := planner.New(space, validity, opts...)
	if err != nil {
		return err
	}

	logger.Info("planning", "start", f.start, "goal", f.goal, "model", f.model, "budget", f.budget)
	runCtx, cancel := context.WithTimeout(ctx, f.budget)
	defer cancel()
	sol, err := p.Solve(runCtx, start, goal)
	if err != nil {
		return err
	}

	data := p.Data()
	out := planOutput{
		Status:    sol.Status.String(),
		Geometric: convertPath(sol.GeometricPath),
		Control:   convertPath(sol.ControlPath),
		Stats: map[string]any{
			"workers":             data.Workers,
			"rounds":              data.Rounds,
			"geometric_vertices":  data.GeometricVertices,
			"geometric_edges":     data.GeometricEdges,
			"geometric_reachable": data.GeometricReachable,
			"control_vertices":    data.ControlVertices,
			"control_edges":       data.ControlEdges,
			"control_reachable":   data.ControlReachable,
		},
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// buildModel returns the state space and, for dynamic models, the
// propagator. Geometric and integrator queries plan in R^n; unicycle and
// bicycle plan in SE2.
func buildModel(f planFlags, low, high []float64) (state.Space, *dynamics.Propagator, error) {
	switch f.model {
	case "geometric":
		sp, err := state.NewRealVectorSpace(low, high)

		return sp, nil, err

	case "integrator":
		sp, err := state.NewRealVectorSpace(low, high)
		if err != nil {
			return nil, nil, err
		}
		m, err := dynamics.NewIntegrator(sp.Dimension(), f.maxSpeed)
		if err != nil {
			return nil, nil, err
		}
		prop, err := dynamics.NewPropagator(m, dynamics.DefaultStepSize)

		return sp, prop, err

	case "unicycle":
		sp, err := state.NewSE2Space(low, high, state.DefaultYawWeight)
		if err != nil {
			return nil, nil, err
		}
		m, err := dynamics.NewUnicycle(f.maxSpeed, f.maxYawRate)
		if err != nil {
			return nil, nil, err
		}
		prop, err := dynamics.NewPropagator(m, dynamics.DefaultStepSize)

		return sp, prop, err

	case "bicycle":
		sp, err := state.NewSE2Space(low, high, state.DefaultYawWeight)
		if err != nil {
			return nil, nil, err
		}
		m, err := dynamics.NewBicycle(f.wheelbase, f.maxSpeed, f.maxSteer)
		if err != nil {
			return nil, nil, err
		}
		prop, err := dynamics.NewPropagator(m, dynamics.DefaultStepSize)

		return sp, prop, err

	default:
		return nil, nil, fmt.Errorf("unknown model %q", f.model)
	}
}

// buildValidity loads the occupancy raster, or accepts everything when no
// map was given.
func buildValidity(f planFlags, low []float64) (state.Validity, error) {
	if f.mapPath == "" {
		return state.AlwaysValid(), nil
	}
	raster, err := loadRaster(f.mapPath)
	if err != nil {
		return nil, fmt.Errorf("loading --map: %w", err)
	}
	origin := r3.Vector{X: low[0]}
	if len(low) > 1 {
		origin.Y = low[1]
	}
	grid, err := occupancy.FromRaster(raster, origin, f.resolution, f.threshold)
	if err != nil {
		return nil, fmt.Errorf("building occupancy grid: %w", err)
	}

	return grid, nil
}

func convertPath(p *planner.Path) *pathOutput {
	if p == nil {
		return nil
	}
	out := &pathOutput{Cost: p.Cost, Waypoints: make([]waypointOutput, 0, p.Len())}
	for _, wp := range p.Waypoints {
		out.Waypoints = append(out.Waypoints, waypointOutput{
			State:    wp.State,
			Control:  wp.Control,
			Duration: wp.Duration,
		})
	}

	return out
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}
