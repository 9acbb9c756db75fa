package main

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/spf13/cobra"

	"github.com/VincidaB/vox-nav/occupancy"
)

func gridCmd() *cobra.Command {
	var (
		resolution float64
		threshold  int
	)

	cmd := &cobra.Command{
		Use:   "grid [raster-file]",
		Short: "Inspect an occupancy raster and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGrid(args[0], resolution, threshold)
		},
	}

	cmd.Flags().Float64Var(&resolution, "resolution", 1, "occupancy cell size in world units")
	cmd.Flags().IntVar(&threshold, "threshold", 1, "raster value at or above which a cell is occupied")

	return cmd
}

func runGrid(path string, resolution float64, threshold int) error {
	raster, err := loadRaster(path)
	if err != nil {
		return fmt.Errorf("loading raster: %w", err)
	}
	grid, err := occupancy.FromRaster(raster, r3.Vector{}, resolution, threshold)
	if err != nil {
		return fmt.Errorf("building occupancy grid: %w", err)
	}

	nx, ny, _ := grid.Dimensions()
	occupied := 0
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			if grid.OccupiedCell(x, y, 0) {
				occupied++
			}
		}
	}

	fmt.Printf("cells: %d x %d (resolution %g)\n", nx, ny, grid.Resolution())
	fmt.Printf("occupied: %d / %d (%.1f%%)\n",
		occupied, nx*ny, 100*float64(occupied)/float64(nx*ny))
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			if grid.OccupiedCell(x, y, 0) {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}

	return nil
}
