package occupancy

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"

	"github.com/VincidaB/vox-nav/state"
)

// Sentinel errors for grid construction.
var (
	// ErrBadResolution indicates a zero or negative cell size.
	ErrBadResolution = errors.New("occupancy: resolution must be positive")

	// ErrEmptyGrid indicates zero cells along one or more axes.
	ErrEmptyGrid = errors.New("occupancy: grid must have at least one cell per axis")

	// ErrNonRectangular indicates raster rows of differing lengths.
	ErrNonRectangular = errors.New("occupancy: all raster rows must have the same length")
)

// Grid is a dense occupancy voxel grid over an axis-aligned world region
// starting at Origin and extending resolution×(nx,ny,nz).
type Grid struct {
	origin     r3.Vector
	resolution float64
	nx, ny, nz int
	occupied   []bool
}

// NewGrid returns an all-free grid of nx×ny×nz cells of the given
// resolution, anchored at origin. Use nz == 1 for planar worlds.
func NewGrid(origin r3.Vector, resolution float64, nx, ny, nz int) (*Grid, error) {
	if resolution <= 0 {
		return nil, ErrBadResolution
	}
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		origin:     origin,
		resolution: resolution,
		nx:         nx,
		ny:         ny,
		nz:         nz,
		occupied:   make([]bool, nx*ny*nz),
	}, nil
}

// FromRaster builds a planar (nz=1) grid from a rectangular 2D integer
// raster: raster[y][x] ≥ threshold marks cell (x, y) occupied. The raster
// is read once; later raster mutations do not affect the grid.
func FromRaster(raster [][]int, origin r3.Vector, resolution float64, threshold int) (*Grid, error) {
	if len(raster) == 0 || len(raster[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(raster[0])
	for _, row := range raster {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(origin, resolution, w, len(raster), 1)
	if err != nil {
		return nil, err
	}
	for y, row := range raster {
		for x, v := range row {
			if v >= threshold {
				g.SetOccupied(x, y, 0)
			}
		}
	}

	return g, nil
}

// Dimensions returns the cell counts along x, y and z.
func (g *Grid) Dimensions() (nx, ny, nz int) { return g.nx, g.ny, g.nz }

// Resolution returns the cell edge length.
func (g *Grid) Resolution() float64 { return g.resolution }

// Origin returns the world position of the grid's minimum corner.
func (g *Grid) Origin() r3.Vector { return g.origin }

// SetOccupied marks cell (x, y, z). Out-of-range cells are ignored.
func (g *Grid) SetOccupied(x, y, z int) {
	if !g.inBounds(x, y, z) {
		return
	}
	g.occupied[g.index(x, y, z)] = true
}

// MarkBox marks occupied every cell whose center lies in the world-space
// axis-aligned box [min, max]. Scenario-construction helper.
func (g *Grid) MarkBox(min, max r3.Vector) {
	x0, y0, z0 := g.worldToCell(min)
	x1, y1, z1 := g.worldToCell(max)
	for z := maxInt(z0, 0); z <= minInt(z1, g.nz-1); z++ {
		for y := maxInt(y0, 0); y <= minInt(y1, g.ny-1); y++ {
			for x := maxInt(x0, 0); x <= minInt(x1, g.nx-1); x++ {
				g.occupied[g.index(x, y, z)] = true
			}
		}
	}
}

// OccupiedCell reports whether cell (x, y, z) is occupied. Out-of-range
// cells report free.
func (g *Grid) OccupiedCell(x, y, z int) bool {
	if !g.inBounds(x, y, z) {
		return false
	}

	return g.occupied[g.index(x, y, z)]
}

// OccupiedAt reports whether the world position p falls in an occupied
// cell.
func (g *Grid) OccupiedAt(p r3.Vector) bool {
	return g.OccupiedCell(g.worldToCell(p))
}

// CellCenter returns the world position of the center of cell (x, y, z).
func (g *Grid) CellCenter(x, y, z int) r3.Vector {
	return r3.Vector{
		X: g.origin.X + (float64(x)+0.5)*g.resolution,
		Y: g.origin.Y + (float64(y)+0.5)*g.resolution,
		Z: g.origin.Z + (float64(z)+0.5)*g.resolution,
	}
}

// IsValid implements state.Validity: a state is valid when its position
// does not fall in an occupied cell. Planar grids (nz == 1) ignore the
// third state component, so SE2 states ([x y yaw]) probe by position
// alone.
func (g *Grid) IsValid(s state.State) bool {
	p := s.R3()
	if g.nz == 1 {
		p.Z = g.origin.Z
	}

	return !g.OccupiedAt(p)
}

var _ state.Validity = (*Grid)(nil)

func (g *Grid) worldToCell(p r3.Vector) (x, y, z int) {
	x = int(math.Floor((p.X - g.origin.X) / g.resolution))
	y = int(math.Floor((p.Y - g.origin.Y) / g.resolution))
	z = int(math.Floor((p.Z - g.origin.Z) / g.resolution))

	return x, y, z
}

func (g *Grid) inBounds(x, y, z int) bool {
	return x >= 0 && x < g.nx && y >= 0 && y < g.ny && z >= 0 && z < g.nz
}

func (g *Grid) index(x, y, z int) int {
	return x + g.nx*(y+g.ny*z)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
