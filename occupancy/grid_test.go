package occupancy

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VincidaB/vox-nav/state"
)

func TestNewGrid_SentinelErrors(t *testing.T) {
	_, err := NewGrid(r3.Vector{}, 0, 1, 1, 1)
	assert.ErrorIs(t, err, ErrBadResolution)

	_, err = NewGrid(r3.Vector{}, -0.5, 1, 1, 1)
	assert.ErrorIs(t, err, ErrBadResolution)

	_, err = NewGrid(r3.Vector{}, 1, 0, 1, 1)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestGrid_SetAndQueryCells(t *testing.T) {
	g, err := NewGrid(r3.Vector{}, 1, 4, 4, 1)
	require.NoError(t, err)

	assert.False(t, g.OccupiedCell(2, 3, 0))
	g.SetOccupied(2, 3, 0)
	assert.True(t, g.OccupiedCell(2, 3, 0))

	// Out-of-range writes and reads are safe; outside the grid is free.
	g.SetOccupied(-1, 0, 0)
	g.SetOccupied(9, 9, 9)
	assert.False(t, g.OccupiedCell(-1, 0, 0))
	assert.False(t, g.OccupiedCell(9, 9, 9))
}

func TestGrid_OccupiedAtWorld(t *testing.T) {
	g, err := NewGrid(r3.Vector{X: -2, Y: -2}, 1, 4, 4, 1)
	require.NoError(t, err)
	g.SetOccupied(0, 0, 0) // world box [-2,-1)×[-2,-1)

	assert.True(t, g.OccupiedAt(r3.Vector{X: -1.5, Y: -1.5}))
	assert.False(t, g.OccupiedAt(r3.Vector{X: -0.5, Y: -1.5}))
	// Positions outside the grid bounds report free.
	assert.False(t, g.OccupiedAt(r3.Vector{X: 100, Y: 100}))
}

func TestGrid_CellCenter(t *testing.T) {
	g, err := NewGrid(r3.Vector{X: 1, Y: 2, Z: 3}, 0.5, 4, 4, 4)
	require.NoError(t, err)

	c := g.CellCenter(0, 0, 0)
	assert.InDelta(t, 1.25, c.X, 1e-12)
	assert.InDelta(t, 2.25, c.Y, 1e-12)
	assert.InDelta(t, 3.25, c.Z, 1e-12)

	// Center positions round-trip through the world lookup.
	g.SetOccupied(2, 1, 3)
	assert.True(t, g.OccupiedAt(g.CellCenter(2, 1, 3)))
}

func TestGrid_MarkBox(t *testing.T) {
	g, err := NewGrid(r3.Vector{}, 1, 10, 10, 1)
	require.NoError(t, err)

	g.MarkBox(r3.Vector{X: 2.5, Y: 2.5}, r3.Vector{X: 4.5, Y: 4.5})

	assert.True(t, g.OccupiedCell(3, 3, 0))
	assert.True(t, g.OccupiedCell(4, 4, 0))
	assert.False(t, g.OccupiedCell(1, 1, 0))
	assert.False(t, g.OccupiedCell(6, 6, 0))

	// A box extending past the grid must clip, not panic.
	g.MarkBox(r3.Vector{X: -5, Y: -5}, r3.Vector{X: 0.5, Y: 0.5})
	assert.True(t, g.OccupiedCell(0, 0, 0))
}

func TestFromRaster(t *testing.T) {
	raster := [][]int{
		{0, 0, 100},
		{0, 100, 0},
	}
	g, err := FromRaster(raster, r3.Vector{}, 1, 50)
	require.NoError(t, err)

	nx, ny, nz := g.Dimensions()
	assert.Equal(t, 3, nx)
	assert.Equal(t, 2, ny)
	assert.Equal(t, 1, nz)

	assert.True(t, g.OccupiedCell(2, 0, 0))
	assert.True(t, g.OccupiedCell(1, 1, 0))
	assert.False(t, g.OccupiedCell(0, 0, 0))

	// Later raster mutations must not leak into the grid.
	raster[0][0] = 100
	assert.False(t, g.OccupiedCell(0, 0, 0))
}

func TestFromRaster_SentinelErrors(t *testing.T) {
	_, err := FromRaster(nil, r3.Vector{}, 1, 1)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = FromRaster([][]int{{1, 2}, {3}}, r3.Vector{}, 1, 1)
	assert.ErrorIs(t, err, ErrNonRectangular)

	_, err = FromRaster([][]int{{1}}, r3.Vector{}, 0, 1)
	assert.ErrorIs(t, err, ErrBadResolution)
}

func TestGrid_IsValid(t *testing.T) {
	g, err := NewGrid(r3.Vector{X: -5, Y: -5, Z: -5}, 1, 10, 10, 10)
	require.NoError(t, err)
	g.MarkBox(r3.Vector{X: -1, Y: -1, Z: -1}, r3.Vector{X: 1, Y: 1, Z: 1})

	assert.False(t, g.IsValid(state.State{0, 0, 0}))
	assert.True(t, g.IsValid(state.State{4, 4, 4}))
	// Planar grids ignore the third component: SE2 states probe by
	// position, whatever the yaw.
	planar, err := NewGrid(r3.Vector{X: -5, Y: -5}, 1, 10, 10, 1)
	require.NoError(t, err)
	planar.MarkBox(r3.Vector{X: -1, Y: -1}, r3.Vector{X: 1, Y: 1})
	assert.False(t, planar.IsValid(state.State{0, 0}))
	assert.False(t, planar.IsValid(state.State{0, 0, -2.5}))
	assert.True(t, planar.IsValid(state.State{3, 3, -2.5}))
}
