package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds a 3x3 grid whose only route is a snake through every row, plus a
// dead-end branch that the solver must not include.
func snakeGrid(t *testing.T) (*Grid, Path) {
	g, e := NewGrid(3, 3)
	require.NoError(t, e)
	route := Path{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {0, 1}, {0, 2},
		{1, 2}, {2, 2}}
	moves := []Direction{Right, Right, Down, Left, Left, Down, Right, Right}
	for i, d := range moves {
		require.NoError(t, g.Carve(route[i], d))
	}
	return g, route
}

func TestSolveHandCarvedPath(t *testing.T) {
	g, route := snakeGrid(t)
	path, e := Solve(g)
	require.NoError(t, e)
	assert.Equal(t, route, path)
	assert.NoError(t, path.Validate(g))
}

func TestSolveIgnoresDeadEnds(t *testing.T) {
	g, e := NewGrid(3, 2)
	require.NoError(t, e)
	require.NoError(t, g.Carve(Coordinate{0, 0}, Down))
	require.NoError(t, g.Carve(Coordinate{0, 1}, Right))
	require.NoError(t, g.Carve(Coordinate{1, 1}, Right))
	// Dead end off the route.
	require.NoError(t, g.Carve(Coordinate{1, 1}, Up))
	require.NoError(t, g.Carve(Coordinate{1, 0}, Right))
	path, e := Solve(g)
	require.NoError(t, e)
	assert.Equal(t, Path{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, path)
}

func TestSolveDisconnectedEnd(t *testing.T) {
	g, e := NewGrid(3, 3)
	require.NoError(t, e)
	require.NoError(t, g.Carve(Coordinate{0, 0}, Right))
	require.NoError(t, g.Carve(Coordinate{1, 0}, Down))
	path, e := Solve(g)
	assert.Nil(t, path)
	assert.True(t, errors.Is(e, ErrPathNotFound), "got %v", e)
}

func TestSolveSingleCell(t *testing.T) {
	g, _, e := NewMaze(1, 1, 1)
	require.NoError(t, e)
	path, e := Solve(g)
	require.NoError(t, e)
	assert.Equal(t, Path{{0, 0}}, path)
}

func TestSolveIsIdempotent(t *testing.T) {
	g, _, e := NewMaze(25, 17, 99)
	require.NoError(t, e)
	before := g.String()
	first, e := Solve(g)
	require.NoError(t, e)
	second, e := Solve(g)
	require.NoError(t, e)
	assert.Equal(t, first, second)
	assert.Equal(t, before, g.String())
}

func TestGenerateAndSolve(t *testing.T) {
	g, _, e := NewMaze(10, 10, 2024)
	require.NoError(t, e)
	assert.Equal(t, 99, g.PassageCount())
	assert.True(t, g.Complete())

	path, e := Solve(g)
	require.NoError(t, e)
	require.NotEmpty(t, path)
	assert.Equal(t, Coordinate{0, 0}, path[0])
	assert.Equal(t, Coordinate{9, 9}, path[len(path)-1])
	assert.NoError(t, path.Validate(g))
	assert.True(t, path.Contains(Coordinate{9, 9}))
}

func TestPathValidate(t *testing.T) {
	g, route := snakeGrid(t)
	tests := []struct {
		name string
		path Path
	}{
		{"empty", Path{}},
		{"wrong start", route[1:]},
		{"wrong end", route[:len(route)-1]},
		{"through wall", Path{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}},
		{"not adjacent", Path{{0, 0}, {2, 2}}},
		{"repeat", append(Path{{0, 0}, {1, 0}, {0, 0}}, route[1:]...)},
		{"out of bounds", Path{{0, 0}, {-1, 0}, {2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.path.Validate(g)
			assert.True(t, errors.Is(e, ErrInvalidEncoding), "got %v", e)
		})
	}
}
