package maze

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns the number of cells reachable from the start by following passages.
func countReachable(g *Grid) int {
	seen := map[Coordinate]bool{g.Start(): true}
	stack := []Coordinate{g.Start()}
	for len(stack) != 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g.PossibleMoves(c) {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return len(seen)
}

func TestWilsonProducesSpanningTree(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {4, 4}, {13, 5},
		{30, 30}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		for seed := int64(1); seed <= 5; seed++ {
			g, e := NewGrid(w, h)
			require.NoError(t, e)
			require.NoError(t, Wilson.Generate(g, rand.New(rand.NewSource(seed))))
			assert.True(t, g.Complete(), "%dx%d seed %d", w, h, seed)
			assert.Equal(t, w*h-1, g.PassageCount(), "%dx%d seed %d", w, h,
				seed)
			assert.Equal(t, w*h, countReachable(g), "%dx%d seed %d", w, h,
				seed)
			assert.NoError(t, g.checkWalls(), "%dx%d seed %d", w, h, seed)
		}
	}
}

func TestWilsonIsDeterministicForSeed(t *testing.T) {
	a, seedA, e := NewMaze(12, 9, 42)
	require.NoError(t, e)
	b, seedB, e := NewMaze(12, 9, 42)
	require.NoError(t, e)
	assert.Equal(t, int64(42), seedA)
	assert.Equal(t, seedA, seedB)
	assert.Equal(t, a.String(), b.String())
}

func TestNewMazePicksSeed(t *testing.T) {
	g, seed, e := NewMaze(5, 5, 0)
	require.NoError(t, e)
	assert.Positive(t, seed)
	assert.True(t, g.Complete())

	_, _, e = NewMaze(0, 5, 1)
	assert.True(t, errors.Is(e, ErrInvalidDimensions))
}

func TestGenerateTwiceFails(t *testing.T) {
	g, _, e := NewMaze(3, 3, 7)
	require.NoError(t, e)
	e = Wilson.Generate(g, rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(e, ErrGenerationInvariant))
}

func TestOtherAlgorithmIsReserved(t *testing.T) {
	g, e := NewGrid(3, 3)
	require.NoError(t, e)
	e = Other.Generate(g, rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(e, ErrUnsupported))

	_, _, e = NewMazeWithAlgorithm(3, 3, 1, Other)
	assert.True(t, errors.Is(e, ErrUnsupported))
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		want    Algorithm
		wantErr bool
	}{
		{"", Wilson, false},
		{"wilson", Wilson, false},
		{" Wilson ", Wilson, false},
		{"other", Other, false},
		{"kruskal", Wilson, true},
	}
	for _, tt := range tests {
		got, e := ParseAlgorithm(tt.name)
		if tt.wantErr {
			assert.True(t, errors.Is(e, ErrUnsupported), "%q", tt.name)
			continue
		}
		require.NoError(t, e, "%q", tt.name)
		assert.Equal(t, tt.want, got, "%q", tt.name)
	}
}

func TestCommitWalkFollowsRecordedDirections(t *testing.T) {
	g, e := NewGrid(4, 4)
	require.NoError(t, e)
	// A loop: the walk ends once it returns to its own, now committed, start.
	walk := walkDirections{
		{1, 1}: Right,
		{2, 1}: Down,
		{1, 2}: Up,
		{2, 2}: Left,
	}
	count, e := commitWalk(g, Coordinate{1, 1}, walk)
	require.NoError(t, e)
	assert.Equal(t, 4, count)
	c := g.Cell(Coordinate{1, 1})
	assert.Equal(t, Passage, c.Right)
	assert.Equal(t, Passage, c.Bottom)
	c = g.Cell(Coordinate{2, 1})
	assert.Equal(t, Passage, c.Left)
	assert.Equal(t, Passage, c.Bottom)
	c = g.Cell(Coordinate{1, 2})
	assert.Equal(t, Passage, c.Right)
	assert.Equal(t, Passage, c.Top)
	c = g.Cell(Coordinate{2, 2})
	assert.Equal(t, Passage, c.Left)
	assert.Equal(t, Passage, c.Top)
	for _, pos := range []Coordinate{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		assert.True(t, g.Cell(pos).InMaze, "%s", pos)
	}
}

func TestCommitWalkStopsAtTree(t *testing.T) {
	g, e := NewGrid(3, 1)
	require.NoError(t, e)
	g.cell(Coordinate{0, 0}).InMaze = true
	walk := walkDirections{{2, 0}: Left, {1, 0}: Left}
	count, e := commitWalk(g, Coordinate{2, 0}, walk)
	require.NoError(t, e)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, g.PassageCount())
	assert.True(t, g.Complete())
}

func TestCommitWalkBlankDirection(t *testing.T) {
	g, e := NewGrid(3, 3)
	require.NoError(t, e)
	walk := walkDirections{{0, 0}: Right}
	_, e = commitWalk(g, Coordinate{0, 0}, walk)
	assert.True(t, errors.Is(e, ErrGenerationInvariant))
}

func TestRandomWalkReachesTree(t *testing.T) {
	g, e := NewGrid(6, 6)
	require.NoError(t, e)
	g.cell(Coordinate{0, 0}).InMaze = true
	start := Coordinate{5, 5}
	walk := randomWalk(g, start, rand.New(rand.NewSource(3)))
	// Following the recorded directions must end in the tree without ever
	// leaving the grid.
	current := start
	for steps := 0; !g.Cell(current).InMaze; steps++ {
		require.Less(t, steps, len(walk)+1)
		d, ok := walk[current]
		require.True(t, ok, "no direction at %s", current)
		current = current.Step(d)
		require.True(t, g.InBounds(current))
	}
	assert.Equal(t, Coordinate{0, 0}, current)
}
