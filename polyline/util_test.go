package polyline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqSegDist(t *testing.T) {
	a := Point{0, 0}
	b := Point{4, 0}

	// Projection lands inside the segment
	assert.Equal(t, 9.0, Point{2, 3}.sqSegDist(a, b))

	// Projection falls past b, so the closest point is b
	assert.Equal(t, 13.0, Point{6, 3}.sqSegDist(a, b))

	// Projection falls before a, so the closest point is a
	assert.Equal(t, 25.0, Point{-3, 4}.sqSegDist(a, b))

	// Point on the segment
	assert.Equal(t, 0.0, Point{1, 0}.sqSegDist(a, b))

	// Degenerate segment falls back to point-to-point distance
	assert.Equal(t, 25.0, Point{3, 4}.sqSegDist(a, a))
}

func TestEquality(t *testing.T) {
	// Equality is exact, not tolerance based
	assert.True(t, Point{1, 2}.Equal(Point{1, 2}))
	assert.False(t, Point{1, 2}.Equal(Point{1, 2.0000001}))

	a := line(0, 0, 1, 1)
	assert.True(t, a.Equal(line(0, 0, 1, 1)))
	assert.False(t, a.Equal(line(0, 0, 1, 1, 2, 2)))
	assert.False(t, a.Equal(line(0, 0, 1, 2)))
}

func TestRangeStack(t *testing.T) {
	var rs rangeStack
	assert.True(t, rs.Empty())
	rs.Push(indexRange{0, 9})
	assert.False(t, rs.Empty())
	assert.Equal(t, indexRange{0, 9}, rs.Pop())
	assert.True(t, rs.Empty())
	rs.Push(indexRange{0, 4})
	rs.Push(indexRange{4, 9})
	assert.Equal(t, indexRange{4, 9}, rs.Pop())
	assert.Equal(t, indexRange{0, 4}, rs.Pop())
	assert.True(t, rs.Empty())
}
