package polyline

// Squared distance from p to the segment ab. Every tolerance in this package
// is compared in squared units, so the hot path never takes a square root.
func (p Point) sqSegDist(a, b Point) float64 {
	x := a.X
	y := a.Y
	dx := b.X - a.X
	dy := b.Y - a.Y

	// When a == b the segment degenerates to a point and the closest point
	// is a itself, so there is nothing to project onto.
	if dx != 0 || dy != 0 {
		t := ((p.X-x)*dx + (p.Y-y)*dy) / (dx*dx + dy*dy)
		if t > 1 {
			// Projection falls past b; b is the closest point.
			x = b.X
			y = b.Y
		} else if t > 0 {
			x += dx * t
			y += dy * t
		}
	}

	dx = p.X - x
	dy = p.Y - y
	return dx*dx + dy*dy
}

// Closed index range into the slice of points being reduced.
type indexRange struct {
	start, end int
}

// rangeStack is the reducer's explicit work list. Recursing would read more
// naturally, but near-straight inputs drive the recursion depth to O(n), so
// pending ranges live on the heap instead of the call stack.
type rangeStack []indexRange

func (s *rangeStack) Push(r indexRange) {
	*s = append(*s, r)
}

func (s *rangeStack) Pop() indexRange {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

func (s *rangeStack) Empty() bool {
	return len(*s) == 0
}
