package polyline

// https://en.wikipedia.org/wiki/Ramer%E2%80%93Douglas%E2%80%93Peucker_algorithm

// Squared distance below which two consecutive output points count as the
// same vertex (0.003 in linear units). This cleans up floating point jitter
// and coincident vertices; it is not a shape approximation and does not
// depend on the caller's tolerance.
const duplicateSqEpsilon = 9e-6

// Cheap O(n) thinning pass used when the caller trades fidelity for speed:
// drop every point within the tolerance radius of the last point kept. This
// is a lossy heuristic, not exact simplification, so the exact reducer
// always runs on its output.
func (l Polyline) radialFilter(sqTolerance float64) Polyline {
	prev := l.Points[0]
	kept := []Point{prev}

	for _, p := range l.Points[1:] {
		dx := p.X - prev.X
		dy := p.Y - prev.Y
		if dx*dx+dy*dy > sqTolerance {
			kept = append(kept, p)
			prev = p
		}
	}

	// The endpoint survives even when it sits inside the radius of the last
	// kept point.
	if last := l.Points[len(l.Points)-1]; prev != last {
		kept = append(kept, last)
	}
	return FromPoints(kept)
}

// Exact Douglas-Peucker reduction over a per-index retention mask. Work
// proceeds from a stack of closed index ranges: a range whose farthest
// still-kept interior point is within tolerance of the range's chord
// discards its whole interior, otherwise it splits at that point. Range
// boundaries are never discarded, so index 0 and the last index always
// survive.
func (l Polyline) douglasPeucker(sqTolerance float64) Polyline {
	n := len(l.Points)
	if n <= 2 {
		return FromPoints(l.Points)
	}

	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}

	var stack rangeStack
	stack.Push(indexRange{0, n - 1})

	for !stack.Empty() {
		r := stack.Pop()

		dmax := 0.0
		maxIdx := r.start
		for i := r.start + 1; i < r.end; i++ {
			// Points already discarded by an enclosing range can be skipped.
			if !keep[i] {
				continue
			}
			if d := l.Points[i].sqSegDist(l.Points[r.start], l.Points[r.end]); d > dmax {
				maxIdx = i
				dmax = d
			}
		}

		if dmax > sqTolerance {
			stack.Push(indexRange{r.start, maxIdx})
			stack.Push(indexRange{maxIdx, r.end})
		} else {
			for i := r.start + 1; i < r.end; i++ {
				keep[i] = false
			}
		}
	}

	result := make([]Point, 0, n)
	for i, p := range l.Points {
		if keep[i] {
			result = append(result, p)
		}
	}
	return FromPoints(result)
}

// Final cleanup pass: collapse runs of near-coincident points so the result
// never contains zero or near-zero length segments. The first point is
// always kept.
func (l Polyline) collapseNearDuplicates() Polyline {
	if len(l.Points) == 0 {
		return Polyline{}
	}

	q := l.Points[0]
	kept := make([]Point, 0, len(l.Points))
	kept = append(kept, q)

	for _, p := range l.Points[1:] {
		dx := p.X - q.X
		dy := p.Y - q.Y
		if dx*dx+dy*dy > duplicateSqEpsilon {
			kept = append(kept, p)
			q = p
		}
	}
	return FromPoints(kept)
}

// Simplify returns a reduced copy of the polyline whose shape stays within
// tolerance (in coordinate units) of the original. highQuality skips the
// radial pre-filter and runs the exact reduction on every input point,
// trading speed for fidelity. The receiver is never modified.
//
// Two points or fewer cannot be simplified further and come back unchanged.
// A negative tolerance behaves like its absolute value, since every
// comparison happens in squared units. Coordinates are expected to be
// finite; NaN coordinates never exceed any tolerance and will be
// over-simplified away rather than rejected.
func (l Polyline) Simplify(tolerance float64, highQuality bool) Polyline {
	if l.Len() <= 2 {
		return FromPoints(append([]Point(nil), l.Points...))
	}

	sqTolerance := tolerance * tolerance

	reduced := l
	if !highQuality {
		reduced = reduced.radialFilter(sqTolerance)
	}
	reduced = reduced.douglasPeucker(sqTolerance)

	return reduced.collapseNearDuplicates()
}
