// Fast 2D polyline simplification for Go.
//
// This package reduces the number of points in a polyline while keeping its
// shape within a caller-supplied tolerance. It combines an optional radial
// pre-filter with Douglas-Peucker reduction, followed by a cleanup pass that
// removes near-coincident vertices, making it suitable for trimming map
// traces, plotter paths, and other dense point sequences before storage or
// rendering.
package simplify

import "github.com/osuushi/simplify/polyline"

type Point = polyline.Point
type Polyline = polyline.Polyline

// Take a list of points and reduce it to a visually equivalent list with
// fewer points. tolerance is the maximum distance (in coordinate units) the
// simplified path may stray from the original. highQuality skips the fast
// pre-filtering pass and runs the exact reduction on every point, which is
// slower but more faithful.
//
// The input is never modified. Inputs of two points or fewer are returned
// as-is. See the polyline package for the underlying types and the
// method-level API.
func Simplify(points []Point, tolerance float64, highQuality bool) []Point {
	return polyline.FromPoints(points).Simplify(tolerance, highQuality).Points
}
