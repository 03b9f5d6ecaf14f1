package polyline

// A Point is a plain 2D coordinate pair. Points are compared by exact
// structural equality. The simplification algorithm never compares points
// for equality itself, but callers and tests do, and a tolerance-based
// comparison would throw away exactly the precision this package promises
// to preserve.
type Point struct {
	X float64
	Y float64
}

func (p Point) Equal(other Point) bool {
	return p == other
}

// A Polyline is an ordered sequence of points describing a connected path.
// Order is significant. Coincident points are allowed in the input, and the
// path is not implicitly closed: nothing relates the first point to the last.
type Polyline struct {
	Points []Point
}

func New() Polyline {
	return Polyline{}
}

func FromPoints(points []Point) Polyline {
	return Polyline{Points: points}
}

func (l *Polyline) Add(point Point) {
	l.Points = append(l.Points, point)
}

func (l Polyline) Len() int {
	return len(l.Points)
}

func (l Polyline) Equal(other Polyline) bool {
	if len(l.Points) != len(other.Points) {
		return false
	}
	for i, p := range l.Points {
		if p != other.Points[i] {
			return false
		}
	}
	return true
}
