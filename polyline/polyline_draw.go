package polyline

import (
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// Render the original path with its simplification overlaid, so dropped
// detail shows up as divergence between the two strokes.
func (l Polyline) dbgDraw(simplified Polyline, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range l.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	stroke := func(line Polyline) {
		if line.Len() == 0 {
			return
		}
		c.MoveTo(line.Points[0].X, line.Points[0].Y)
		for _, p := range line.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.Stroke()
	}

	c.SetLineWidth(1)
	c.SetRGB(0.4, 0.4, 0.4)
	stroke(l)
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 0.5)
	stroke(simplified)

	c.SavePNG("/tmp/polyline.png")
	imgcat.CatFile("/tmp/polyline.png", os.Stdout)
}

// DiffString lists the receiver's points one per line with survivors of the
// given simplification in green and dropped points in red. simplified must
// be an in-order subsequence of the receiver, which is what Simplify
// produces.
func (l Polyline) DiffString(simplified Polyline) string {
	var b strings.Builder
	next := 0
	for _, p := range l.Points {
		if next < simplified.Len() && p == simplified.Points[next] {
			next++
			b.WriteString(aurora.Sprintf(aurora.Green("%g %g\n"), p.X, p.Y))
		} else {
			b.WriteString(aurora.Sprintf(aurora.Red("%g %g\n"), p.X, p.Y))
		}
	}
	return b.String()
}
