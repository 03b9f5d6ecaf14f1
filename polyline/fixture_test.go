package polyline

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file loads test polylines from the svg fixtures. It is not a full (or
// even correct) svg parser. It parses the SVG, finds whatever the first
// polyline element is, and converts its points into a Polyline. If anything
// goes wrong, it bails out. Keeping fixtures as SVG means anything that can
// render SVG can eyeball them.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polyline {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) == 0 {
		log.Fatalf("No polylines found in fixture %q", name)
	}
	if len(polylines) > 1 {
		log.Fatalf("More than one polyline found in fixture %q", name)
	}
	polylineEl := polylines[0]

	pointString := polylineEl.Attributes["points"]
	line := New()
	for _, pairString := range strings.Fields(pointString) {
		coords := strings.Split(pairString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pairString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		line.Add(Point{X: x, Y: y})
	}
	return line
}
