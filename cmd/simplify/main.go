package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/simplify/polyline"
)

// Demo of polyline simplification. Input on stdin should be newline
// separated points in the form "x y". The surviving points are printed in
// the same form, and a summary goes to stderr.

var (
	tolerance = kingpin.Flag("tolerance", "Maximum distance the simplified path may stray from the original.").
			Default("1").Float64()
	highQuality = kingpin.Flag("high-quality", "Skip the fast pre-filter pass and run the exact reduction on every point.").
			Bool()
	diff = kingpin.Flag("diff", "Print every input point, survivors in green and dropped points in red.").
		Bool()
)

func main() {
	kingpin.Parse()

	line, err := readPolyline(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	simplified := line.Simplify(*tolerance, *highQuality)

	if *diff {
		fmt.Print(line.DiffString(simplified))
	} else {
		for _, p := range simplified.Points {
			fmt.Printf("%g %g\n", p.X, p.Y)
		}
	}
	fmt.Fprintf(os.Stderr, "kept %d of %d points\n", simplified.Len(), line.Len())
}

func readPolyline(in *os.File) (polyline.Polyline, error) {
	line := polyline.New()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			continue
		}

		point, err := parsePoint(text)
		if err != nil {
			return polyline.Polyline{}, err
		}
		line.Add(point)
	}
	return line, scanner.Err()
}

func parsePoint(text string) (polyline.Point, error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return polyline.Point{}, errors.Errorf("expected point in the form \"x y\", got %q", text)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return polyline.Point{}, errors.Wrapf(err, "invalid x value in %q", text)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return polyline.Point{}, errors.Wrapf(err, "invalid y value in %q", text)
	}
	return polyline.Point{X: x, Y: y}, nil
}
