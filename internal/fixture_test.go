package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW Polygon. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	var points []Point
	for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	result := Polygon{Points: points}

	// Ensure that the polygon is CCW
	if !result.IsCCW() {
		result = result.Reverse()
	}
	return result
}

// Some ad hoc point sets

// Deterministic scatter in the unit square. A low discrepancy sequence keeps
// points from bunching up, so no predicate lands near zero.
func ScatteredPoints(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: math.Mod(float64(i+1)*0.6180339887498949, 1),
			Y: math.Mod(float64(i+1)*0.7548776662466927, 1),
		}
	}
	return points
}

func TriangleMesh() *Mesh {
	m := NewMesh()
	m.InsertNode(Point{0, 0})
	m.InsertNode(Point{1, 0})
	m.InsertNode(Point{0, 1})
	return m
}

// A convex quad of two triangles sharing the diagonal 0-2. The diagonal is
// Delaunay: node 3 sits just outside the circle through 0, 1 and 2.
func QuadMesh() *Mesh {
	m := NewMesh()
	m.InsertNode(Point{0, 0})
	m.InsertNode(Point{1, 0})
	m.InsertNode(Point{1, 1})
	m.InsertNode(Point{0, 1.2})
	return m
}
