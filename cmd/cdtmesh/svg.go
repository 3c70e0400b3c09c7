package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/cdt"
	"github.com/osuushi/cdt/internal"
)

// Read every <polygon> in an SVG file as a boundary loop. This is not a full
// svg parser; transforms are ignored. SVG's y axis points down, so loops come
// out mirrored, and any loop that ends up clockwise is reversed.
func LoadSVGLoops(path string) ([][]cdt.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	root, err := svgparser.Parse(file, true)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	elements := root.FindAll("polygon")
	if len(elements) == 0 {
		return nil, fmt.Errorf("no polygons found in %s", path)
	}

	var loops [][]cdt.Point
	for _, element := range elements {
		points, err := parsePointsAttribute(element.Attributes["points"])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		polygon := internal.Polygon{Points: points}
		if !polygon.IsCCW() {
			polygon = polygon.Reverse()
		}
		loops = append(loops, polygon.Points)
	}
	return loops, nil
}

// Parse "x1,y1 x2,y2 ...".
func parsePointsAttribute(attribute string) ([]cdt.Point, error) {
	var points []cdt.Point
	for _, pair := range strings.Fields(attribute) {
		coordinates := strings.Split(pair, ",")
		if len(coordinates) != 2 {
			return nil, fmt.Errorf("invalid point string %q", pair)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x value %q: %w", coordinates[0], err)
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y value %q: %w", coordinates[1], err)
		}
		points = append(points, cdt.Point{X: x, Y: y})
	}
	return points, nil
}
