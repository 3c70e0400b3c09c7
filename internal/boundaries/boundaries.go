// Demo boundaries. Each generator returns the points of a closed loop in
// order; the closing edge from the last point back to the first is implied.
package boundaries

import (
	"fmt"
	"math"
	"sort"

	"github.com/osuushi/cdt/internal"
)

type Point = internal.Point

type Generator func() []Point

var generators = map[string]Generator{
	"spiral":    Spiral,
	"square_c":  SquareC,
	"square_oo": SquareOO,
	"square_3o": Square3O,
	"l_shape":   LShape,
	"hexagon":   func() []Point { return RegularPolygon(6, 4) },
}

func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Generate(name string) ([]Point, error) {
	generator, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown boundary %q (have %v)", name, Names())
	}
	return generator(), nil
}

// n evenly spaced values from start to end inclusive.
func linspace(start, end float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	result := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range result {
		result[i] = start + step*float64(i)
	}
	return result
}

func polar(r, theta float64) Point {
	return Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// A thick spiral arm, a bit more than one turn long. The outer wall runs out
// from the center and the inner wall runs back.
func Spiral() []Point {
	const r0 = 2
	const thickness = 1.75
	thetas := linspace(0, 2.5*math.Pi, 50)

	var outer, inner []Point
	for _, theta := range thetas {
		r := (1 + 4*theta/(2*math.Pi)) * r0
		outer = append(outer, polar(r, theta))
		inner = append(inner, polar(r-thickness, theta))
	}
	for i := len(inner) - 1; i >= 0; i-- {
		outer = append(outer, inner[i])
	}
	return outer
}

// 16 points on three quarters of a circle of radius 4.
func threeQuarterArc(center Point, phase float64) []Point {
	var result []Point
	for _, theta := range linspace(0, 3*math.Pi/2, 16) {
		result = append(result, center.Add(polar(4, theta+phase)))
	}
	return result
}

// Three quarters of a disc with a square bite taken out of its middle, open
// towards the bottom right.
func SquareC() []Point {
	points := threeQuarterArc(Point{}, 0)
	for i := 1; i <= 4; i++ {
		points = append(points, Point{X: 0, Y: -4 + 0.5*float64(i)})
	}
	points = append(points, Point{X: -2, Y: -2}, Point{X: -2, Y: 2}, Point{X: 2, Y: 2}, Point{X: 2, Y: 0})
	for i := 1; i <= 3; i++ {
		points = append(points, Point{X: 2 + 0.5*float64(i), Y: 0})
	}
	return points
}

// Two interlocking C shapes joined into a single loop.
func SquareOO() []Point {
	points := threeQuarterArc(Point{}, 0)
	for i := 1; i <= 4; i++ {
		points = append(points, Point{X: 0, Y: -4 + 0.5*float64(i)})
	}
	points = append(points, Point{X: -2, Y: -2}, Point{X: -2, Y: 2}, Point{X: 2, Y: 2}, Point{X: 2, Y: 0})
	points = append(points, secondC()...)
	return points
}

// Three C shapes, the third hanging below the first.
func Square3O() []Point {
	points := threeQuarterArc(Point{}, 0)
	points = append(points, Point{X: 2, Y: -4}, Point{X: 2, Y: -8}, Point{X: -2, Y: -8}, Point{X: -2, Y: -6})
	for i := 1; i <= 4; i++ {
		points = append(points, Point{X: -2 - 0.5*float64(i), Y: -6})
	}
	points = append(points, threeQuarterArc(Point{X: 0, Y: -6}, math.Pi)[1:]...)
	points = append(points, Point{X: -2, Y: -2}, Point{X: -2, Y: 2}, Point{X: 2, Y: 2}, Point{X: 2, Y: 0})
	points = append(points, secondC()...)
	return points
}

// The C centered at (6, 0), opening the other way, plus its notch.
func secondC() []Point {
	points := threeQuarterArc(Point{X: 6, Y: 0}, math.Pi)[1:]
	for i := 1; i <= 4; i++ {
		points = append(points, Point{X: 6, Y: 4 - 0.5*float64(i)})
	}
	return append(points, Point{X: 8, Y: 2}, Point{X: 8, Y: -2}, Point{X: 4, Y: -2})
}

// A 2x2 square with its top right quadrant missing.
func LShape() []Point {
	return []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}
}

// Counterclockwise regular polygon centered on the origin.
func RegularPolygon(sides int, radius float64) []Point {
	points := make([]Point, sides)
	for i := range points {
		points[i] = polar(radius, 2*math.Pi*float64(i)/float64(sides)+0.1)
	}
	return points
}
