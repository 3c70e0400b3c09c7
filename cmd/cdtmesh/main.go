package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/osuushi/cdt"
	"github.com/osuushi/cdt/internal/boundaries"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app       = kingpin.New("cdtmesh", "Build a constrained Delaunay mesh and render it to a PNG.")
	sceneFile = app.Flag("scene", "YAML scene file.").ExistingFile()
	svgFile   = app.Flag("svg", "SVG file whose polygons become boundary loops.").ExistingFile()
	boundary  = app.Flag("boundary", "Named demo boundary.").Enum(boundaries.Names()...)
	out       = app.Flag("out", "PNG output path.").Default("mesh.png").String()
	scale     = app.Flag("scale", "Pixels per mesh unit.").Float64()
	labels    = app.Flag("labels", "Label nodes, edges and triangles.").Bool()
	showImg   = app.Flag("imgcat", "Print the image to the terminal (iTerm only).").Bool()
	dump      = app.Flag("dump", "Pretty print the mesh snapshot to stdout.").Bool()
	legalize  = app.Flag("legalize", "Flip edges until the mesh is Delaunay away from features.").Bool()
	verbose   = app.Flag("verbose", "Log at debug level.").Short('v').Bool()
)

// Demo of constrained triangulation. The mesh comes from a scene file, an SVG
// file, a named demo boundary, or else stdin. Input on stdin should be newline
// separated points in the form "x y", with each boundary loop separated by an
// extra newline.
//
// Outer loops should wind counterclockwise.
func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("cdtmesh failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(logger *zap.Logger) error {
	scene, err := loadScene(logger)
	if err != nil {
		return err
	}
	if *legalize {
		scene.Legalize = true
	}
	if *scale > 0 {
		scene.Render.Scale = *scale
	}
	if *labels {
		scene.Render.Labels = true
	}

	mesh, err := scene.Build(logger)
	if err != nil {
		return err
	}
	snapshot := mesh.Snapshot()
	logger.Info("mesh built",
		zap.Int("nodes", len(snapshot.Nodes)),
		zap.Int("triangles", len(snapshot.Triangles())),
		zap.Float64("area", mesh.Area()),
	)
	if *dump {
		pretty.Println(snapshot)
	}

	if *showImg {
		err = snapshot.Imgcat(*out, scene.Render.options(), os.Stdout)
	} else {
		err = snapshot.SavePNG(*out, scene.Render.options())
	}
	if err != nil {
		return err
	}
	logger.Info("wrote image", zap.String("path", *out))
	return nil
}

func loadScene(logger *zap.Logger) (*Scene, error) {
	switch {
	case *sceneFile != "":
		logger.Debug("loading scene", zap.String("path", *sceneFile))
		return LoadScene(*sceneFile)
	case *svgFile != "":
		logger.Debug("loading svg", zap.String("path", *svgFile))
		loops, err := LoadSVGLoops(*svgFile)
		if err != nil {
			return nil, err
		}
		return sceneFromLoops(loops), nil
	case *boundary != "":
		return &Scene{Loops: []LoopConfig{{Boundary: *boundary}}}, nil
	}
	logger.Debug("reading loops from stdin")
	loops, err := readPolygons(os.Stdin)
	if err != nil {
		return nil, err
	}
	return sceneFromLoops(loops), nil
}

func readPolygons(in io.Reader) ([][]cdt.Point, error) {
	polygons := [][]cdt.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []cdt.Point{}
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []cdt.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (cdt.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return cdt.Point{}, fmt.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return cdt.Point{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return cdt.Point{}, err
	}
	return cdt.Point{X: x, Y: y}, nil
}
