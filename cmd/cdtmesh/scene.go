package main

import (
	"fmt"
	"os"

	"github.com/osuushi/cdt"
	"github.com/osuushi/cdt/internal/boundaries"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// A scene file looks like this:
//
//	loops:
//	  - boundary: spiral
//	  - points: [[0, 0], [4, 0], [4, 4], [0, 4]]
//	chains:
//	  - [[1, 1], [2, 2]]
//	points:
//	  - [3, 1]
//	legalize: true
//	render:
//	  scale: 40
//	  labels: true
//
// Loops go in first, then chains, then free points.
type Scene struct {
	Loops    []LoopConfig  `yaml:"loops"`
	Chains   [][][]float64 `yaml:"chains"`
	Points   [][]float64   `yaml:"points"`
	Legalize bool          `yaml:"legalize"`
	Render   RenderConfig  `yaml:"render"`
}

// Either a named generator or explicit points.
type LoopConfig struct {
	Boundary string      `yaml:"boundary"`
	Points   [][]float64 `yaml:"points"`
}

type RenderConfig struct {
	Scale      float64 `yaml:"scale"`
	Labels     bool    `yaml:"labels"`
	HideInside bool    `yaml:"hide_interior"`
}

func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScene(data)
}

func ParseScene(data []byte) (*Scene, error) {
	scene := &Scene{}
	if err := yaml.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return scene, nil
}

func sceneFromLoops(loops [][]cdt.Point) *Scene {
	scene := &Scene{}
	for _, loop := range loops {
		config := LoopConfig{}
		for _, p := range loop {
			config.Points = append(config.Points, []float64{p.X, p.Y})
		}
		scene.Loops = append(scene.Loops, config)
	}
	return scene
}

func (r RenderConfig) options() cdt.DrawOptions {
	opts := cdt.DefaultDrawOptions
	if r.Scale > 0 {
		opts.Scale = r.Scale
	}
	opts.Labels = r.Labels
	opts.Interior = !r.HideInside
	return opts
}

func (l LoopConfig) points() ([]cdt.Point, error) {
	if l.Boundary != "" {
		if len(l.Points) > 0 {
			return nil, fmt.Errorf("loop has both a boundary name and points")
		}
		return boundaries.Generate(l.Boundary)
	}
	return toPoints(l.Points)
}

func toPoints(raw [][]float64) ([]cdt.Point, error) {
	points := make([]cdt.Point, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("point %d has %d coordinates, want 2", i, len(pair))
		}
		points[i] = cdt.Point{X: pair[0], Y: pair[1]}
	}
	return points, nil
}

func (s *Scene) Build(logger *zap.Logger) (*cdt.Mesh, error) {
	mesh := cdt.New()
	for i, loop := range s.Loops {
		points, err := loop.points()
		if err != nil {
			return nil, fmt.Errorf("loop %d: %w", i, err)
		}
		if err := mesh.AddBoundaryLoop(points); err != nil {
			return nil, fmt.Errorf("loop %d: %w", i, err)
		}
		logger.Debug("added loop", zap.Int("loop", i), zap.Int("points", len(points)))
	}
	for i, chain := range s.Chains {
		points, err := toPoints(chain)
		if err != nil {
			return nil, fmt.Errorf("chain %d: %w", i, err)
		}
		if err := mesh.AddBoundaryChain(points); err != nil {
			return nil, fmt.Errorf("chain %d: %w", i, err)
		}
		logger.Debug("added chain", zap.Int("chain", i), zap.Int("points", len(points)))
	}
	points, err := toPoints(s.Points)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	for _, p := range points {
		if _, err := mesh.InsertNode(p); err != nil {
			// A bad free point shouldn't sink the whole scene
			logger.Warn("skipped point", zap.Float64("x", p.X), zap.Float64("y", p.Y), zap.Error(err))
		}
	}
	if s.Legalize {
		flips, err := mesh.Legalize()
		if err != nil {
			return nil, err
		}
		logger.Debug("legalized", zap.Int("flips", flips))
	}
	return mesh, nil
}
