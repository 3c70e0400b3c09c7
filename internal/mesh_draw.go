package internal

import (
	"io"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/cdt/internal/dbg"
)

// Padding around the mesh so that hull edges aren't clipped
const drawPadding = 40

type DrawOptions struct {
	// Pixels per mesh unit
	Scale float64
	// Label nodes and edges with their indices, and triangles with their debug
	// names
	Labels bool
	// Draw interior edges as well as boundary and feature edges
	Interior bool
}

var DefaultDrawOptions = DrawOptions{Scale: 50, Interior: true}

// Render the snapshot. Feature edges are thick and yellow, boundary edges are
// blue, and interior edges are thin and white. Live triangles are filled.
func (s Snapshot) Draw(opts DrawOptions) *gg.Context {
	if opts.Scale <= 0 {
		opts.Scale = DefaultDrawOptions.Scale
	}
	min, max := s.Bounds()
	width := int(opts.Scale*(max.X-min.X)) + drawPadding*2
	height := int(opts.Scale*(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(opts.Scale, opts.Scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)

	for _, tri := range s.Triangles() {
		c.MoveTo(s.Nodes[tri[0]].X, s.Nodes[tri[0]].Y)
		c.LineTo(s.Nodes[tri[1]].X, s.Nodes[tri[1]].Y)
		c.LineTo(s.Nodes[tri[2]].X, s.Nodes[tri[2]].Y)
		c.ClosePath()
	}
	c.SetRGBA(0.3, 0.2, 1, 0.4)
	c.Fill()

	// Widths are in pixels, so undo the scale
	pixel := 1 / opts.Scale
	for _, i := range s.LiveEdges() {
		e := s.Edges[i]
		a, b := s.Nodes[e.Nodes[0]], s.Nodes[e.Nodes[1]]
		switch {
		case e.Feature:
			c.SetRGB(1, 1, 0)
			c.SetLineWidth(3 * pixel)
		case e.Boundary:
			c.SetRGB(0, 0.5, 1)
			c.SetLineWidth(2 * pixel)
		case opts.Interior:
			c.SetRGB(1, 1, 1)
			c.SetLineWidth(pixel)
		default:
			continue
		}
		c.DrawLine(a.X, a.Y, b.X, b.Y)
		c.Stroke()
	}

	c.SetRGB(1, 0, 0)
	for _, p := range s.Nodes {
		c.DrawCircle(p.X, p.Y, 3*pixel)
		c.Fill()
	}

	if opts.Labels {
		s.drawLabels(c)
	}
	return c
}

// Text has to be drawn in device space, or the flipped context would draw it
// upside down.
func (s Snapshot) drawLabels(c *gg.Context) {
	label := func(text string, p Point, r, g, b float64) {
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.SetRGB(r, g, b)
		c.DrawStringAnchored(text, x, y, 0.5, 0.5)
		c.Pop()
	}
	for i, p := range s.Nodes {
		label(strconv.Itoa(i), p.Add(Point{0.1, -0.1}), 0.4, 0.6, 1)
	}
	for _, i := range s.LiveEdges() {
		e := s.Edges[i]
		mid := s.Nodes[e.Nodes[0]].Add(s.Nodes[e.Nodes[1]]).Scale(0.5)
		label(strconv.Itoa(i), mid, 1, 0.6, 0)
	}
	for i, e := range s.Elements {
		if e.Kind != Triangle {
			continue
		}
		var centroid Point
		for _, ref := range e.Sides {
			nodes := s.Edges[ref.Edge].Nodes
			centroid = centroid.Add(s.Nodes[nodes[0]]).Add(s.Nodes[nodes[1]])
		}
		label(dbg.ElementName(i), centroid.Scale(1.0/6), 1, 0.3, 0.3)
	}
}

func (s Snapshot) SavePNG(path string, opts DrawOptions) error {
	return s.Draw(opts).SavePNG(path)
}

// Save the image, then print it to w with the iTerm inline image protocol. Handy
// while debugging.
func (s Snapshot) Imgcat(path string, opts DrawOptions, w io.Writer) error {
	if err := s.SavePNG(path, opts); err != nil {
		return err
	}
	return imgcat.CatFile(path, w)
}
