// seehuhn.de/go/pcl - a library for writing PCL printer data streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package hpgl draws vector graphics using HP-GL/2.
//
// Coordinates are given in PostScript points, measured from the top-left
// corner of the picture frame, with y increasing downwards.  Paths are
// transformed by the current transformation matrix of the shared
// [pcl.State] at the time they are painted, and are converted to plotter
// units (1016 per inch) with the y axis flipped.
//
// Curves are approximated by straight line segments using
// [github.com/tdewolff/canvas].
//
// Every HP-GL/2 session starts with the IN instruction, which resets pen
// selection and pen width.  The Plotter therefore emits the complete pen
// state in front of every painted path.
package hpgl

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pcl"
)

// UnitsPerPoint is the number of HP-GL/2 plotter units in one PostScript
// point.
const UnitsPerPoint = 1016.0 / 72.0

// DefaultTolerance is the maximal deviation, in points, between a curve
// and its polygonal approximation.
const DefaultTolerance = 0.1

// ErrNoFrame is set when a path is painted before the picture frame has
// been set.
var ErrNoFrame = errors.New("picture frame not set")

// Plotter draws HP-GL/2 graphics through a [pcl.Emitter].
//
// Errors are sticky: once an operation fails, Err is set and all further
// operations are ignored.
type Plotter struct {
	Err error

	// Tolerance is the flattening tolerance for curves, in points.
	Tolerance float64

	out   pcl.Emitter
	state *pcl.State

	height float64 // picture frame height in points, 0 if not set
	pen    int
	width  float64 // pen width in millimetres

	paths []*canvas.Path
	cur   *canvas.Path
}

// New allocates a new Plotter.  Coordinates are transformed using
// state.CTM.
func New(out pcl.Emitter, state *pcl.State) *Plotter {
	return &Plotter{
		Tolerance: DefaultTolerance,
		out:       out,
		state:     state,
		pen:       1,
		width:     0.35,
	}
}

// SetPictureFrame places the HP-GL/2 picture frame at the top-left corner
// of the logical page and sets its size.  The width and height are given
// in points.
//
// The picture frame must be set on every page before the first path is
// painted.
func (p *Plotter) SetPictureFrame(width, height float64) {
	if p.Err != nil {
		return
	}
	p.out.WritePCL(pcl.Cmd("*p", 0, 'X'))
	p.out.WritePCL(pcl.Cmd("*p", 0, 'Y'))
	p.out.WritePCL(pcl.CmdFloat("*c", width*10, 'X'))
	p.out.WritePCL(pcl.CmdFloat("*c", height*10, 'Y'))
	p.out.WritePCL(pcl.Cmd("*c", 0, 'T'))
	p.height = height
}

// SelectPen selects the pen used for subsequent paths.
func (p *Plotter) SelectPen(n int) {
	p.pen = n
}

// SetPenWidth sets the pen width in millimetres.
func (p *Plotter) SetPenWidth(mm float64) {
	p.width = mm
}

// SetPenColor assigns a colour to a pen.  The components range from 0
// to 255.
func (p *Plotter) SetPenColor(pen, r, g, b int) {
	if p.Err != nil {
		return
	}
	p.out.WriteHPGL(fmt.Sprintf("PC%d,%d,%d,%d;", pen, r, g, b))
}

// Transform applies an additional transformation to the current
// transformation matrix.  The new transformation is applied to user space
// coordinates before the existing one.
func (p *Plotter) Transform(m matrix.Matrix) {
	p.state.CTM = m.Mul(p.state.CTM)
}

// MoveTo starts a new subpath at (x, y).
func (p *Plotter) MoveTo(x, y float64) {
	if p.cur == nil {
		p.cur = &canvas.Path{}
		p.paths = append(p.paths, p.cur)
	}
	p.cur.MoveTo(x, y)
	p.state.LastMove = vec.Vec2{X: x, Y: y}
}

// LineTo appends a straight line to the current subpath.
func (p *Plotter) LineTo(x, y float64) {
	if p.cur == nil {
		p.MoveTo(p.state.LastMove.X, p.state.LastMove.Y)
	}
	p.cur.LineTo(x, y)
}

// CurveTo appends a cubic Bézier curve to the current subpath.
func (p *Plotter) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if p.cur == nil {
		p.MoveTo(p.state.LastMove.X, p.state.LastMove.Y)
	}
	p.cur.CubeTo(x1, y1, x2, y2, x3, y3)
}

// ClosePath closes the current subpath.
func (p *Plotter) ClosePath() {
	if p.cur == nil {
		return
	}
	p.cur.Close()
	p.state.LastMove = vec.Vec2{}
}

// Rectangle appends a closed rectangle with top-left corner (x, y) to the
// current path.
func (p *Plotter) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.cur.LineTo(x+w, y)
	p.cur.LineTo(x+w, y+h)
	p.cur.LineTo(x, y+h)
	p.cur.Close()
}

// Circle appends a circle with centre (x, y) and radius r to the current
// path.
func (p *Plotter) Circle(x, y, r float64) {
	p.MoveTo(x+r, y)
	p.cur.ArcTo(r, r, 0, false, true, x-r, y)
	p.cur.ArcTo(r, r, 0, false, true, x+r, y)
	p.cur.Close()
}

// AppendPath appends a path to the current path.
func (p *Plotter) AppendPath(path *canvas.Path) {
	p.paths = append(p.paths, path)
	p.cur = nil
}

// DrawPath strokes the given path.
func (p *Plotter) DrawPath(path *canvas.Path) {
	p.AppendPath(path)
	p.Stroke()
}

// DrawSVGPath strokes a path given in SVG path syntax, for example
// "M 10 10 L 100 10 Z".
func (p *Plotter) DrawSVGPath(d string) {
	if p.Err != nil {
		return
	}
	path, err := canvas.ParseSVGPath(d)
	if err != nil {
		p.Err = fmt.Errorf("DrawSVGPath: %w", err)
		return
	}
	p.DrawPath(path)
}

// Line strokes a straight line from (x1, y1) to (x2, y2).
func (p *Plotter) Line(x1, y1, x2, y2 float64) {
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	p.Stroke()
}

// Stroke draws the outline of the current path and starts a new path.
func (p *Plotter) Stroke() {
	lines := p.endPath("Stroke")
	if len(lines) == 0 {
		return
	}

	b := p.penState()
	empty := true
	for _, l := range lines {
		if len(l) < 2 {
			continue
		}
		writePoints(b, "PU", l[:1])
		writePoints(b, "PD", l[1:])
		empty = false
	}
	if empty {
		return
	}
	p.out.WriteHPGL(b.String())
}

// Fill fills the current path using the even-odd rule and starts a new
// path.
func (p *Plotter) Fill() {
	lines := p.endPath("Fill")
	if len(lines) == 0 {
		return
	}

	b := p.penState()
	first := true
	for _, l := range lines {
		if len(l) < 2 {
			continue
		}
		if !first {
			b.WriteString("PM1;")
		}
		writePoints(b, "PU", l[:1])
		if first {
			b.WriteString("PM0;")
			first = false
		}
		writePoints(b, "PD", l[1:])
	}
	if first {
		return
	}
	b.WriteString("PM2;FP;")
	p.out.WriteHPGL(b.String())
}

// endPath converts the current path to polylines in plotter units and
// clears the path.
func (p *Plotter) endPath(op string) [][]point {
	paths := p.paths
	p.paths = nil
	p.cur = nil

	if p.Err != nil || len(paths) == 0 {
		return nil
	}
	if p.height == 0 {
		p.Err = fmt.Errorf("%s: %w", op, ErrNoFrame)
		return nil
	}

	var lines [][]point
	for _, path := range paths {
		var line []point
		s := path.Flatten(p.Tolerance).Scanner()
		for s.Scan() {
			end := p.toDevice(s.End().X, s.End().Y)
			switch s.Cmd() {
			case canvas.MoveToCmd:
				if len(line) > 0 {
					lines = append(lines, line)
				}
				line = []point{end}
			case canvas.LineToCmd, canvas.CloseCmd:
				line = append(line, end)
			}
		}
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}

type point struct {
	x, y int
}

func (p *Plotter) toDevice(x, y float64) point {
	px, py := p.state.Apply(x, y)
	return point{
		x: int(math.Round(px * UnitsPerPoint)),
		y: int(math.Round((p.height - py) * UnitsPerPoint)),
	}
}

func (p *Plotter) penState() *strings.Builder {
	b := &strings.Builder{}
	b.WriteString("SP")
	b.WriteString(strconv.Itoa(p.pen))
	b.WriteString(";PW")
	b.WriteString(strconv.FormatFloat(p.width, 'f', -1, 64))
	b.WriteString(";")
	return b
}

func writePoints(b *strings.Builder, cmd string, pts []point) {
	b.WriteString(cmd)
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(pt.x))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(pt.y))
	}
	b.WriteByte(';')
}
