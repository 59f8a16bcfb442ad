package grapher

import (
	"image/color"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/colornames"
)

// errWriter remembers the first error of an underlying writer, as svgo does
// not report write errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func stroke(c color.RGBA) string {
	return "stroke:rgb(" + strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + ");stroke-width:1"
}

// WriteSVG renders a graph onto a viewport and writes it as an SVG document.
// The unit grid is drawn with the axes highlighted and labeled.
func WriteSVG(w io.Writer, g *Graph, vp Viewport) error {
	ew := &errWriter{w: w}
	width, height := int(vp.Width), int(vp.Height)
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, canvas.RGB(int(colornames.White.R),
		int(colornames.White.G), int(colornames.White.B)))
	writeGrid(canvas, vp)
	r := int(math.Max(1, math.Round(vp.Radius)))
	n := 0
	for _, f := range g.Functions {
		canvas.Gid(f.Expr)
		for _, p := range f.Points {
			pos, ok := vp.Project(p.Value)
			if !ok {
				continue
			}
			c := PointColor(p, g.Coloring)
			canvas.Circle(int(math.Round(pos.X())), int(math.Round(pos.Y())), r,
				canvas.RGB(int(c.R), int(c.G), int(c.B)))
			n++
		}
		canvas.Gend()
	}
	canvas.End()
	tracer().Debugf("SVG output with %d of %d points", n, g.Len())
	return ew.err
}

func writeGrid(canvas *svg.SVG, vp Viewport) {
	scale := vp.Scale()
	rows, cols := vp.Grid()
	m, n := vp.Origin()
	width, height := int(vp.Width), int(vp.Height)
	gridStyle := stroke(colornames.Silver)
	axisStyle := stroke(colornames.Black)
	labelStyle := "font-size:10px;font-family:sans-serif;text-anchor:end;fill:black"
	canvas.Gid("grid")
	for i := 0; i <= rows; i++ {
		y := int(math.Round(float64(i) * scale))
		style := gridStyle
		if i == n {
			style = axisStyle
		}
		canvas.Line(0, y, width, y, style)
	}
	for i := 0; i <= cols; i++ {
		x := int(math.Round(float64(i) * scale))
		style := gridStyle
		if i == m {
			style = axisStyle
		}
		canvas.Line(x, 0, x, height, style)
	}
	xaxis := height - int(math.Round(float64(n)*scale))
	yaxis := int(math.Round(float64(m) * scale))
	for i := 0; i <= cols; i++ {
		if i != m {
			canvas.Text(int(math.Round(float64(i)*scale))-2, xaxis-2, strconv.Itoa(i-m), labelStyle)
		}
	}
	for j := 0; j <= rows; j++ {
		if j != n {
			y := height - int(math.Round(float64(j)*scale))
			canvas.Text(yaxis-2, y-2, strconv.Itoa(j-n), labelStyle)
		}
	}
	canvas.Gend()
}
