package nmgen

import (
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"
)

// Fill colors cycled by region id.
var contourPalette = []color.RGBA{
	{R: 0x7f, G: 0xb2, B: 0xe5, A: 0xff},
	{R: 0x8f, G: 0xd4, B: 0x8f, A: 0xff},
	{R: 0xe5, G: 0xb2, B: 0x7f, A: 0xff},
	{R: 0xc9, G: 0x8f, B: 0xd4, A: 0xff},
	{R: 0xd4, G: 0xc9, B: 0x8f, A: 0xff},
	{R: 0x8f, G: 0xc9, B: 0xd4, A: 0xff},
}

// DrawContoursSVG renders the contours of cset as an SVG document written to
// w. Simplified contours are drawn as filled polygons colored by region id,
// over their raw outlines drawn as thin gray lines.
func DrawContoursSVG(w io.Writer, cset *ContourSet) error {
	cs := float64(cset.CellSize())
	pad := 2 * cs
	width := float64(cset.Width())*cs + 2*pad
	height := float64(cset.Height())*cs + 2*pad

	r := svg.New(w, width, height, nil)

	toCanvas := func(vx, vz int32) (float64, float64) {
		return pad + float64(vx)*cs, pad + float64(vz)*cs
	}

	bgStyle := canvas.DefaultStyle
	bgStyle.Fill = canvas.Paint{Color: canvas.White}
	bgStyle.Stroke = canvas.Paint{Color: canvas.Transparent}
	r.RenderPath(canvas.Rectangle(width, height), bgStyle, canvas.Identity)

	rawStyle := canvas.DefaultStyle
	rawStyle.Fill = canvas.Paint{Color: canvas.Transparent}
	rawStyle.Stroke = canvas.Paint{Color: canvas.Gray}
	rawStyle.StrokeWidth = cs / 8

	contStyle := canvas.DefaultStyle
	contStyle.Stroke = canvas.Paint{Color: canvas.Black}
	contStyle.StrokeWidth = cs / 4
	contStyle.StrokeJoiner = canvas.RoundJoiner{}

	for i := int32(0); i < cset.NumContours(); i++ {
		cont := cset.Contour(i)

		if cont.NRVerts >= 2 {
			p := &canvas.Path{}
			for j := int32(0); j < cont.NRVerts; j++ {
				x, y := toCanvas(cont.RVerts[j*4+0], cont.RVerts[j*4+2])
				if j == 0 {
					p.MoveTo(x, y)
				} else {
					p.LineTo(x, y)
				}
			}
			p.Close()
			r.RenderPath(p, rawStyle, canvas.Identity)
		}

		if cont.NVerts >= 3 {
			p := &canvas.Path{}
			for j := int32(0); j < cont.NVerts; j++ {
				x, y := toCanvas(cont.Verts[j*4+0], cont.Verts[j*4+2])
				if j == 0 {
					p.MoveTo(x, y)
				} else {
					p.LineTo(x, y)
				}
			}
			p.Close()
			style := contStyle
			style.Fill = canvas.Paint{Color: contourPalette[int(cont.Reg)%len(contourPalette)]}
			r.RenderPath(p, style, canvas.Identity)
		}
	}

	return r.Close()
}
