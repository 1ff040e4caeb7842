// internal/render/primitives.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	fillImg  = newWhite()
	fontFace = text.NewGoXFace(basicfont.Face7x13)
)

func newWhite() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}

// drawText рисует строку с левым верхним углом в (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, fontFace, op)
}

// drawTextCentered центрирует строку по x.
func drawTextCentered(dst *ebiten.Image, s string, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, fontFace, 0)
	drawText(dst, s, cx-w/2, y, clr)
}

// drawTextScaled — крупный текст для объявлений.
func drawTextScaled(dst *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	w, _ := text.Measure(s, fontFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w*scale/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, fontFace, op)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func strokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func fillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

func strokeCircle(dst *ebiten.Image, cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func line(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// fillPolygon закрашивает многоугольник веером из центра. Точки заданы в единицах
// радиуса относительно (cx, cy), поворот rot в радианах.
func fillPolygon(dst *ebiten.Image, cx, cy, radius, rot float64, pts [][2]float64, clr color.RGBA) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y), SrcX: 0, SrcY: 0,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	sin, cos := math.Sincos(rot)
	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, vertex(cx, cy))
	for _, p := range pts {
		x := p[0]*cos - p[1]*sin
		y := p[0]*sin + p[1]*cos
		vs = append(vs, vertex(cx+x*radius, cy+y*radius))
	}
	is := make([]uint16, 0, len(pts)*3)
	for i := 1; i <= len(pts); i++ {
		next := i%len(pts) + 1
		is = append(is, 0, uint16(i), uint16(next))
	}
	dst.DrawTriangles(vs, is, fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
