// Package raster paints onto an in-memory RGBA image.
//
// It implements [graphics.Canvas] in software so that a ValueBar can be
// rendered without a GPU host, e.g. to produce PNG snapshots or to feed a
// terminal preview. Shapes are scan converted with golang.org/x/image/vector
// and text is drawn with golang.org/x/image/font, then mapped through the
// current transform.
package raster

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/valuebar/pkg/graphics"
)

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// Canvas is a software graphics.Canvas backed by an *image.RGBA.
//
// Rectangles whose right edge lies left of their left edge (or bottom above
// top) are not drawn. Canvas is not safe for concurrent use.
type Canvas struct {
	img       *image.RGBA
	size      graphics.Size
	transform f64.Aff3
	stack     []f64.Aff3
	ras       vector.Rasterizer
}

// NewCanvas allocates a transparent canvas. Fractional sizes are rounded up
// to whole pixels.
func NewCanvas(size graphics.Size) *Canvas {
	w := int(math.Ceil(math.Max(size.Width, 0)))
	h := int(math.Ceil(math.Max(size.Height, 0)))
	return &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		size:      size,
		transform: identity,
	}
}

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the logical size the canvas was created with.
func (c *Canvas) Size() graphics.Size {
	return c.size
}

// Save pushes the current transform.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.transform)
}

// Restore pops the most recently saved transform. Unbalanced calls are
// ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.transform = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) {
	c.transform = mul(c.transform, f64.Aff3{1, 0, dx, 0, 1, dy})
}

// Rotate turns the coordinate system clockwise by radians.
func (c *Canvas) Rotate(radians float64) {
	sin, cos := math.Sincos(radians)
	c.transform = mul(c.transform, f64.Aff3{cos, -sin, 0, sin, cos, 0})
}

// Clear replaces every pixel with color, ignoring the transform.
func (c *Canvas) Clear(color graphics.Color) {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, xdraw.Src)
}

// DrawRect fills or strokes rect according to paint.Style. Strokes are
// centered on the rectangle's edges. Inverted rects are sorted first, so a
// rect with Right < Left covers the same pixels as its mirror.
func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	rect = rect.Normalize()
	if rect.IsEmpty() {
		return
	}
	if paint.Style != graphics.PaintStyleStroke {
		c.beginPath()
		c.addRect(rect, false)
		c.fill(paint.Color)
		return
	}

	half := paint.StrokeWidth / 2
	if half <= 0 {
		half = 0.5
	}
	outer := rect.Inset(-half)
	inner := rect.Inset(half)
	c.beginPath()
	c.addRect(outer, false)
	if !inner.IsEmpty() {
		c.addRect(inner, true)
	}
	c.fill(paint.Color)
}

// DrawText draws layout with its baseline origin at position.
func (c *Canvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	if layout == nil || layout.Face == nil || layout.Text == "" {
		return
	}
	ink := layout.Bounds
	bounds := image.Rect(
		int(math.Floor(ink.Left)), int(math.Floor(ink.Top)),
		int(math.Ceil(ink.Right)), int(math.Ceil(ink.Bottom)),
	)
	if bounds.Empty() {
		return
	}

	// Glyphs are drawn untransformed around the origin, then mapped onto the
	// canvas in one resampling pass.
	glyphs := image.NewRGBA(bounds)
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(layout.Style.Color.NRGBA()),
		Face: layout.Face,
		Dot:  fixed.Point26_6{},
	}
	d.DrawString(layout.Text)

	s2d := mul(c.transform, f64.Aff3{1, 0, position.X, 0, 1, position.Y})
	xdraw.ApproxBiLinear.Transform(c.img, s2d, glyphs, bounds, xdraw.Over, nil)
}

func (c *Canvas) beginPath() {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = xdraw.Over
}

// addRect appends rect as a closed contour, wound the other way when
// reverse is set so that it cuts a hole in a preceding contour.
func (c *Canvas) addRect(rect graphics.Rect, reverse bool) {
	corners := [4][2]float64{
		{rect.Left, rect.Top},
		{rect.Right, rect.Top},
		{rect.Right, rect.Bottom},
		{rect.Left, rect.Bottom},
	}
	if reverse {
		corners[1], corners[3] = corners[3], corners[1]
	}
	for i, p := range corners {
		x, y := apply(c.transform, p[0], p[1])
		if i == 0 {
			c.ras.MoveTo(float32(x), float32(y))
		} else {
			c.ras.LineTo(float32(x), float32(y))
		}
	}
	c.ras.ClosePath()
}

func (c *Canvas) fill(color graphics.Color) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{})
}

// mul returns the transform that applies n, then m.
func mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

func apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

var _ graphics.Canvas = (*Canvas)(nil)
