package valuebar

import (
	"github.com/go-drift/valuebar/pkg/errors"
	"github.com/go-drift/valuebar/pkg/graphics"
)

// valueTextRotation turns the value text to read bottom to top.
const valueTextRotation = 270

// Paint draws the bar, the border and the value text onto canvas, in that
// order, using the bar's current size.
func (b *ValueBar) Paint(canvas graphics.Canvas) {
	defer errors.Recover("valuebar.Paint")
	b.needsPaint = false

	b.prepareBar()
	b.barPaint.Color = b.colorFormatter.Color(b.value, b.max, b.min)
	canvas.DrawRect(b.bar, b.barPaint)

	if b.drawBorder {
		canvas.DrawRect(graphics.RectFromLTRB(b.offset, b.offset,
			b.size.Width-b.offset, b.size.Height-b.offset), b.borderPaint)
	}

	b.paintText(canvas)
}

// prepareBar recomputes the bar rectangle from the value and range. The
// result is not clamped: values outside [min, max] give a bar that pokes
// past the border or has a negative width.
func (b *ValueBar) prepareBar() {
	length := b.BarLength()
	b.bar = graphics.RectFromLTRB(b.offset, b.offset, length-b.offset, b.size.Height-b.offset)
}

// BarLength returns the unclamped bar length for the current state, the
// same quantity Paint uses to place the bar's right edge.
func (b *ValueBar) BarLength() float64 {
	return ((b.size.Width - b.offset*2) / (b.max - b.min)) * b.value
}

// paintText draws the value text. Min/max labels (drawMinMaxText) have no
// rendering yet, so the flag is not consulted here.
func (b *ValueBar) paintText(canvas graphics.Canvas) {
	if b.drawValueText {
		text := b.textFormatter.ValueText(b.value, b.max, b.min)
		layout, err := graphics.LayoutText(text, b.textStyle, b.fonts)
		if err != nil {
			b.reportTextError(err)
			return
		}

		textHeight := layout.Bounds.Height() * 1.5
		textWidth := layout.Size.Width

		x := b.bar.Right - textHeight/2
		y := b.size.Height/2 + textWidth/2
		if x < textHeight {
			x = textHeight
		}

		overlay := graphics.RectFromLTRB(x-textHeight/1.5-textHeight/2, b.offset,
			b.bar.Right, b.size.Height-b.offset)
		canvas.DrawRect(overlay, b.overlayPaint)

		pivot := graphics.Offset{X: x, Y: y}
		canvas.Save()
		graphics.RotateAround(canvas, valueTextRotation, pivot)
		canvas.DrawText(layout, pivot)
		canvas.Restore()
	}
}

func (b *ValueBar) reportTextError(err error) {
	if b.textErrorLogged {
		return
	}
	b.textErrorLogged = true
	errors.Report(&errors.Error{
		Op:   "valuebar.Paint",
		Kind: errors.KindRender,
		Err:  err,
	})
}
