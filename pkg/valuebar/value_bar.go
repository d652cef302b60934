// Package valuebar implements ValueBar, a horizontal bar that shows a value
// between a minimum and a maximum.
//
// The bar is filled from the left in a color chosen by a [ColorFormatter].
// It can draw a border and can overlay the formatted value, rotated to run
// along the bar's right edge. Users can drag along the bar to pick a value,
// and the value can be animated.
//
// # Host Integration
//
// ValueBar is a render object. The host sizes it, paints it when
// [ValueBar.NeedsPaint] reports true, routes pointer events to
// [ValueBar.HandlePointer], and steps [animation.StepTickers] once per
// frame:
//
//	bar := valuebar.New()
//	bar.SetInvalidator(requestFrame)
//	bar.Layout(width, height)
//	bar.AnimateUp(80, time.Second)
//
//	// each frame
//	animation.StepTickers()
//	if bar.NeedsPaint() {
//	    bar.Paint(canvas)
//	}
//
// All methods must be called from the host's UI goroutine.
package valuebar

import (
	"math"

	"github.com/go-drift/valuebar/pkg/animation"
	"github.com/go-drift/valuebar/pkg/gestures"
	"github.com/go-drift/valuebar/pkg/graphics"
)

// Defaults applied by New.
const (
	DefaultMin   = 0.0
	DefaultMax   = 100.0
	DefaultValue = 75.0

	// DefaultOffset is the inset, in pixels, between the bounds and the bar.
	DefaultOffset = 1.0

	// DefaultBorderWidthDp and DefaultTextSizeDp are density independent.
	DefaultBorderWidthDp = 2.0
	DefaultTextSizeDp    = 18.0

	// DefaultOverlayAlpha is the alpha byte of the overlay behind the text.
	DefaultOverlayAlpha = 120

	// Fallback size, in dp, when the host passes unbounded constraints.
	defaultWidthDp  = 200.0
	defaultHeightDp = 48.0
)

// ValueBar displays a value between a minimum and a maximum as a filled bar.
//
// No input is validated: max <= min or a value outside [min, max] produce
// degenerate geometry rather than an error.
type ValueBar struct {
	min    float64
	max    float64
	value  float64
	offset float64

	density float64
	size    graphics.Size
	bar     graphics.Rect

	barPaint     graphics.Paint
	borderPaint  graphics.Paint
	overlayPaint graphics.Paint
	textStyle    graphics.TextStyle
	fonts        *graphics.FontManager

	drawBorder     bool
	drawValueText  bool
	drawMinMaxText bool
	touchEnabled   bool

	colorFormatter ColorFormatter
	textFormatter  ValueTextFormatter
	listener       SelectionListener
	detector       gestures.Detector

	controller *animation.AnimationController
	tween      *animation.Tween[float64]
	curve      func(float64) float64

	dragging        bool
	warned          bool
	needsPaint      bool
	invalidator     func()
	textErrorLogged bool
}

// New creates a ValueBar at density 1.
func New() *ValueBar {
	return NewWithDensity(1)
}

// NewWithDensity creates a ValueBar whose dp-based defaults (border width,
// text size, fallback size) are scaled by density pixels per dp.
func NewWithDensity(density float64) *ValueBar {
	if density <= 0 {
		density = 1
	}
	b := &ValueBar{
		min:            DefaultMin,
		max:            DefaultMax,
		value:          DefaultValue,
		offset:         DefaultOffset,
		density:        density,
		drawBorder:     true,
		drawValueText:  true,
		drawMinMaxText: true,
		touchEnabled:   true,
		fonts:          graphics.DefaultFontManager(),
		colorFormatter: SolidColor(DefaultBarColor),
		textFormatter:  DefaultValueTextFormatter(),
		curve:          animation.AccelerateDecelerate,
		needsPaint:     true,
	}
	b.barPaint = graphics.DefaultPaint()
	b.borderPaint = graphics.StrokePaint(graphics.ColorBlack, b.DpToPx(DefaultBorderWidthDp))
	b.overlayPaint = graphics.DefaultPaint()
	b.overlayPaint.Color = graphics.ColorWhite.WithAlpha8(DefaultOverlayAlpha)
	b.textStyle = graphics.TextStyle{
		Color:    graphics.ColorWhite,
		FontSize: b.DpToPx(DefaultTextSizeDp),
	}
	return b
}

// DpToPx converts density-independent pixels to pixels.
func (b *ValueBar) DpToPx(dp float64) float64 {
	return dp * b.density
}

// Density returns the pixels per dp the bar was created with.
func (b *ValueBar) Density() float64 {
	return b.density
}

// SetMinMax sets the minimum and maximum value the bar can display.
func (b *ValueBar) SetMinMax(min, max float64) {
	b.min = min
	b.max = max
	b.MarkNeedsPaint()
}

// Min returns the minimum value the bar can display.
func (b *ValueBar) Min() float64 {
	return b.min
}

// Max returns the maximum value the bar can display.
func (b *ValueBar) Max() float64 {
	return b.max
}

// SetValue sets the displayed value. It is not clamped.
func (b *ValueBar) SetValue(value float64) {
	b.value = value
	b.MarkNeedsPaint()
}

// Value returns the currently displayed value.
func (b *ValueBar) Value() float64 {
	return b.value
}

// Bar returns the rectangle representing the value. It is only meaningful
// after the bar has been painted at least once.
func (b *ValueBar) Bar() graphics.Rect {
	return b.bar
}

// BarPaint returns the paint used for the bar during the last paint.
func (b *ValueBar) BarPaint() graphics.Paint {
	return b.barPaint
}

// SetOffset sets the inset in pixels between the bounds and the drawn bar
// and border. Negative offsets are treated as zero.
func (b *ValueBar) SetOffset(px float64) {
	if px < 0 {
		px = 0
	}
	b.offset = px
	b.MarkNeedsPaint()
}

// Offset returns the inset in pixels.
func (b *ValueBar) Offset() float64 {
	return b.offset
}

// SetDrawBorder enables or disables the border.
func (b *ValueBar) SetDrawBorder(enabled bool) {
	b.drawBorder = enabled
	b.MarkNeedsPaint()
}

// DrawBorder reports whether the border is drawn.
func (b *ValueBar) DrawBorder() bool {
	return b.drawBorder
}

// SetBorderWidth sets the border stroke width in pixels.
func (b *ValueBar) SetBorderWidth(px float64) {
	b.borderPaint.StrokeWidth = px
	b.MarkNeedsPaint()
}

// SetBorderColor sets the border color.
func (b *ValueBar) SetBorderColor(color graphics.Color) {
	b.borderPaint.Color = color
	b.MarkNeedsPaint()
}

// BorderPaint returns the paint used for the border.
func (b *ValueBar) BorderPaint() graphics.Paint {
	return b.borderPaint
}

// SetDrawValueText enables or disables the value text overlay.
func (b *ValueBar) SetDrawValueText(enabled bool) {
	b.drawValueText = enabled
	b.MarkNeedsPaint()
}

// DrawValueText reports whether the value text is drawn.
func (b *ValueBar) DrawValueText() bool {
	return b.drawValueText
}

// SetDrawMinMaxText toggles min/max labels. The labels are not drawn yet;
// the flag is stored so hosts can set it ahead of that support.
func (b *ValueBar) SetDrawMinMaxText(enabled bool) {
	b.drawMinMaxText = enabled
	b.MarkNeedsPaint()
}

// DrawMinMaxText reports the min/max label flag.
func (b *ValueBar) DrawMinMaxText() bool {
	return b.drawMinMaxText
}

// SetTouchEnabled enables or disables value selection by touch.
func (b *ValueBar) SetTouchEnabled(enabled bool) {
	b.touchEnabled = enabled
}

// TouchEnabled reports whether touch selection is enabled.
func (b *ValueBar) TouchEnabled() bool {
	return b.touchEnabled
}

// SetColor installs a SolidColor formatter with the given color.
func (b *ValueBar) SetColor(color graphics.Color) {
	b.colorFormatter = SolidColor(color)
	b.MarkNeedsPaint()
}

// SetColorFormatter installs a custom color formatter. Nil restores the
// default solid color.
func (b *ValueBar) SetColorFormatter(f ColorFormatter) {
	if f == nil {
		f = SolidColor(DefaultBarColor)
	}
	b.colorFormatter = f
	b.MarkNeedsPaint()
}

// ColorFormatter returns the installed color formatter.
func (b *ValueBar) ColorFormatter() ColorFormatter {
	return b.colorFormatter
}

// SetValueTextFormatter installs a custom text formatter. Nil restores the
// default decimal formatter.
func (b *ValueBar) SetValueTextFormatter(f ValueTextFormatter) {
	if f == nil {
		f = DefaultValueTextFormatter()
	}
	b.textFormatter = f
	b.MarkNeedsPaint()
}

// SetTextStyle sets the style of the value text. A zero FontSize keeps the
// current size.
func (b *ValueBar) SetTextStyle(style graphics.TextStyle) {
	if style.FontSize <= 0 {
		style.FontSize = b.textStyle.FontSize
	}
	b.textStyle = style
	b.MarkNeedsPaint()
}

// TextStyle returns the style of the value text.
func (b *ValueBar) TextStyle() graphics.TextStyle {
	return b.textStyle
}

// SetOverlayColor sets the color painted behind the value text.
func (b *ValueBar) SetOverlayColor(color graphics.Color) {
	b.overlayPaint.Color = color
	b.MarkNeedsPaint()
}

// SetFontManager replaces the font manager used to measure the value text.
func (b *ValueBar) SetFontManager(m *graphics.FontManager) {
	b.fonts = m
	b.textErrorLogged = false
	b.MarkNeedsPaint()
}

// SetSelectionListener registers the listener notified of touch selection.
func (b *ValueBar) SetSelectionListener(l SelectionListener) {
	b.listener = l
}

// SetGestureDetector installs a detector that sees every pointer event
// before the bar does. Events it consumes are not handled by the bar.
func (b *ValueBar) SetGestureDetector(d gestures.Detector) {
	b.detector = d
}

// SetInvalidator registers the host callback that schedules a frame.
func (b *ValueBar) SetInvalidator(fn func()) {
	b.invalidator = fn
}

// MarkNeedsPaint flags the bar for repaint and asks the host for a frame.
// The repaint itself happens on the host's next frame.
func (b *ValueBar) MarkNeedsPaint() {
	b.needsPaint = true
	if b.invalidator != nil {
		b.invalidator()
	}
}

// NeedsPaint reports whether the bar changed since it was last painted.
func (b *ValueBar) NeedsPaint() bool {
	return b.needsPaint
}

// SetSize sets the bar's size in pixels.
func (b *ValueBar) SetSize(size graphics.Size) {
	if size == b.size {
		return
	}
	b.size = size
	b.MarkNeedsPaint()
}

// Size returns the bar's size in pixels.
func (b *ValueBar) Size() graphics.Size {
	return b.size
}

// Layout sizes the bar to the given maximum extent. Unbounded dimensions
// (infinite or math.MaxFloat64) fall back to 200x48 dp.
func (b *ValueBar) Layout(maxWidth, maxHeight float64) graphics.Size {
	width := maxWidth
	if unbounded(width) {
		width = b.DpToPx(defaultWidthDp)
	}
	height := maxHeight
	if unbounded(height) {
		height = b.DpToPx(defaultHeightDp)
	}
	b.SetSize(graphics.Size{Width: width, Height: height})
	return b.size
}

func unbounded(v float64) bool {
	return math.IsInf(v, 1) || v == math.MaxFloat64
}

// HitTest reports whether position lies within the bar's bounds.
func (b *ValueBar) HitTest(position graphics.Offset) bool {
	return position.X >= 0 && position.Y >= 0 &&
		position.X < b.size.Width && position.Y < b.size.Height
}
