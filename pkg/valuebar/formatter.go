package valuebar

import (
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/go-drift/valuebar/pkg/graphics"
)

// DefaultBarColor is the fill color used when no formatter is installed.
var DefaultBarColor = graphics.RGB(39, 140, 230)

// ColorFormatter decides the fill color of the bar. It is called once per
// paint, so the color may depend on the current value.
type ColorFormatter interface {
	Color(value, max, min float64) graphics.Color
}

// ColorFormatterFunc adapts a function to the ColorFormatter interface.
type ColorFormatterFunc func(value, max, min float64) graphics.Color

// Color calls f(value, max, min).
func (f ColorFormatterFunc) Color(value, max, min float64) graphics.Color {
	return f(value, max, min)
}

// ValueTextFormatter decides the text drawn over the bar. It is called once
// per paint while value text drawing is enabled.
type ValueTextFormatter interface {
	ValueText(value, max, min float64) string
}

// ValueTextFormatterFunc adapts a function to the ValueTextFormatter interface.
type ValueTextFormatterFunc func(value, max, min float64) string

// ValueText calls f(value, max, min).
func (f ValueTextFormatterFunc) ValueText(value, max, min float64) string {
	return f(value, max, min)
}

// SolidColor is a ColorFormatter that always returns the same color.
type SolidColor graphics.Color

// Color ignores its inputs and returns c.
func (c SolidColor) Color(value, max, min float64) graphics.Color {
	return graphics.Color(c)
}

// DecimalFormatter formats values with grouping separators and a fixed
// number of fractional digits, e.g. 1234.5 becomes "1,234.50".
type DecimalFormatter struct {
	printer  *message.Printer
	decimals int
}

// NewDecimalFormatter returns a formatter for the given locale and number of
// fractional digits.
func NewDecimalFormatter(tag language.Tag, decimals int) *DecimalFormatter {
	if decimals < 0 {
		decimals = 0
	}
	return &DecimalFormatter{
		printer:  message.NewPrinter(tag),
		decimals: decimals,
	}
}

// DefaultValueTextFormatter returns the formatter ValueBar uses when none is
// installed: English grouping, two decimals.
func DefaultValueTextFormatter() *DecimalFormatter {
	return NewDecimalFormatter(language.English, 2)
}

// ValueText formats value. max and min are ignored.
func (f *DecimalFormatter) ValueText(value, max, min float64) string {
	return f.printer.Sprint(number.Decimal(value, number.Scale(f.decimals)))
}

// GradientColorFormatter blends between From and To according to where the
// value sits in [min, max]. Blending happens in HCL space so that the
// midpoint keeps its saturation.
type GradientColorFormatter struct {
	From graphics.Color
	To   graphics.Color
}

// Color returns the blended color. Values outside the range are clamped to
// the end colors, and an empty range yields From.
func (g GradientColorFormatter) Color(value, max, min float64) graphics.Color {
	t := 0.0
	if max != min {
		t = (value - min) / (max - min)
	}
	switch {
	case t <= 0:
		return g.From
	case t >= 1:
		return g.To
	}

	blended := toColorful(g.From).BlendHcl(toColorful(g.To), t).Clamped()
	r, gg, b := blended.RGB255()
	alpha := float64(g.From.A()) + (float64(g.To.A())-float64(g.From.A()))*t
	return graphics.RGBA8(r, gg, b, uint8(alpha+0.5))
}

func toColorful(c graphics.Color) colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}
