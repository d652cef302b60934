package valuebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/go-drift/valuebar/pkg/graphics"
)

func TestSolidColor_IgnoresInputs(t *testing.T) {
	f := SolidColor(DefaultBarColor)
	for _, tc := range [][3]float64{{0, 100, 0}, {75, 100, 0}, {-5, 1, 10}, {1e9, 0, 0}} {
		assert.Equal(t, DefaultBarColor, f.Color(tc[0], tc[1], tc[2]))
	}
	assert.Equal(t, graphics.RGB(39, 140, 230), DefaultBarColor)
}

func TestDefaultValueTextFormatter(t *testing.T) {
	f := DefaultValueTextFormatter()
	tests := []struct {
		value float64
		want  string
	}{
		{1234.5, "1,234.50"},
		{0, "0.00"},
		{75, "75.00"},
		{1234567.891, "1,234,567.89"},
		{-42.1, "-42.10"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, f.ValueText(tt.value, 100, 0))
		})
	}
}

func TestDecimalFormatter_Locale(t *testing.T) {
	assert.Equal(t, "1.234,5", NewDecimalFormatter(language.German, 1).ValueText(1234.5, 0, 0))
	assert.Equal(t, "1,235", NewDecimalFormatter(language.English, -1).ValueText(1234.6, 0, 0))
}

func TestGradientColorFormatter(t *testing.T) {
	g := GradientColorFormatter{From: graphics.ColorRed, To: graphics.ColorBlue}

	assert.Equal(t, graphics.ColorRed, g.Color(0, 100, 0))
	assert.Equal(t, graphics.ColorRed, g.Color(-20, 100, 0), "below range clamps to From")
	assert.Equal(t, graphics.ColorBlue, g.Color(100, 100, 0))
	assert.Equal(t, graphics.ColorBlue, g.Color(140, 100, 0), "above range clamps to To")
	assert.Equal(t, graphics.ColorRed, g.Color(5, 10, 10), "empty range yields From")

	mid := g.Color(50, 100, 0)
	assert.NotEqual(t, graphics.ColorRed, mid)
	assert.NotEqual(t, graphics.ColorBlue, mid)
	assert.Equal(t, uint8(255), mid.A())
}

func TestGradientColorFormatter_BlendsAlpha(t *testing.T) {
	g := GradientColorFormatter{
		From: graphics.ColorWhite.WithAlpha8(0),
		To:   graphics.ColorWhite.WithAlpha8(200),
	}
	c := g.Color(25, 100, 0)
	assert.Equal(t, uint8(50), c.A())
	assert.Equal(t, uint8(255), c.R())
}
