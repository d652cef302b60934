package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drifterrors "github.com/go-drift/valuebar/pkg/errors"
	"github.com/go-drift/valuebar/pkg/graphics"
	drifttest "github.com/go-drift/valuebar/pkg/testing"
	"github.com/go-drift/valuebar/pkg/valuebar"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "bar.yaml", `
version: v1.2.0
min: 0
max: 250
value: 125
offset: 3
color: "#FF8800"
draw_border: false
text_size: 12
touch_enabled: false
`)
	attrs, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, attrs.Max)
	assert.Equal(t, 250.0, *attrs.Max)
	assert.Equal(t, "#FF8800", attrs.Color)
	require.NotNil(t, attrs.DrawBorder)
	assert.False(t, *attrs.DrawBorder)
	assert.Nil(t, attrs.DrawValueText, "absent keys stay unset")

	bar, err := attrs.Build()
	require.NoError(t, err)
	assert.Equal(t, 125.0, bar.Value())
	assert.Equal(t, 3.0, bar.Offset())
	assert.False(t, bar.DrawBorder())
	assert.True(t, bar.DrawValueText())
	assert.False(t, bar.TouchEnabled())
	assert.Equal(t, 12.0, bar.TextStyle().FontSize)
	assert.Equal(t, graphics.RGB(0xFF, 0x88, 0x00), bar.ColorFormatter().Color(0, 0, 0))
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "bar.toml", `
version = "v1"
max = 10.0
value = 5.0
density = 2.0
border_width = 3.0
border_color = "#80112233"
draw_min_max_text = false

[gradient]
from = "#000000"
to = "#FFFFFF"
`)
	attrs, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, attrs.Gradient)

	bar, err := attrs.Build()
	require.NoError(t, err)
	assert.Equal(t, 2.0, bar.Density())
	assert.Equal(t, 6.0, bar.BorderPaint().StrokeWidth, "border width is in dp")
	assert.Equal(t, graphics.Color(0x80112233), bar.BorderPaint().Color)
	assert.False(t, bar.DrawMinMaxText())
	assert.Equal(t, 36.0, bar.TextStyle().FontSize)

	_, ok := bar.ColorFormatter().(valuebar.GradientColorFormatter)
	assert.True(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"bad yaml", "bar.yaml", "min: [", "parse yaml"},
		{"bad toml", "bar.toml", "min = ", "parse toml"},
		{"not semver", "bar.yaml", "version: 1.0.0", "not a semantic version"},
		{"wrong major", "bar.yaml", "version: v2.0.0", "unsupported version"},
		{"bad color", "bar.yaml", `color: "blue"`, "color"},
		{"color and gradient", "bar.yaml", "color: \"#FFFFFF\"\ngradient: {from: \"#000000\", to: \"#FFFFFF\"}", "mutually exclusive"},
		{"half gradient", "bar.yaml", "gradient: {from: \"#000000\"}", "both from and to"},
		{"negative density", "bar.yaml", "density: -1", "density"},
		{"unknown curve", "bar.yaml", "curve: bounce", "unknown curve"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var cfgErr *drifterrors.Error
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, drifterrors.KindConfig, cfgErr.Kind)
			assert.Equal(t, path, cfgErr.Path)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadOptional(t *testing.T) {
	attrs, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Attributes{}, attrs)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("value: 12\n"), 0o644))
	attrs, err = LoadOptional(dir)
	require.NoError(t, err)
	require.NotNil(t, attrs.Value)
	assert.Equal(t, 12.0, *attrs.Value)
}

func TestApply_KeepsDefaultsForUnsetKeys(t *testing.T) {
	bar := valuebar.New()
	max := 40.0
	require.NoError(t, (&Attributes{Max: &max}).Apply(bar))

	assert.Equal(t, valuebar.DefaultMin, bar.Min())
	assert.Equal(t, 40.0, bar.Max())
	assert.Equal(t, valuebar.DefaultValue, bar.Value())
	assert.True(t, bar.DrawBorder())
}

func TestApply_RejectsInvalid(t *testing.T) {
	err := (&Attributes{TextColor: "#12"}).Apply(valuebar.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.Apply")
}

func TestResolve(t *testing.T) {
	value := 20.0
	r, err := (&Attributes{Value: &value, Density: 3}).Resolve()
	require.NoError(t, err)

	assert.Equal(t, SupportedMajor, r.Version)
	assert.Equal(t, 20.0, r.Value)
	assert.Equal(t, 3.0, r.Density)
	assert.Equal(t, valuebar.DefaultBorderWidthDp, r.BorderWidth)
	assert.Equal(t, valuebar.DefaultTextSizeDp, r.TextSize)
	assert.Equal(t, valuebar.DefaultBarColor.Hex(), r.Color)
	assert.Equal(t, "#FFFFFF", r.TextColor)
	assert.True(t, r.TouchEnabled)
	assert.Equal(t, "accelerate_decelerate", r.Curve)
}

func TestApply_Curve(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	path := writeFile(t, "bar.toml", `curve = "linear"`)
	attrs, err := Load(path)
	require.NoError(t, err)
	bar, err := attrs.Build()
	require.NoError(t, err)

	bar.Animate(0, 100, time.Second)
	defer bar.Dispose()
	drifttest.Pump(clk, 250*time.Millisecond)
	assert.InDelta(t, 25.0, bar.Value(), 1e-9, "linear easing")

	r, err := attrs.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "linear", r.Curve)
}
