// Package config loads ValueBar attributes from YAML or TOML files and
// applies them to a widget.
//
// A minimal valuebar.yaml:
//
//	version: v1
//	min: 0
//	max: 250
//	value: 125
//	color: "#278CE6"
//	draw_border: false
//
// Absent keys keep the widget defaults.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/valuebar/pkg/animation"
	"github.com/go-drift/valuebar/pkg/errors"
	"github.com/go-drift/valuebar/pkg/graphics"
	"github.com/go-drift/valuebar/pkg/valuebar"
)

// DefaultFileName is the file LoadOptional looks for in a directory.
const DefaultFileName = "valuebar.yaml"

// SupportedMajor is the only schema major version Load accepts.
const SupportedMajor = "v1"

// Attributes mirrors the configurable state of a ValueBar. Pointer fields
// distinguish "unset" from the zero value.
type Attributes struct {
	Version string `yaml:"version,omitempty" toml:"version"`

	Min    *float64 `yaml:"min,omitempty" toml:"min"`
	Max    *float64 `yaml:"max,omitempty" toml:"max"`
	Value  *float64 `yaml:"value,omitempty" toml:"value"`
	Offset *float64 `yaml:"offset,omitempty" toml:"offset"`

	// Density is pixels per dp, used for border width and text size.
	Density float64 `yaml:"density,omitempty" toml:"density"`

	Color    string    `yaml:"color,omitempty" toml:"color"`
	Gradient *Gradient `yaml:"gradient,omitempty" toml:"gradient"`

	DrawBorder  *bool    `yaml:"draw_border,omitempty" toml:"draw_border"`
	BorderWidth *float64 `yaml:"border_width,omitempty" toml:"border_width"`
	BorderColor string   `yaml:"border_color,omitempty" toml:"border_color"`

	DrawValueText  *bool    `yaml:"draw_value_text,omitempty" toml:"draw_value_text"`
	DrawMinMaxText *bool    `yaml:"draw_min_max_text,omitempty" toml:"draw_min_max_text"`
	TextSize       *float64 `yaml:"text_size,omitempty" toml:"text_size"`
	TextColor      string   `yaml:"text_color,omitempty" toml:"text_color"`

	TouchEnabled *bool `yaml:"touch_enabled,omitempty" toml:"touch_enabled"`

	// Curve names the easing used by animations, such as "ease_in_out".
	Curve string `yaml:"curve,omitempty" toml:"curve"`
}

// Gradient selects a GradientColorFormatter blending From to To.
type Gradient struct {
	From string `yaml:"from" toml:"from"`
	To   string `yaml:"to" toml:"to"`
}

// Load reads attributes from path. Files ending in .toml are parsed as TOML,
// everything else as YAML.
func Load(path string) (*Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("config.Load", path, fmt.Errorf("read: %w", err))
	}
	return Parse(data, formatOf(path), path)
}

// LoadOptional reads valuebar.yaml from dir if present. A missing file
// yields empty attributes.
func LoadOptional(dir string) (*Attributes, error) {
	path := filepath.Join(dir, DefaultFileName)
	attrs, err := Load(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Attributes{}, nil
		}
		return nil, err
	}
	return attrs, nil
}

// Format names a supported file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes and validates attributes. path is only used in errors.
func Parse(data []byte, format Format, path string) (*Attributes, error) {
	var attrs Attributes
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &attrs); err != nil {
			return nil, configError("config.Load", path, fmt.Errorf("parse toml: %w", err))
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &attrs); err != nil {
			return nil, configError("config.Load", path, fmt.Errorf("parse yaml: %w", err))
		}
	default:
		return nil, configError("config.Load", path, fmt.Errorf("unknown format %q", format))
	}
	if err := attrs.Validate(); err != nil {
		return nil, configError("config.Load", path, err)
	}
	return &attrs, nil
}

// Validate checks the schema version, the curve name and every color string.
// Numeric values are not range checked.
func (a *Attributes) Validate() error {
	if a.Version != "" {
		if !semver.IsValid(a.Version) {
			return fmt.Errorf("version %q is not a semantic version", a.Version)
		}
		if major := semver.Major(a.Version); major != SupportedMajor {
			return fmt.Errorf("unsupported version %s (want %s.x)", a.Version, SupportedMajor)
		}
	}
	if a.Density < 0 {
		return fmt.Errorf("density must not be negative, got %g", a.Density)
	}
	if a.Curve != "" {
		if _, ok := animation.CurveByName(a.Curve); !ok {
			return fmt.Errorf("unknown curve %q", a.Curve)
		}
	}
	colors := map[string]string{
		"color":        a.Color,
		"border_color": a.BorderColor,
		"text_color":   a.TextColor,
	}
	if a.Gradient != nil {
		colors["gradient.from"] = a.Gradient.From
		colors["gradient.to"] = a.Gradient.To
		if a.Color != "" {
			return stderrors.New("color and gradient are mutually exclusive")
		}
		if a.Gradient.From == "" || a.Gradient.To == "" {
			return stderrors.New("gradient needs both from and to")
		}
	}
	for key, value := range colors {
		if value == "" {
			continue
		}
		if _, err := graphics.ParseHexColor(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// Build creates a ValueBar at the configured density and applies a to it.
func (a *Attributes) Build() (*valuebar.ValueBar, error) {
	density := a.Density
	if density == 0 {
		density = 1
	}
	bar := valuebar.NewWithDensity(density)
	if err := a.Apply(bar); err != nil {
		return nil, err
	}
	return bar, nil
}

// Apply configures bar from the set attributes. Density is ignored because
// it only takes effect at construction; use Build for that.
func (a *Attributes) Apply(bar *valuebar.ValueBar) error {
	if err := a.Validate(); err != nil {
		return configError("config.Apply", "", err)
	}

	if a.Min != nil || a.Max != nil {
		min, max := bar.Min(), bar.Max()
		if a.Min != nil {
			min = *a.Min
		}
		if a.Max != nil {
			max = *a.Max
		}
		bar.SetMinMax(min, max)
	}
	if a.Value != nil {
		bar.SetValue(*a.Value)
	}
	if a.Offset != nil {
		bar.SetOffset(*a.Offset)
	}

	if a.Color != "" {
		bar.SetColor(mustColor(a.Color))
	}
	if a.Gradient != nil {
		bar.SetColorFormatter(valuebar.GradientColorFormatter{
			From: mustColor(a.Gradient.From),
			To:   mustColor(a.Gradient.To),
		})
	}

	if a.DrawBorder != nil {
		bar.SetDrawBorder(*a.DrawBorder)
	}
	if a.BorderWidth != nil {
		bar.SetBorderWidth(bar.DpToPx(*a.BorderWidth))
	}
	if a.BorderColor != "" {
		bar.SetBorderColor(mustColor(a.BorderColor))
	}

	if a.DrawValueText != nil {
		bar.SetDrawValueText(*a.DrawValueText)
	}
	if a.DrawMinMaxText != nil {
		bar.SetDrawMinMaxText(*a.DrawMinMaxText)
	}
	if a.TextSize != nil || a.TextColor != "" {
		style := bar.TextStyle()
		if a.TextSize != nil {
			style.FontSize = bar.DpToPx(*a.TextSize)
		}
		if a.TextColor != "" {
			style.Color = mustColor(a.TextColor)
		}
		bar.SetTextStyle(style)
	}

	if a.TouchEnabled != nil {
		bar.SetTouchEnabled(*a.TouchEnabled)
	}
	if a.Curve != "" {
		curve, _ := animation.CurveByName(a.Curve)
		bar.SetAnimationCurve(curve)
	}
	return nil
}

// Resolved is a fully populated attribute set, as a widget built from the
// attributes would report it.
type Resolved struct {
	Version        string    `yaml:"version" toml:"version"`
	Min            float64   `yaml:"min" toml:"min"`
	Max            float64   `yaml:"max" toml:"max"`
	Value          float64   `yaml:"value" toml:"value"`
	Offset         float64   `yaml:"offset" toml:"offset"`
	Density        float64   `yaml:"density" toml:"density"`
	Color          string    `yaml:"color,omitempty" toml:"color,omitempty"`
	Gradient       *Gradient `yaml:"gradient,omitempty" toml:"gradient,omitempty"`
	DrawBorder     bool      `yaml:"draw_border" toml:"draw_border"`
	BorderWidth    float64   `yaml:"border_width" toml:"border_width"`
	BorderColor    string    `yaml:"border_color" toml:"border_color"`
	DrawValueText  bool      `yaml:"draw_value_text" toml:"draw_value_text"`
	DrawMinMaxText bool      `yaml:"draw_min_max_text" toml:"draw_min_max_text"`
	TextSize       float64   `yaml:"text_size" toml:"text_size"`
	TextColor      string    `yaml:"text_color" toml:"text_color"`
	TouchEnabled   bool      `yaml:"touch_enabled" toml:"touch_enabled"`
	Curve          string    `yaml:"curve" toml:"curve"`
}

// Resolve builds a widget from a and reads the effective values back.
// Sizes are reported in dp.
func (a *Attributes) Resolve() (*Resolved, error) {
	bar, err := a.Build()
	if err != nil {
		return nil, err
	}
	version := a.Version
	if version == "" {
		version = SupportedMajor
	}
	r := &Resolved{
		Version:        version,
		Min:            bar.Min(),
		Max:            bar.Max(),
		Value:          bar.Value(),
		Offset:         bar.Offset(),
		Density:        bar.Density(),
		Gradient:       a.Gradient,
		DrawBorder:     bar.DrawBorder(),
		BorderWidth:    bar.BorderPaint().StrokeWidth / bar.Density(),
		BorderColor:    bar.BorderPaint().Color.Hex(),
		DrawValueText:  bar.DrawValueText(),
		DrawMinMaxText: bar.DrawMinMaxText(),
		TextSize:       bar.TextStyle().FontSize / bar.Density(),
		TextColor:      bar.TextStyle().Color.Hex(),
		TouchEnabled:   bar.TouchEnabled(),
	}
	if r.Curve = a.Curve; r.Curve == "" {
		r.Curve = animation.CurveNameAccelerateDecelerate
	}
	if a.Gradient == nil {
		r.Color = bar.ColorFormatter().Color(bar.Value(), bar.Max(), bar.Min()).Hex()
	}
	return r, nil
}

// mustColor parses a color that Validate has already accepted.
func mustColor(s string) graphics.Color {
	c, err := graphics.ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func configError(op, path string, err error) error {
	return &errors.Error{
		Op:   op,
		Kind: errors.KindConfig,
		Path: path,
		Err:  err,
	}
}
