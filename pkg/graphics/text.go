package graphics

import (
	stderrors "errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-drift/valuebar/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16

	// defaultFamily names the bundled Go Regular font.
	defaultFamily = "go-regular"
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
}

// TextLayout contains measured text metrics and a resolved font face.
//
// Size.Width is the advance width. Bounds is the ink box relative to the
// baseline origin, so Bounds.Height() is the height of the glyphs actually
// drawn rather than the line height.
type TextLayout struct {
	Text    string
	Style   TextStyle
	Size    Size
	Bounds  Rect
	Ascent  float64
	Descent float64
	Face    font.Face
}

// FontManager manages font registration and face caching for text layout.
type FontManager struct {
	mu          sync.Mutex
	fonts       map[string]*opentype.Font
	faces       map[faceKey]font.Face
	defaultName string
}

type faceKey struct {
	family string
	size   float64
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager with the bundled Go Regular font
// registered as the default family.
func NewFontManager() (*FontManager, error) {
	manager := &FontManager{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
	if err := manager.RegisterFont(defaultFamily, goregular.TTF); err != nil {
		return nil, err
	}
	manager.defaultName = defaultFamily
	return manager, nil
}

// DefaultFontManagerErr returns a shared font manager with a bundled font.
// It returns both the manager and any error that occurred during initialization.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		manager, err := NewFontManager()
		if err != nil {
			defaultFontManagerErr = err
			errors.Report(&errors.Error{
				Op:   "graphics.DefaultFontManager",
				Kind: errors.KindInit,
				Err:  err,
			})
			return
		}
		defaultFontManager = manager
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns a shared font manager, or nil on error.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// RegisterFont registers a new font family from TrueType or OpenType data.
func (m *FontManager) RegisterFont(name string, data []byte) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[name] = f
	for key := range m.faces {
		if key.family == name {
			delete(m.faces, key)
		}
	}
	return nil
}

// Face resolves a font face for the given style. Faces are cached per
// family and size.
func (m *FontManager) Face(style TextStyle) (font.Face, error) {
	family := style.FontFamily
	if family == "" {
		family = m.defaultName
	}
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key := faceKey{family: family, size: size}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	f, ok := m.fonts[family]
	if !ok {
		return nil, fmt.Errorf("font family %q not registered", family)
	}
	// 72 DPI makes one point equal one pixel.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %q at %.1fpx: %w", family, size, err)
	}
	m.faces[key] = face
	return face, nil
}

// LayoutText measures the given text using the provided font manager.
func LayoutText(text string, style TextStyle, manager *FontManager) (*TextLayout, error) {
	if manager == nil {
		return nil, stderrors.New("font manager required")
	}
	face, err := manager.Face(style)
	if err != nil {
		return nil, err
	}
	if style.FontFamily == "" {
		style.FontFamily = manager.defaultName
	}

	bounds, advance := font.BoundString(face, text)
	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)

	ink := Rect{
		Left:   fixedToFloat(bounds.Min.X),
		Top:    fixedToFloat(bounds.Min.Y),
		Right:  fixedToFloat(bounds.Max.X),
		Bottom: fixedToFloat(bounds.Max.Y),
	}
	return &TextLayout{
		Text:    text,
		Style:   style,
		Size:    Size{Width: fixedToFloat(advance), Height: math.Ceil(ascent + descent)},
		Bounds:  ink,
		Ascent:  ascent,
		Descent: descent,
		Face:    face,
	}, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
