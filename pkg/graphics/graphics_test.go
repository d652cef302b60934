package graphics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#278CE6", RGB(39, 140, 230), false},
		{"278ce6", RGB(39, 140, 230), false},
		{"#80FFFFFF", ColorWhite.WithAlpha8(0x80), false},
		{"#FFF", 0, true},
		{"#GGGGGG", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#278CE6", RGB(39, 140, 230).Hex())
	assert.Equal(t, "#78FFFFFF", ColorWhite.WithAlpha8(120).Hex())
	assert.Equal(t, uint8(128), ColorBlack.WithAlpha(0.5).A())
}

func TestRect(t *testing.T) {
	r := RectFromLTRB(10, 20, 5, 30)
	assert.Equal(t, -5.0, r.Width(), "rects are not normalized")
	assert.True(t, r.IsEmpty())
	assert.Equal(t, RectFromLTRB(5, 20, 10, 30), r.Normalize())

	r = RectFromLTWH(0, 0, 10, 4)
	assert.Equal(t, RectFromLTRB(1, 1, 9, 3), r.Inset(1))
	assert.InDelta(t, math.Pi, DegreesToRadians(180), 1e-12)
}

type countingCanvas struct {
	recordingCanvas
	rects int
}

func (c *countingCanvas) DrawRect(rect Rect, paint Paint) {
	c.rects++
}

func TestDisplayListReplay(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 10, Height: 10})
	canvas.Save()
	RotateAround(canvas, 90, Offset{X: 5, Y: 5})
	canvas.DrawRect(RectFromLTRB(0, 0, 1, 1), DefaultPaint())
	canvas.Restore()
	list := rec.EndRecording()

	ops := list.Ops()
	require.Len(t, ops, 6)
	assert.Equal(t, OpTranslate, ops[1].Kind)
	assert.Equal(t, 5.0, ops[1].DX)
	assert.Equal(t, OpRotate, ops[2].Kind)
	assert.Equal(t, -5.0, ops[3].DY)
	assert.Equal(t, "rect", ops[4].Kind.String())

	var replay PictureRecorder
	target := replay.BeginRecording(list.Size())
	list.Paint(target)
	assert.Equal(t, ops, replay.EndRecording().Ops())

	counter := &countingCanvas{recordingCanvas: recordingCanvas{recorder: &PictureRecorder{}}}
	list.Paint(counter)
	assert.Equal(t, 1, counter.rects)
}

func TestRecorder_IgnoresDrawsAfterEnd(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 1, Height: 1})
	list := rec.EndRecording()
	canvas.Clear(ColorRed)
	assert.Empty(t, list.Ops())
}

func TestLayoutText(t *testing.T) {
	fonts, err := NewFontManager()
	require.NoError(t, err)

	layout, err := LayoutText("75.00", TextStyle{FontSize: 18}, fonts)
	require.NoError(t, err)
	assert.Equal(t, "go-regular", layout.Style.FontFamily)
	assert.Positive(t, layout.Size.Width)
	assert.Positive(t, layout.Bounds.Height())
	assert.Less(t, layout.Bounds.Top, 0.0, "ink sits above the baseline")
	assert.LessOrEqual(t, layout.Bounds.Height(), layout.Ascent+layout.Descent)

	wider, err := LayoutText("75.00", TextStyle{FontSize: 36}, fonts)
	require.NoError(t, err)
	assert.InDelta(t, layout.Size.Width*2, wider.Size.Width, 1)
}

func TestLayoutText_Errors(t *testing.T) {
	_, err := LayoutText("x", TextStyle{}, nil)
	assert.Error(t, err)

	fonts, err := NewFontManager()
	require.NoError(t, err)
	_, err = LayoutText("x", TextStyle{FontFamily: "missing"}, fonts)
	assert.ErrorContains(t, err, "not registered")

	assert.Error(t, fonts.RegisterFont("bad", []byte("not a font")))
	assert.Error(t, fonts.RegisterFont("", nil))
}

func TestDefaultFontManager(t *testing.T) {
	m, err := DefaultFontManagerErr()
	require.NoError(t, err)
	assert.Same(t, m, DefaultFontManager())
}
