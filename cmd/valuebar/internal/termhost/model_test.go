package termhost

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/valuebar/pkg/gestures"
	"github.com/go-drift/valuebar/pkg/graphics"
	"github.com/go-drift/valuebar/pkg/raster"
	drifttest "github.com/go-drift/valuebar/pkg/testing"
	"github.com/go-drift/valuebar/pkg/valuebar"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	m := New(valuebar.NewWithDensity(0.3), Options{Rows: 3})
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 10})
	return m
}

func TestNew_LaysOutToTerminal(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, graphics.Size{Width: 50, Height: 6}, m.Bar().Size())
}

func TestMouseDragSelectsValue(t *testing.T) {
	m := newModel(t)

	m.Update(tea.MouseMsg{X: 25, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	want := 100 * (25.5 - 1) / 48
	assert.InDelta(t, want, m.Bar().Value(), 1e-9)
	assert.True(t, strings.HasPrefix(m.Status(), "dragging"))

	m.Update(tea.MouseMsg{X: 13, Y: 1, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: 13, Y: 1, Action: tea.MouseActionRelease})
	assert.InDelta(t, 100*(13.5-1)/48, m.Bar().Value(), 1e-9)
	assert.Equal(t, "selected 26.04", m.Status())
}

func TestMouseMotionWithoutPressIsIgnored(t *testing.T) {
	m := newModel(t)
	before := m.Bar().Value()
	m.Update(tea.MouseMsg{X: 10, Y: 1, Action: tea.MouseActionMotion})
	assert.Equal(t, before, m.Bar().Value())
}

func TestArrowKeysAnimate(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	m := newModel(t)
	start := m.Bar().Value()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.NotNil(t, cmd, "an animation resumes the frame loop")
	require.True(t, m.Bar().IsAnimating())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd, "frames are already ticking")

	clk.Advance(100 * time.Millisecond)
	_, cmd = m.Update(frameMsg(clk.Now()))
	assert.NotNil(t, cmd, "frames keep ticking while animating")

	clk.Advance(time.Second)
	_, cmd = m.Update(frameMsg(clk.Now()))
	assert.Nil(t, cmd, "frames stop once idle")
	assert.InDelta(t, start+10, m.Bar().Value(), 1e-9)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.NotNil(t, cmd)
	clk.Advance(time.Second)
	m.Update(frameMsg(clk.Now()))
	assert.InDelta(t, start, m.Bar().Value(), 1e-9)
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := newModel(t)
	view := m.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 5, "three bar rows, status and help")
	assert.Equal(t, 50, strings.Count(lines[0], halfBlock))
	assert.Contains(t, view, "value 75.00")
	assert.False(t, m.Bar().NeedsPaint())
}

func TestCells(t *testing.T) {
	c := raster.NewCanvas(graphics.Size{Width: 3, Height: 3})
	c.Clear(graphics.ColorRed)

	out := Cells(c)
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 2, "odd heights round up to a full cell row")
	assert.Equal(t, 3, strings.Count(rows[0], halfBlock))
}

func TestPointerEvent(t *testing.T) {
	e := PointerEvent(4, 2, gestures.PointerPhaseMove)
	assert.Equal(t, graphics.Offset{X: 4.5, Y: 5}, e.Position)
	assert.Equal(t, gestures.PointerPhaseMove, e.Phase)
}
