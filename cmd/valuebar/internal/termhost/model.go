// Package termhost hosts a ValueBar inside a terminal using Bubble Tea.
//
// Each terminal cell shows two vertically stacked pixels with the upper
// half block glyph: the foreground paints the top pixel and the background
// the bottom one. Mouse events become pointer events and a frame tick steps
// the animation tickers while any are active.
package termhost

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/valuebar/pkg/animation"
	"github.com/go-drift/valuebar/pkg/gestures"
	"github.com/go-drift/valuebar/pkg/graphics"
	"github.com/go-drift/valuebar/pkg/raster"
	"github.com/go-drift/valuebar/pkg/valuebar"
)

// FrameInterval is the delay between animation frames.
const FrameInterval = 16 * time.Millisecond

// Step is how far the arrow keys move the value, as a fraction of the range.
const Step = 0.1

const halfBlock = "▀"

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
)

type frameMsg time.Time

// Model is the Bubble Tea model driving one ValueBar.
type Model struct {
	bar        *valuebar.ValueBar
	background graphics.Color
	duration   time.Duration

	rows    int
	cols    int
	pressed bool
	ticking bool

	status string
	frame  string
}

// Options configures a Model.
type Options struct {
	// Rows is the bar height in terminal rows. Defaults to 3.
	Rows int
	// Background is painted behind the bar. Defaults to black.
	Background graphics.Color
	// Duration of keyboard-triggered animations. Defaults to 400ms.
	Duration time.Duration
}

// New wraps bar in a Model. The bar's selection listener is replaced so the
// model can show the selected value.
func New(bar *valuebar.ValueBar, opts Options) *Model {
	if opts.Rows <= 0 {
		opts.Rows = 3
	}
	if opts.Background == 0 {
		opts.Background = graphics.ColorBlack
	}
	if opts.Duration <= 0 {
		opts.Duration = 400 * time.Millisecond
	}
	m := &Model{
		bar:        bar,
		background: opts.Background,
		duration:   opts.Duration,
		rows:       opts.Rows,
		cols:       40,
	}
	bar.SetSelectionListener(valuebar.SelectionFuncs{
		Update: func(value, max, min float64, _ *valuebar.ValueBar) {
			m.status = fmt.Sprintf("dragging %.2f", value)
		},
		Selected: func(value, max, min float64, _ *valuebar.ValueBar) {
			m.status = fmt.Sprintf("selected %.2f", value)
		},
	})
	m.layout()
	return m
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	m.ticking = true
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles terminal input and frame ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 1)
		m.layout()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case frameMsg:
		animation.StepTickers()
		if animation.HasActiveTickers() {
			return m, tick()
		}
		m.ticking = false
	}
	return m, nil
}

// resumeFrames restarts the frame loop after it went idle.
func (m *Model) resumeFrames() tea.Cmd {
	if m.ticking || !animation.HasActiveTickers() {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	span := m.bar.Max() - m.bar.Min()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.bar.Dispose()
		return tea.Quit
	case "left", "h":
		m.bar.AnimateDown(m.bar.Value()-span*Step, m.duration)
	case "right", "l":
		m.bar.AnimateDown(m.bar.Value()+span*Step, m.duration)
	case "home":
		m.bar.AnimateDown(m.bar.Min(), m.duration)
	case "end":
		m.bar.AnimateDown(m.bar.Max(), m.duration)
	case "u":
		m.bar.AnimateUp(m.bar.Value(), m.duration*2)
	}
	return m.resumeFrames()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	var phase gestures.PointerPhase
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		phase = gestures.PointerPhaseDown
		m.pressed = true
	case msg.Action == tea.MouseActionMotion && m.pressed:
		phase = gestures.PointerPhaseMove
	case msg.Action == tea.MouseActionRelease && m.pressed:
		phase = gestures.PointerPhaseUp
		m.pressed = false
	default:
		return
	}
	m.bar.HandlePointer(PointerEvent(msg.X, msg.Y, phase))
}

// PointerEvent maps a terminal cell to the pixel at its center.
func PointerEvent(col, row int, phase gestures.PointerPhase) gestures.PointerEvent {
	return gestures.PointerEvent{
		Phase:    phase,
		Position: graphics.Offset{X: float64(col) + 0.5, Y: float64(row)*2 + 1},
	}
}

func (m *Model) layout() {
	m.bar.Layout(float64(m.cols), float64(m.rows*2))
}

// View renders the bar followed by a status and help line.
func (m *Model) View() string {
	if m.bar.NeedsPaint() || m.frame == "" {
		m.frame = m.render()
	}
	status := m.status
	if status == "" {
		status = fmt.Sprintf("value %.2f", m.bar.Value())
	}
	return m.frame + "\n" +
		statusStyle.Render(status) + "\n" +
		helpStyle.Render("drag to select  ←/→ step  home/end  u replay  q quit")
}

func (m *Model) render() string {
	canvas := raster.NewCanvas(m.bar.Size())
	canvas.Clear(m.background)
	m.bar.Paint(canvas)
	return Cells(canvas)
}

// Cells converts a canvas into rows of half block cells.
func Cells(canvas *raster.Canvas) string {
	img := canvas.Image()
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hex(img.RGBAAt(x, y))
			bottom := top
			if y+1 < b.Max.Y {
				bottom = hex(img.RGBAAt(x, y+1))
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock))
		}
	}
	return sb.String()
}

func hex(c color.RGBA) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}

// Bar returns the hosted widget.
func (m *Model) Bar() *valuebar.ValueBar {
	return m.bar
}

// Status returns the current status line text.
func (m *Model) Status() string {
	return m.status
}

// Run starts a full-screen program around bar and blocks until it quits.
func Run(bar *valuebar.ValueBar, opts Options) error {
	p := tea.NewProgram(New(bar, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal host: %w", err)
	}
	return nil
}
