package graphics

import "fmt"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpSave OpKind = iota
	OpRestore
	OpTranslate
	OpRotate
	OpClear
	OpRect
	OpText
)

var opKindNames = []string{"save", "restore", "translate", "rotate", "clear", "rect", "text"}

// String returns a human-readable representation of the op kind.
func (k OpKind) String() string {
	if int(k) >= 0 && int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is a single recorded drawing operation. Only the fields relevant to
// Kind are set.
type Op struct {
	Kind     OpKind
	Rect     Rect
	Paint    Paint
	Color    Color
	Layout   *TextLayout
	Position Offset
	DX, DY   float64
	Radians  float64
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []Op
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []Op {
	ops := make([]Op, len(d.ops))
	copy(ops, d.ops)
	return ops
}

func (op Op) execute(canvas Canvas) {
	switch op.Kind {
	case OpSave:
		canvas.Save()
	case OpRestore:
		canvas.Restore()
	case OpTranslate:
		canvas.Translate(op.DX, op.DY)
	case OpRotate:
		canvas.Rotate(op.Radians)
	case OpClear:
		canvas.Clear(op.Color)
	case OpRect:
		canvas.DrawRect(op.Rect, op.Paint)
	case OpText:
		canvas.DrawText(op.Layout, op.Position)
	}
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []Op
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op Op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(Op{Kind: OpSave})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(Op{Kind: OpRestore})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(Op{Kind: OpTranslate, DX: dx, DY: dy})
}

func (c *recordingCanvas) Rotate(radians float64) {
	c.recorder.append(Op{Kind: OpRotate, Radians: radians})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(Op{Kind: OpClear, Color: color})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(Op{Kind: OpRect, Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position Offset) {
	c.recorder.append(Op{Kind: OpText, Layout: layout, Position: position})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}
