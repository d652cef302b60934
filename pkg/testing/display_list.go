package testing

import (
	"github.com/go-drift/valuebar/pkg/graphics"
)

// Painter is anything that paints itself onto a canvas.
type Painter interface {
	Paint(canvas graphics.Canvas)
}

// Record paints p onto a recording canvas of the given size and returns
// the resulting display list.
func Record(p Painter, size graphics.Size) *graphics.DisplayList {
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(size)
	p.Paint(canvas)
	return recorder.EndRecording()
}

// Rects returns the DrawRect operations in recording order.
func Rects(list *graphics.DisplayList) []graphics.Op {
	return OpsOfKind(list, graphics.OpRect)
}

// Texts returns the DrawText operations in recording order.
func Texts(list *graphics.DisplayList) []graphics.Op {
	return OpsOfKind(list, graphics.OpText)
}

// OpsOfKind filters a display list down to one kind of operation.
func OpsOfKind(list *graphics.DisplayList, kind graphics.OpKind) []graphics.Op {
	var out []graphics.Op
	for _, op := range list.Ops() {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
