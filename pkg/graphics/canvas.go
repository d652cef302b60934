package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Rotate rotates the coordinate system by radians.
	// Positive angles turn clockwise in y-down screen space.
	Rotate(radians float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawText draws a measured text layout with its baseline origin at position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in pixels.
	Size() Size
}

// RotateAround rotates canvas by degrees around pivot.
func RotateAround(canvas Canvas, degrees float64, pivot Offset) {
	canvas.Translate(pivot.X, pivot.Y)
	canvas.Rotate(DegreesToRadians(degrees))
	canvas.Translate(-pivot.X, -pivot.Y)
}
