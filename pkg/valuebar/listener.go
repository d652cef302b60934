package valuebar

// SelectionListener observes values chosen by touch.
type SelectionListener interface {
	// OnSelectionUpdate is called on press and on every move while dragging.
	OnSelectionUpdate(value, max, min float64, source *ValueBar)
	// OnValueSelected is called when the pointer is released.
	OnValueSelected(value, max, min float64, source *ValueBar)
}

// SelectionFuncs adapts a pair of functions to SelectionListener. Either
// function may be nil.
type SelectionFuncs struct {
	Update   func(value, max, min float64, source *ValueBar)
	Selected func(value, max, min float64, source *ValueBar)
}

// OnSelectionUpdate calls s.Update if set.
func (s SelectionFuncs) OnSelectionUpdate(value, max, min float64, source *ValueBar) {
	if s.Update != nil {
		s.Update(value, max, min, source)
	}
}

// OnValueSelected calls s.Selected if set.
func (s SelectionFuncs) OnValueSelected(value, max, min float64, source *ValueBar) {
	if s.Selected != nil {
		s.Selected(value, max, min, source)
	}
}
