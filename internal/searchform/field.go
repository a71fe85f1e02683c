package searchform

// Background shades of a search field container.
const (
	ShadeDefault = ""
	ShadeHover   = "#ebebeb"
	ShadeFocused = "#e8e8e8"
)

// Visual is the rendered state of a search field.
type Visual int

const (
	VisualDefault Visual = iota
	VisualHover
	VisualFocused
)

func (v Visual) String() string {
	switch v {
	case VisualHover:
		return "hover"
	case VisualFocused:
		return "focused"
	default:
		return "default"
	}
}

// FieldState is the state of one search field: the value of its input and
// whether the input has focus or the pointer is over the container.
type FieldState struct {
	Value   string
	Focused bool
	Hovered bool
}

// Visual derives the rendered state. Focus wins over hover.
func (s FieldState) Visual() Visual {
	switch {
	case s.Focused:
		return VisualFocused
	case s.Hovered:
		return VisualHover
	default:
		return VisualDefault
	}
}

// Shade is the container background for the current state.
func (s FieldState) Shade() string {
	switch s.Visual() {
	case VisualFocused:
		return ShadeFocused
	case VisualHover:
		return ShadeHover
	default:
		return ShadeDefault
	}
}

// Apply returns the state after kind happened on the field. Events that do
// not concern styling (change, trigger, toggle) leave the state unchanged.
//
// Blur also drops the hover flag: the field goes back to the default shade
// even if the pointer is still over it, until the pointer re-enters.
func (s FieldState) Apply(kind EventKind) FieldState {
	switch kind {
	case EventClick, EventFocus:
		s.Focused = true
	case EventBlur:
		s.Focused = false
		s.Hovered = false
	case EventMouseEnter:
		s.Hovered = true
	case EventMouseLeave:
		s.Hovered = false
	}
	return s
}
