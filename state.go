package arcview

import "image/color"

// PressState is the interaction state of a sector.
type PressState uint8

const (
	// Idle is the resting state; the ring is filled with the arc color.
	Idle PressState = iota
	// Pressed means a pointer went down inside the sector and has not left
	// it yet; the ring is filled with the pressed color.
	Pressed
)

// String returns the state name.
func (st PressState) String() string {
	switch st {
	case Idle:
		return "Idle"
	case Pressed:
		return "Pressed"
	default:
		return "Unknown"
	}
}

// PointerAction identifies a pointer event kind.
type PointerAction uint8

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
	PointerCancel
)

// String returns the action name.
func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	case PointerCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// PointerEvent is a pointer event in the sector's local coordinates.
type PointerEvent struct {
	Action PointerAction
	X, Y   float64
}

// transition is the press state table. It returns the next state and
// whether the sector claims the gesture.
//
//	state    event      inside  next     handled
//	any      Down       yes     Pressed  true
//	any      Down       no      (same)   false
//	Pressed  Move       yes     Pressed  true
//	Pressed  Move       no      Idle     false
//	Idle     Move       any     Idle     false
//	any      Up/Cancel  any     Idle     false
func transition(cur PressState, action PointerAction, inside bool) (PressState, bool) {
	switch action {
	case PointerDown:
		if inside {
			return Pressed, true
		}
		return cur, false
	case PointerMove:
		if cur == Pressed && inside {
			return Pressed, true
		}
		return Idle, false
	case PointerUp, PointerCancel:
		return Idle, false
	default:
		return cur, false
	}
}

// State returns the current press state.
func (s *Sector) State() PressState { return s.state }

// Pressed reports whether the sector is in the Pressed state.
func (s *Sector) Pressed() bool { return s.state == Pressed }

// HandlePointer feeds a pointer event through the press state machine and
// reports whether the sector claims the gesture. An Up event inside the
// sector while Pressed fires the tap callback.
func (s *Sector) HandlePointer(ev PointerEvent) bool {
	inside := s.Contains(ev.X, ev.Y)
	prev := s.state
	next, handled := transition(prev, ev.Action, inside)
	s.state = next

	if prev != next {
		Logger().Debug("sector state",
			"text", s.text,
			"action", ev.Action.String(),
			"from", prev.String(),
			"to", next.String())
	}
	if ev.Action == PointerUp && prev == Pressed && inside && s.onTap != nil {
		s.onTap(s)
	}
	return handled
}

// ResetState forces the sector back to Idle.
func (s *Sector) ResetState() {
	s.state = Idle
}

// FillColor returns the ring color for the current state.
func (s *Sector) FillColor() color.Color {
	if s.state == Pressed {
		return s.style.PressedColor
	}
	return s.style.ArcColor
}
