package navigation

// State tracks the active page. The zero value is on Welcome.
type State struct {
	Current Page
}

// NewState returns a State positioned on start. Undeclared pages fall back
// to Welcome so exactly one valid page is always active.
func NewState(start Page) State {
	if !start.Valid() {
		start = Welcome
	}
	return State{Current: start}
}

// Go switches to p and reports whether the active page changed.
// Going to the page already shown is a no-op.
func (s *State) Go(p Page) bool {
	if !p.Valid() || s.Current == p {
		return false
	}
	s.Current = p
	return true
}
