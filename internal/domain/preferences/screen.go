package preferences

// Screen is an ordered set of controls with a title
type Screen struct {
	id       string
	title    string
	order    []Key
	controls map[Key]*Control
}

// NewScreen creates an empty screen
func NewScreen(id, title string) *Screen {
	return &Screen{
		id:       id,
		title:    title,
		controls: make(map[Key]*Control),
	}
}

// Add appends a control. A second control for the same key replaces the
// first without changing its position.
func (s *Screen) Add(c *Control) {
	if _, ok := s.controls[c.Key()]; !ok {
		s.order = append(s.order, c.Key())
	}
	s.controls[c.Key()] = c
}

// Find returns the control bound to key, or nil
func (s *Screen) Find(key Key) *Control {
	return s.controls[key]
}

// ID identifies the screen to the host
func (s *Screen) ID() string {
	return s.id
}

// Title returns the translated screen title
func (s *Screen) Title() string {
	return s.title
}

// Controls returns the controls in display order
func (s *Screen) Controls() []*Control {
	out := make([]*Control, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.controls[k])
	}
	return out
}
