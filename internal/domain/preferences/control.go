package preferences

// Kind tags the variant held by a Control
type Kind int

const (
	KindToggle Kind = iota
	KindLabel
)

// String returns the variant name sent to the frontend
func (k Kind) String() string {
	if k == KindLabel {
		return "label"
	}
	return "toggle"
}

// Control is a widget bound to exactly one preference key. A toggle shows
// the boolean directly; a label shows a summary chosen by the boolean.
type Control struct {
	key     Key
	kind    Kind
	title   string
	checked bool
	summary string
	enabled bool
	offText string
	onText  string
}

// ControlState is a read-only snapshot of a Control
type ControlState struct {
	Key     Key
	Kind    Kind
	Title   string
	Checked bool
	Summary string
	Enabled bool
}

// NewToggle creates a two-state control
func NewToggle(key Key, title string) *Control {
	return &Control{key: key, kind: KindToggle, title: title, enabled: true}
}

// NewLabel creates a summary control. offText is shown for false and
// onText for true once ApplyState has been called.
func NewLabel(key Key, title, offText, onText string) *Control {
	return &Control{
		key:     key,
		kind:    KindLabel,
		title:   title,
		enabled: true,
		offText: offText,
		onText:  onText,
	}
}

// Key returns the preference the control is bound to
func (c *Control) Key() Key {
	return c.key
}

// ApplyState reflects a boolean into the control
func (c *Control) ApplyState(value bool) {
	switch c.kind {
	case KindToggle:
		if c.checked != value {
			c.checked = value
		}
	case KindLabel:
		if value {
			c.summary = c.onText
		} else {
			c.summary = c.offText
		}
	}
}

// Checked reports the toggle state. Labels are never checked.
func (c *Control) Checked() bool {
	return c.kind == KindToggle && c.checked
}

// Enabled reports whether the user may edit the control
func (c *Control) Enabled() bool {
	return c.enabled
}

// SetEnabled locks or unlocks the control for user edits
func (c *Control) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// State returns a snapshot suitable for handing to the frontend
func (c *Control) State() ControlState {
	return ControlState{
		Key:     c.key,
		Kind:    c.kind,
		Title:   c.title,
		Checked: c.Checked(),
		Summary: c.summary,
		Enabled: c.enabled,
	}
}
