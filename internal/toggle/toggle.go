package toggle

const (
	ValueOn  = "on"
	ValueOff = "off"
)

// Toggle is a latching button backed by a checkbox-like boolean input. While
// checked, its indicator light pulses.
type Toggle struct {
	checked   bool
	listeners []func(bool)
}

// New returns a toggle in the given state. No observer is notified.
func New(checked bool) *Toggle {
	return &Toggle{checked: checked}
}

// OnChange registers fn to receive the new state after every flip.
func (t *Toggle) OnChange(fn func(bool)) {
	if fn != nil {
		t.listeners = append(t.listeners, fn)
	}
}

// Click flips the state.
func (t *Toggle) Click() {
	t.Set(!t.checked)
}

// Set forces the state, notifying observers only if it changed.
func (t *Toggle) Set(checked bool) {
	if checked == t.checked {
		return
	}
	t.checked = checked
	for _, fn := range t.listeners {
		fn(checked)
	}
}

func (t *Toggle) Checked() bool { return t.checked }

// Value is the boolean input's value string.
func (t *Toggle) Value() string {
	if t.checked {
		return ValueOn
	}
	return ValueOff
}

// Pulsing reports whether the indicator light carries the pulse animation.
func (t *Toggle) Pulsing() bool { return t.checked }

// ParseValue accepts the usual spellings of a boolean input value.
func ParseValue(s string) (bool, bool) {
	switch s {
	case ValueOn, "true", "1", "yes":
		return true, true
	case ValueOff, "false", "0", "no":
		return false, true
	}
	return false, false
}
