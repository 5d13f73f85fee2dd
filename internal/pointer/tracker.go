package pointer

// Kind identifies a pointer event.
type Kind int

const (
	Press Kind = iota
	Move
	Release
	DoubleClick
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case DoubleClick:
		return "double-click"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind Kind
	X, Y int
}

const (
	// DefaultDoubleClickTicks is the window between two presses, in frames
	// at 60 TPS, that still counts as a double click.
	DefaultDoubleClickTicks = 18
	// DefaultDoubleClickSlop is how far apart, in pixels, the two presses
	// of a double click may land.
	DefaultDoubleClickSlop = 4
)

// Tracker turns primary-button state into press, move, release and
// double-click events. Front ends that poll (ebiten) call Sample once per
// frame; front ends with discrete events call Press, Motion and Release.
type Tracker struct {
	DoubleClickTicks int
	DoubleClickSlop  int

	pressed   bool
	x, y      int
	lastPress int
	pressX    int
	pressY    int
	havePress bool
}

func NewTracker() *Tracker {
	return &Tracker{
		DoubleClickTicks: DefaultDoubleClickTicks,
		DoubleClickSlop:  DefaultDoubleClickSlop,
	}
}

// Pressed reports whether the button is currently held.
func (t *Tracker) Pressed() bool { return t.pressed }

// Sample feeds the polled cursor position and button state for frame tick.
func (t *Tracker) Sample(x, y int, pressed bool, tick int) []Event {
	switch {
	case pressed && !t.pressed:
		return t.Press(x, y, tick)
	case !pressed && t.pressed:
		return t.Release(x, y)
	case pressed:
		return t.Motion(x, y)
	}
	t.x, t.y = x, y
	return nil
}

// Press records a button press at tick. A second press close enough in time
// and space to the previous one also yields DoubleClick.
func (t *Tracker) Press(x, y int, tick int) []Event {
	t.pressed = true
	t.x, t.y = x, y
	events := []Event{{Kind: Press, X: x, Y: y}}
	if t.havePress && tick-t.lastPress <= t.DoubleClickTicks && near(x, y, t.pressX, t.pressY, t.DoubleClickSlop) {
		events = append(events, Event{Kind: DoubleClick, X: x, Y: y})
		// a third press starts a new pair
		t.havePress = false
		return events
	}
	t.havePress = true
	t.lastPress = tick
	t.pressX, t.pressY = x, y
	return events
}

// Motion reports a move while the button is held. Moves without the button,
// or to the same position, yield nothing.
func (t *Tracker) Motion(x, y int) []Event {
	if !t.pressed || (x == t.x && y == t.y) {
		t.x, t.y = x, y
		return nil
	}
	t.x, t.y = x, y
	return []Event{{Kind: Move, X: x, Y: y}}
}

// Release ends the press. Releasing at a new position reports the final move
// first.
func (t *Tracker) Release(x, y int) []Event {
	if !t.pressed {
		return nil
	}
	var events []Event
	if x != t.x || y != t.y {
		events = append(events, Event{Kind: Move, X: x, Y: y})
	}
	t.pressed = false
	t.x, t.y = x, y
	return append(events, Event{Kind: Release, X: x, Y: y})
}

func near(x0, y0, x1, y1, slop int) bool {
	dx := x0 - x1
	dy := y0 - y1
	return dx*dx+dy*dy <= slop*slop
}
