package knob

// Capture is the panel-wide pointer capture. While a gesture holds it, every
// move and release goes to that gesture regardless of where the pointer is.
// At most one gesture holds the capture at a time.
type Capture struct {
	active *Gesture
}

// Begin starts a drag on k at pointer position (x, y). A gesture still holding
// the capture is ended first.
func (c *Capture) Begin(k *Knob, x, y float64) *Gesture {
	if c.active != nil {
		c.active.End()
	}
	g := &Gesture{
		capture: c,
		knob:    k,
		lastX:   x,
		lastY:   y,
	}
	c.active = g
	return g
}

// Active returns the gesture holding the capture, or nil.
func (c *Capture) Active() *Gesture { return c.active }

// Move forwards a pointer move to the active gesture. It reports whether a
// gesture consumed it.
func (c *Capture) Move(x, y float64) bool {
	if c.active == nil {
		return false
	}
	c.active.Move(x, y)
	return true
}

// End releases the capture.
func (c *Capture) End() {
	if c.active != nil {
		c.active.End()
	}
}

// Gesture is one press-move-release drag on a knob.
type Gesture struct {
	capture *Capture
	knob    *Knob
	lastX   float64
	lastY   float64
	done    bool
}

// Knob returns the knob being dragged.
func (g *Gesture) Knob() *Knob { return g.knob }

// Done reports whether the gesture has ended.
func (g *Gesture) Done() bool { return g.done }

// Move applies the pointer delta since the previous position. Upward and
// rightward motion both turn the knob clockwise. The delta is added to the
// knob's current rotation, which every write re-derives from the quantized
// value.
func (g *Gesture) Move(x, y float64) {
	if g.done {
		return
	}
	k := g.knob
	dy := g.lastY - y
	dx := g.lastX - x
	g.lastX, g.lastY = x, y
	k.Rotate(k.rotation + k.cfg.Sensitivity*(dy-dx)/2)
}

// End finishes the drag and releases the capture if this gesture holds it.
// Calling End more than once is harmless.
func (g *Gesture) End() {
	if g.done {
		return
	}
	g.done = true
	if g.capture != nil && g.capture.active == g {
		g.capture.active = nil
	}
}
