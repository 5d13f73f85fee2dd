package synthpanel

import (
	"errors"
	"fmt"

	intknob "github.com/cbegin/synthpanel-go/internal/knob"
	intlayout "github.com/cbegin/synthpanel-go/internal/layout"
	inttoggle "github.com/cbegin/synthpanel-go/internal/toggle"
	intwave "github.com/cbegin/synthpanel-go/internal/wave"
)

// Kind identifies a control type.
type Kind = intlayout.Kind

const (
	KindKnob   = intlayout.KindKnob
	KindToggle = intlayout.KindToggle
	KindWave   = intlayout.KindWave
)

var (
	ErrUnknownControl = errors.New("unknown control")
	ErrWrongKind      = errors.New("control does not support this operation")
)

// Update is a parameter change handed to the synthesis side. Toggles report
// 1 or 0; waveform pickers report the option index and name it in Text.
type Update struct {
	ID    string
	Group string
	Name  string
	Kind  Kind
	Value float64
	Min   float64
	Max   float64
	Text  string
}

// Path returns "group/name".
func (u Update) Path() string { return intlayout.Path(u.Group, u.Name) }

type PanelOption func(*panelConfig)

type panelConfig struct {
	listeners   []func(Update)
	sensitivity float64
	icon        *intwave.Icon
}

// WithUpdateListener registers fn for every parameter update, including the
// initial sync of each knob during New.
func WithUpdateListener(fn func(Update)) PanelOption {
	return func(cfg *panelConfig) {
		if fn != nil {
			cfg.listeners = append(cfg.listeners, fn)
		}
	}
}

// WithSensitivity overrides the description's drag sensitivity.
func WithSensitivity(degreesPerPixel float64) PanelOption {
	return func(cfg *panelConfig) {
		cfg.sensitivity = degreesPerPixel
	}
}

// WithIcon overrides where waveform icons are looked up.
func WithIcon(base, ext, fragment string) PanelOption {
	return func(cfg *panelConfig) {
		cfg.icon = &intwave.Icon{Base: base, Ext: ext, Fragment: fragment}
	}
}

// Control is one typed binding built from the description. Exactly one of
// Knob, Toggle and Wave is non-nil, matching Kind.
type Control struct {
	ID    string
	Group string
	Name  string
	Label string
	Kind  Kind

	Knob   *intknob.Knob
	Toggle *inttoggle.Toggle
	Wave   *intwave.Selector
}

func (c *Control) Path() string { return intlayout.Path(c.Group, c.Name) }

// Value returns the control's numeric value as reported in updates.
func (c *Control) Value() float64 {
	switch c.Kind {
	case KindKnob:
		return c.Knob.Value()
	case KindToggle:
		if c.Toggle.Checked() {
			return 1
		}
		return 0
	case KindWave:
		return float64(c.Wave.Index())
	}
	return 0
}

// Text returns the control's bound input text.
func (c *Control) Text() string {
	switch c.Kind {
	case KindKnob:
		return c.Knob.Text()
	case KindToggle:
		return c.Toggle.Value()
	case KindWave:
		return c.Wave.Selected()
	}
	return ""
}

// Group is a labelled block of controls, in declaration order.
type Group struct {
	Name     string
	Label    string
	Controls []*Control
}

// Panel owns every control of a description and the single pointer capture
// they share.
type Panel struct {
	desc      intlayout.Description
	groups    []Group
	controls  []*Control
	byID      map[string]*Control
	byPath    map[string]*Control
	capture   intknob.Capture
	listeners []func(Update)
	eventCh   chan Update
}

// Load reads a description file (empty path: built-in panel) and builds it.
func Load(path string, opts ...PanelOption) (*Panel, error) {
	desc, err := intlayout.Load(path)
	if err != nil {
		return nil, err
	}
	return New(desc, opts...)
}

// New builds typed bindings for every control in desc, then syncs each knob
// once so listeners see the starting values.
func New(desc intlayout.Description, opts ...PanelOption) (*Panel, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	cfg := panelConfig{sensitivity: desc.Settings.Sensitivity}
	for _, opt := range opts {
		opt(&cfg)
	}
	icon := intwave.Icon{Base: desc.Settings.IconBase, Ext: desc.Settings.IconExt, Fragment: desc.Settings.IconFragment}
	if icon == (intwave.Icon{}) {
		icon = intwave.DefaultIcon()
	}
	if cfg.icon != nil {
		icon = *cfg.icon
	}

	p := &Panel{
		desc:      desc,
		byID:      make(map[string]*Control),
		byPath:    make(map[string]*Control),
		listeners: cfg.listeners,
	}
	for _, g := range desc.Groups {
		group := Group{Name: g.Name, Label: g.DisplayLabel()}
		for _, param := range g.Params {
			c, err := p.bind(g.Name, param, cfg, icon)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", intlayout.Path(g.Name, param.Name), err)
			}
			group.Controls = append(group.Controls, c)
			p.controls = append(p.controls, c)
			p.byID[c.ID] = c
			p.byPath[c.Path()] = c
		}
		p.groups = append(p.groups, group)
	}
	for _, c := range p.controls {
		if c.Knob != nil {
			c.Knob.Sync()
		}
	}
	return p, nil
}

func (p *Panel) bind(group string, param intlayout.Param, cfg panelConfig, icon intwave.Icon) (*Control, error) {
	c := &Control{
		ID:    intlayout.ControlID(group, param.Name),
		Group: group,
		Name:  param.Name,
		Label: param.DisplayLabel(),
		Kind:  param.Kind,
	}
	switch param.Kind {
	case KindKnob:
		c.Knob = intknob.New(intknob.Config{
			MaxRotation:  p.desc.Settings.MaxRotation,
			Sensitivity:  cfg.sensitivity,
			GaugeGap:     p.desc.Settings.GaugeGap,
			ZeroCentered: param.ZeroCentered,
		}, intknob.Input{Min: param.Min, Max: param.Max, Step: param.Step, Default: param.Default})
		c.Knob.OnChange(func(u intknob.Update) {
			p.emit(Update{ID: c.ID, Group: c.Group, Name: c.Name, Kind: c.Kind, Value: u.Value, Min: u.Min, Max: u.Max, Text: u.Text})
		})
	case KindToggle:
		c.Toggle = inttoggle.New(param.Checked)
		c.Toggle.OnChange(func(on bool) {
			p.emit(Update{ID: c.ID, Group: c.Group, Name: c.Name, Kind: c.Kind, Value: c.Value(), Min: 0, Max: 1, Text: c.Toggle.Value()})
		})
	case KindWave:
		sel, err := intwave.New(param.Options, param.Value, icon)
		if err != nil {
			return nil, err
		}
		c.Wave = sel
		last := float64(len(param.Options) - 1)
		c.Wave.OnChange(func(idx int, name string) {
			p.emit(Update{ID: c.ID, Group: c.Group, Name: c.Name, Kind: c.Kind, Value: float64(idx), Min: 0, Max: last, Text: name})
		})
	default:
		return nil, fmt.Errorf("unknown kind %q", param.Kind)
	}
	return c, nil
}

func (p *Panel) emit(u Update) {
	for _, fn := range p.listeners {
		fn(u)
	}
	if p.eventCh != nil {
		select {
		case p.eventCh <- u:
		default:
			// Channel full; drop update
		}
	}
}

// Watch returns a channel that receives every update from now on. The
// channel is buffered (cap 8) and updates are dropped when it is full. Only
// the most recent Watch channel receives updates.
func (p *Panel) Watch() <-chan Update {
	ch := make(chan Update, 8)
	p.eventCh = ch
	return ch
}

// Description returns the description the panel was built from.
func (p *Panel) Description() intlayout.Description { return p.desc }

// Groups returns the groups in declaration order.
func (p *Panel) Groups() []Group { return p.groups }

// Controls returns every control in declaration order.
func (p *Panel) Controls() []*Control { return p.controls }

// Control looks a control up by id.
func (p *Panel) Control(id string) (*Control, error) {
	c, ok := p.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownControl, id)
	}
	return c, nil
}

// Lookup finds a control by its "group/name" path.
func (p *Panel) Lookup(path string) (*Control, error) {
	c, ok := p.byPath[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownControl, path)
	}
	return c, nil
}

func (p *Panel) knob(id string) (*Control, error) {
	c, err := p.Control(id)
	if err != nil {
		return nil, err
	}
	if c.Kind != KindKnob {
		return nil, fmt.Errorf("%w: %s is a %s", ErrWrongKind, c.Path(), c.Kind)
	}
	return c, nil
}

// PointerDown starts a drag on knob id at (x, y). Any drag still in progress
// is ended first.
func (p *Panel) PointerDown(id string, x, y float64) error {
	c, err := p.knob(id)
	if err != nil {
		return err
	}
	p.capture.Begin(c.Knob, x, y)
	return nil
}

// PointerMove feeds the active drag, wherever the pointer is. It reports
// whether a drag consumed the move.
func (p *Panel) PointerMove(x, y float64) bool {
	return p.capture.Move(x, y)
}

// PointerUp ends the active drag, if any.
func (p *Panel) PointerUp() {
	p.capture.End()
}

// Dragging returns the control being dragged.
func (p *Panel) Dragging() (*Control, bool) {
	g := p.capture.Active()
	if g == nil {
		return nil, false
	}
	for _, c := range p.controls {
		if c.Knob == g.Knob() {
			return c, true
		}
	}
	return nil, false
}

// DoubleClick resets knob id to its default value.
func (p *Panel) DoubleClick(id string) error {
	c, err := p.knob(id)
	if err != nil {
		return err
	}
	c.Knob.Reset()
	return nil
}

// Click flips a toggle or advances a waveform picker.
func (p *Panel) Click(id string) error {
	c, err := p.Control(id)
	if err != nil {
		return err
	}
	switch c.Kind {
	case KindToggle:
		c.Toggle.Click()
	case KindWave:
		c.Wave.Next()
	default:
		return fmt.Errorf("%w: %s is a %s", ErrWrongKind, c.Path(), c.Kind)
	}
	return nil
}

// SetText writes text into the control's bound input: a number for knobs,
// on/off for toggles, an option name for waveform pickers. Knob text is
// normalized rather than rejected; an empty value is ignored.
func (p *Panel) SetText(id, text string) error {
	c, err := p.Control(id)
	if err != nil {
		return err
	}
	switch c.Kind {
	case KindKnob:
		c.Knob.SetText(text)
	case KindToggle:
		on, ok := inttoggle.ParseValue(text)
		if !ok {
			return fmt.Errorf("%s: invalid toggle value %q", c.Path(), text)
		}
		c.Toggle.Set(on)
	case KindWave:
		return c.Wave.Select(text)
	}
	return nil
}

// Select picks a waveform option by name.
func (p *Panel) Select(id, name string) error {
	c, err := p.Control(id)
	if err != nil {
		return err
	}
	if c.Kind != KindWave {
		return fmt.Errorf("%w: %s is a %s", ErrWrongKind, c.Path(), c.Kind)
	}
	return c.Wave.Select(name)
}

// Value returns the current numeric value of control id.
func (p *Panel) Value(id string) (float64, error) {
	c, err := p.Control(id)
	if err != nil {
		return 0, err
	}
	return c.Value(), nil
}

// State is a point-in-time view of one control.
type State struct {
	ID    string  `toml:"id"`
	Path  string  `toml:"path"`
	Kind  Kind    `toml:"kind"`
	Value float64 `toml:"value"`
	Text  string  `toml:"text"`
	Icon  string  `toml:"icon,omitempty"`
}

// Snapshot returns the state of every control in description order.
func (p *Panel) Snapshot() []State {
	out := make([]State, 0, len(p.controls))
	for _, c := range p.controls {
		s := State{ID: c.ID, Path: c.Path(), Kind: c.Kind, Value: c.Value(), Text: c.Text()}
		if c.Wave != nil {
			s.Icon = c.Wave.IconRef()
		}
		out = append(out, s)
	}
	return out
}
