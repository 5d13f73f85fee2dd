package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cbegin/synthpanel-go"
	"github.com/cbegin/synthpanel-go/internal/lfo"
	"github.com/cbegin/synthpanel-go/internal/pointer"
)

const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorPeach    lipgloss.Color = "#fab387"
	colorRed      lipgloss.Color = "#f38ba8"
	colorSurface  lipgloss.Color = "#45475a"
)

// A terminal cell is much coarser than a pixel; scale cell moves so a drag
// across a row feels like a drag across a knob on screen.
const (
	cellPxX = 4
	cellPxY = 8
)

const (
	labelWidth = 12
	gaugeWidth = 29
	historyLen = 4
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	groupStyle  = lipgloss.NewStyle().Foreground(colorSubtext).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(colorText).Width(labelWidth)
	focusStyle  = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	gaugeStyle  = lipgloss.NewStyle().Foreground(colorBlue)
	trackStyle  = lipgloss.NewStyle().Foreground(colorSurface)
	markStyle   = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	editStyle   = lipgloss.NewStyle().Foreground(colorPeach).Underline(true)
	offStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	onStyle     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	errStyle    = lipgloss.NewStyle().Foreground(colorRed)
	statusStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1)
)

const (
	helpText = "j/k move  h/l nudge  space click  e edit  r reset  o reload  q quit"

	// ticksPerSec matches the pointer tracker's frame-based double-click window.
	ticksPerSec = 60
	pulsePeriod = time.Second
)

type pulseMsg time.Time

func pulse() tea.Cmd {
	return tea.Tick(pulsePeriod/4, func(t time.Time) tea.Msg { return pulseMsg(t) })
}

type model struct {
	path    string
	panel   *synthpanel.Panel
	tracker *pointer.Tracker
	start   time.Time
	now     time.Time

	focus   int
	editing bool
	editBuf []rune

	history   []string
	status    string
	statusErr bool

	width int
}

func newModel(path string) (*model, error) {
	m := &model{
		path:    path,
		tracker: pointer.NewTracker(),
		start:   time.Now(),
		now:     time.Now(),
		width:   80,
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *model) load() error {
	p, err := synthpanel.Load(m.path, synthpanel.WithUpdateListener(m.record))
	if err != nil {
		return err
	}
	m.panel = p
	m.focus = 0
	m.editing = false
	m.history = nil
	m.setStatus(fmt.Sprintf("%d controls", len(p.Controls())))
	return nil
}

func (m *model) record(u synthpanel.Update) {
	line := fmt.Sprintf("%s = %s", u.Path(), u.Text)
	m.history = append(m.history, line)
	if len(m.history) > historyLen {
		m.history = m.history[len(m.history)-historyLen:]
	}
}

func (m *model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *model) Init() tea.Cmd { return pulse() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case pulseMsg:
		m.now = time.Time(msg)
		return m, pulse()
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if m.editing {
			m.handleEditKey(msg)
			return m, nil
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *model) focused() *synthpanel.Control {
	controls := m.panel.Controls()
	if m.focus < 0 || m.focus >= len(controls) {
		return nil
	}
	return controls[m.focus]
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "o":
		if err := m.load(); err != nil {
			m.setError(err)
		}
		return nil
	}
	c := m.focused()
	if c == nil {
		return nil
	}
	switch msg.String() {
	case "j", "down", "tab":
		m.focus = (m.focus + 1) % len(m.panel.Controls())
	case "k", "up", "shift+tab":
		n := len(m.panel.Controls())
		m.focus = (m.focus + n - 1) % n
	case "l", "right", "+":
		m.nudge(c, 1)
	case "h", "left", "-":
		m.nudge(c, -1)
	case "L", "shift+right":
		m.nudge(c, 10)
	case "H", "shift+left":
		m.nudge(c, -10)
	case " ", "enter":
		if c.Kind == synthpanel.KindKnob {
			m.beginEdit()
			return nil
		}
		m.report(m.panel.Click(c.ID))
	case "e":
		if c.Kind == synthpanel.KindKnob {
			m.beginEdit()
		}
	case "r":
		if c.Kind == synthpanel.KindKnob {
			m.report(m.panel.DoubleClick(c.ID))
		}
	}
	return nil
}

func (m *model) nudge(c *synthpanel.Control, steps int) {
	switch c.Kind {
	case synthpanel.KindKnob:
		c.Knob.Nudge(steps)
	case synthpanel.KindToggle:
		c.Toggle.Set(steps > 0)
	case synthpanel.KindWave:
		for range max(steps, -steps) {
			if steps > 0 {
				c.Wave.Next()
			} else {
				c.Wave.Prev()
			}
		}
	}
}

func (m *model) beginEdit() {
	m.editing = true
	m.editBuf = nil
	m.setStatus("enter apply  esc cancel")
}

func (m *model) handleEditKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		if c := m.focused(); c != nil {
			m.report(m.panel.SetText(c.ID, string(m.editBuf)))
		}
	case tea.KeyEsc:
		m.editing = false
		m.setStatus("edit canceled")
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case tea.KeyRunes:
		m.editBuf = append(m.editBuf, msg.Runes...)
	}
}

func (m *model) report(err error) {
	if err != nil {
		m.setError(err)
		return
	}
	if c := m.focused(); c != nil {
		m.setStatus(c.Path() + " = " + c.Text())
	}
}

func (m *model) tick() int {
	return int(time.Since(m.start) * time.Duration(ticksPerSec) / time.Second)
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	var events []pointer.Event
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		events = m.tracker.Press(msg.X, msg.Y, m.tick())
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		if idx := m.rowControl(msg.Y); idx >= 0 {
			m.nudge(m.panel.Controls()[idx], 1)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		if idx := m.rowControl(msg.Y); idx >= 0 {
			m.nudge(m.panel.Controls()[idx], -1)
		}
	case msg.Action == tea.MouseActionMotion:
		events = m.tracker.Motion(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		events = m.tracker.Release(msg.X, msg.Y)
	}
	for _, ev := range events {
		m.pointer(ev)
	}
}

func (m *model) pointer(ev pointer.Event) {
	x, y := float64(ev.X*cellPxX), float64(ev.Y*cellPxY)
	switch ev.Kind {
	case pointer.Press:
		idx := m.rowControl(ev.Y)
		if idx < 0 {
			return
		}
		m.focus = idx
		m.editing = false
		c := m.panel.Controls()[idx]
		if c.Kind == synthpanel.KindKnob {
			m.report(m.panel.PointerDown(c.ID, x, y))
			return
		}
		m.report(m.panel.Click(c.ID))
	case pointer.Move:
		m.panel.PointerMove(x, y)
	case pointer.Release:
		m.panel.PointerUp()
	case pointer.DoubleClick:
		if idx := m.rowControl(ev.Y); idx >= 0 && m.panel.Controls()[idx].Kind == synthpanel.KindKnob {
			m.report(m.panel.DoubleClick(m.panel.Controls()[idx].ID))
		}
	}
}

// rows maps each rendered line to the index of the control drawn on it, or -1.
func (m *model) rows() []int {
	rows := []int{-1, -1} // title, blank
	idx := 0
	for _, g := range m.panel.Groups() {
		rows = append(rows, -1)
		for range g.Controls {
			rows = append(rows, idx)
			idx++
		}
	}
	return rows
}

func (m *model) rowControl(y int) int {
	rows := m.rows()
	if y < 0 || y >= len(rows) {
		return -1
	}
	return rows[y]
}

func (m *model) View() string {
	var b strings.Builder
	title := "built-in panel"
	if m.path != "" {
		title = m.path
	}
	b.WriteString(titleStyle.Render("synthpanel") + " " + dimStyle.Render(title) + "\n\n")

	idx := 0
	for _, g := range m.panel.Groups() {
		b.WriteString(groupStyle.Render(g.Label) + "\n")
		for _, c := range g.Controls {
			b.WriteString(m.renderControl(c, idx == m.focus))
			b.WriteString("\n")
			idx++
		}
	}

	b.WriteString("\n")
	for _, line := range m.history {
		b.WriteString(dimStyle.Render("  "+line) + "\n")
	}
	status := m.status
	if m.statusErr {
		status = errStyle.Render(status)
	}
	b.WriteString(statusStyle.Width(max(20, m.width)).Render(status) + "\n")
	b.WriteString(dimStyle.Render(helpText))
	return b.String()
}

func (m *model) renderControl(c *synthpanel.Control, focused bool) string {
	prefix := "  "
	label := labelStyle.Render(c.Label)
	if focused {
		prefix = focusStyle.Render("> ")
		label = focusStyle.Width(labelWidth).Render(c.Label)
	}
	var body string
	switch c.Kind {
	case synthpanel.KindKnob:
		body = renderGauge(c) + " "
		if focused && m.editing {
			body += editStyle.Render(string(m.editBuf) + "_")
		} else {
			body += valueStyle.Render(c.Text())
		}
	case synthpanel.KindToggle:
		light := offStyle.Render("( )")
		if c.Toggle.Pulsing() {
			light = offStyle.Render("(o)")
			if m.pulseOn() {
				light = onStyle.Render("(*)")
			}
		}
		body = light + " " + valueStyle.Render(c.Toggle.Value())
	case synthpanel.KindWave:
		var opts []string
		for i, name := range c.Wave.Options() {
			if i == c.Wave.Index() {
				opts = append(opts, valueStyle.Render("["+name+"]"))
			} else {
				opts = append(opts, dimStyle.Render(name))
			}
		}
		body = gaugeStyle.Render(sparkline(c.Wave.Selected())) + " " + strings.Join(opts, " ") + " " + dimStyle.Render(c.Wave.IconRef())
	}
	return prefix + label + " " + body
}

func (m *model) pulseOn() bool {
	elapsed := m.now.Sub(m.start)
	return elapsed%pulsePeriod < pulsePeriod/2
}

// renderGauge lays the knob's sweep out flat: each column covers an equal
// slice of [-maxRotation, maxRotation], lit where the gauge arc covers it,
// with a marker at the indicator.
func renderGauge(c *synthpanel.Control) string {
	k := c.Knob
	maxRot := k.Config().MaxRotation
	arc := k.Gauge()
	start := arc.Start
	if start > 180 {
		start -= 360
	}
	end := start + arc.Sweep
	span := 2 * maxRot / gaugeWidth
	mark := int((k.Rotation() + maxRot) / span)
	if mark >= gaugeWidth {
		mark = gaugeWidth - 1
	}

	var b strings.Builder
	for i := 0; i < gaugeWidth; i++ {
		deg := -maxRot + (float64(i)+0.5)*span
		switch {
		case i == mark:
			b.WriteString(markStyle.Render("┃"))
		case !arc.Empty() && deg >= start && deg <= end:
			b.WriteString(gaugeStyle.Render("━"))
		default:
			b.WriteString(trackStyle.Render("─"))
		}
	}
	return b.String()
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// sparkline draws one period of the named waveform as block characters.
func sparkline(name string) string {
	pts := lfo.Trace(name, 7, 1)
	out := make([]rune, 0, len(pts))
	for _, v := range pts[:len(pts)-1] {
		idx := int((v+1)/2*float64(len(sparkLevels)-1) + 0.5)
		out = append(out, sparkLevels[max(0, min(idx, len(sparkLevels)-1))])
	}
	return string(out)
}

