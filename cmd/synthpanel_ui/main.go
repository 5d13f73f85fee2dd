package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/cbegin/synthpanel-go"
	"github.com/cbegin/synthpanel-go/internal/lfo"
	"github.com/cbegin/synthpanel-go/internal/pointer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
)

const (
	windowW    = 1100
	windowH    = 720
	minWindowW = 720
	minWindowH = 480

	textScale = 2
	charW     = 7 * textScale
	lineH     = 14 * textScale

	cellW   = 124
	cellH   = 150
	knobR   = 30
	headerH = lineH + 10
)

var (
	bgColor        = color.RGBA{192, 192, 192, 255}
	panelColor     = color.RGBA{192, 192, 192, 255}
	borderColor    = color.RGBA{128, 128, 128, 255}
	highlightColor = color.RGBA{0, 0, 128, 255}

	bevelLight  = color.RGBA{255, 255, 255, 255}
	bevelDarker = color.RGBA{64, 64, 64, 255}

	sunkenBgColor = color.RGBA{24, 24, 32, 255}

	knobBodyColor  = color.RGBA{56, 58, 72, 255}
	knobTrackColor = color.RGBA{96, 96, 110, 255}
	gaugeColor     = color.RGBA{0, 160, 255, 255}
	indicatorColor = color.RGBA{255, 255, 255, 255}
	lightOffColor  = color.RGBA{60, 20, 20, 255}
	lightOnColor   = color.RGBA{255, 48, 48, 255}
	waveColor      = color.RGBA{0, 220, 120, 255}
)

type dialogResult struct {
	path string
	err  error
}

// cell is one control's screen area.
type cell struct {
	ctrl   *synthpanel.Control
	rect   image.Rectangle
	hit    image.Rectangle
	value  image.Rectangle
	cx, cy float64
}

type groupBox struct {
	name  string
	label string
	rect  image.Rectangle
}

type game struct {
	panel   *synthpanel.Panel
	events  <-chan synthpanel.Update
	tracker *pointer.Tracker

	editing *synthpanel.Control
	editBuf []rune

	lfo      lfo.LFO
	lfoValue float64
	lfoShown bool

	dialogCh   chan dialogResult
	dialogOpen bool

	status    string
	statusErr bool

	loadedPath string

	frameTick int
	textCache map[string]*ebiten.Image
	viewW     int
	viewH     int
}

func newGame(path string) (*game, error) {
	g := &game{
		tracker:   pointer.NewTracker(),
		dialogCh:  make(chan dialogResult, 1),
		status:    "Ready",
		textCache: make(map[string]*ebiten.Image, 1024),
		viewW:     windowW,
		viewH:     windowH,
	}
	if err := g.loadPanel(path); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *game) loadPanel(path string) error {
	p, err := synthpanel.Load(path)
	if err != nil {
		return err
	}
	g.panel = p
	g.events = p.Watch()
	g.loadedPath = path
	g.editing = nil
	if path == "" {
		g.setStatus("Loaded built-in panel")
	} else {
		g.setStatus("Loaded " + filepath.Base(path))
	}
	return nil
}

func (g *game) Update() error {
	g.frameTick++
	g.pollDialog()
	g.pollEvents()
	g.handleKeys()
	g.handleMouse()
	g.updateLFO()
	return nil
}

// updateLFO runs the preview oscillator from the lfo group's controls, when
// the panel has them.
func (g *game) updateLFO() {
	want := map[string]synthpanel.Kind{
		"enabled": synthpanel.KindToggle,
		"rate":    synthpanel.KindKnob,
		"depth":   synthpanel.KindKnob,
		"wave":    synthpanel.KindWave,
	}
	params := map[string]*synthpanel.Control{}
	for name, kind := range want {
		c, err := g.panel.Lookup("lfo/" + name)
		if err != nil || c.Kind != kind {
			g.lfoShown = false
			return
		}
		params[name] = c
	}
	g.lfoShown = true
	depth := params["depth"].Knob.Normalized()
	if !params["enabled"].Toggle.Checked() {
		depth = 0
	}
	prev := g.lfo.Wave()
	g.lfo.Set(depth, params["rate"].Value(), params["wave"].Text())
	if g.lfo.Wave() != prev || !g.lfo.Active() {
		// restart the cycle so a new shape or a re-enabled LFO starts at 0
		g.lfo.Reset()
	}
	g.lfoValue = g.lfo.Advance(1 / float64(ebiten.TPS()))
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	l := g.layoutRects()

	g.drawButton(screen, l.open, "Open")
	g.drawButton(screen, l.reload, "Default")
	title := "built-in panel"
	if g.loadedPath != "" {
		title = g.loadedPath
	}
	g.drawText(screen, shortenMiddle(title, (l.title.Dx()-16)/charW), l.title.Min.X+8, l.title.Min.Y+(l.title.Dy()-lineH)/2)

	for _, gb := range l.groups {
		g.drawPanel(screen, gb.rect)
		g.drawText(screen, gb.label, gb.rect.Min.X+8, gb.rect.Min.Y+6)
		if gb.name == "lfo" && g.lfoShown {
			g.drawLFOMeter(screen, gb.rect)
		}
	}
	for _, c := range l.cells {
		g.drawCell(screen, c)
	}

	g.drawSunkenPanel(screen, l.status)
	g.drawStatus(screen, l.status)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	if outsideW < minWindowW {
		outsideW = minWindowW
	}
	if outsideH < minWindowH {
		outsideH = minWindowH
	}
	g.viewW = outsideW
	g.viewH = outsideH
	return outsideW, outsideH
}

func (g *game) pollEvents() {
	for {
		select {
		case u, ok := <-g.events:
			if !ok {
				return
			}
			msg := fmt.Sprintf("%s = %s", u.Path(), u.Text)
			if u.Kind == synthpanel.KindWave {
				if c, err := g.panel.Control(u.ID); err == nil {
					msg += "  (" + c.Wave.IconRef() + ")"
				}
			}
			g.setStatus(msg)
		default:
			return
		}
	}
}

func (g *game) pollDialog() {
	select {
	case res := <-g.dialogCh:
		g.dialogOpen = false
		if res.err != nil {
			if errors.Is(res.err, zenity.ErrCanceled) {
				g.setStatus("Open canceled")
				return
			}
			g.setError(res.err.Error())
			return
		}
		if err := g.loadPanel(res.path); err != nil {
			g.setError(err.Error())
		}
	default:
	}
}

func (g *game) openDialog() {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Open Panel Description"),
			zenity.FileFilters{{
				Name:     "Panel descriptions",
				Patterns: []string{"*.toml", "*.yaml", "*.yml", "*.json"},
			}},
		)
		g.dialogCh <- dialogResult{path: path, err: err}
	}()
}

func (g *game) handleKeys() {
	if g.editing == nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyO) {
			g.openDialog()
		}
		return
	}
	g.editBuf = ebiten.AppendInputChars(g.editBuf)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.editBuf) > 0 {
		g.editBuf = g.editBuf[:len(g.editBuf)-1]
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		g.commitEdit()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.editing = nil
		g.setStatus("Edit canceled")
	}
}

func (g *game) beginEdit(c *synthpanel.Control) {
	g.editing = c
	g.editBuf = nil
	g.setStatus("Editing " + c.Path() + " (Enter to apply, Esc to cancel)")
}

func (g *game) commitEdit() {
	c := g.editing
	g.editing = nil
	if err := g.panel.SetText(c.ID, string(g.editBuf)); err != nil {
		g.setError(err.Error())
	}
}

func (g *game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	l := g.layoutRects()

	for _, ev := range g.tracker.Sample(mx, my, pressed, g.frameTick) {
		switch ev.Kind {
		case pointer.Press:
			g.press(ev.X, ev.Y, l)
		case pointer.Move:
			g.panel.PointerMove(float64(ev.X), float64(ev.Y))
		case pointer.Release:
			g.panel.PointerUp()
		case pointer.DoubleClick:
			if c := cellAt(l.cells, ev.X, ev.Y); c != nil && c.ctrl.Kind == synthpanel.KindKnob && pointInRect(ev.X, ev.Y, c.hit) {
				if err := g.panel.DoubleClick(c.ctrl.ID); err != nil {
					g.setError(err.Error())
				}
			}
		}
	}

	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	c := cellAt(l.cells, mx, my)
	if c == nil {
		return
	}
	dir := 1
	if wy < 0 {
		dir = -1
	}
	switch c.ctrl.Kind {
	case synthpanel.KindKnob:
		c.ctrl.Knob.Nudge(dir)
	case synthpanel.KindWave:
		if dir > 0 {
			c.ctrl.Wave.Next()
		} else {
			c.ctrl.Wave.Prev()
		}
	}
}

func (g *game) press(x, y int, l uiLayout) {
	if g.editing != nil {
		g.commitEdit()
	}
	switch {
	case pointInRect(x, y, l.open):
		g.openDialog()
		return
	case pointInRect(x, y, l.reload):
		if err := g.loadPanel(""); err != nil {
			g.setError(err.Error())
		}
		return
	}
	c := cellAt(l.cells, x, y)
	if c == nil {
		return
	}
	switch c.ctrl.Kind {
	case synthpanel.KindKnob:
		if pointInRect(x, y, c.value) {
			g.beginEdit(c.ctrl)
			return
		}
		if pointInRect(x, y, c.hit) {
			if err := g.panel.PointerDown(c.ctrl.ID, float64(x), float64(y)); err != nil {
				g.setError(err.Error())
			}
		}
	case synthpanel.KindToggle, synthpanel.KindWave:
		if pointInRect(x, y, c.hit) {
			if err := g.panel.Click(c.ctrl.ID); err != nil {
				g.setError(err.Error())
			}
		}
	}
}

type uiLayout struct {
	open, reload, title image.Rectangle
	status              image.Rectangle
	groups              []groupBox
	cells               []cell
}

func (g *game) layoutRects() uiLayout {
	w := max(g.viewW, minWindowW)
	h := max(g.viewH, minWindowH)

	pad := 20
	rowH := 44
	statusH := 40

	l := uiLayout{
		open:   image.Rect(pad, pad, pad+110, pad+rowH),
		reload: image.Rect(pad+122, pad, pad+262, pad+rowH),
		title:  image.Rect(pad+274, pad, w-pad, pad+rowH),
		status: image.Rect(pad, h-pad-statusH, w-pad, h-pad),
	}

	x, y := pad, pad+rowH+12
	for _, grp := range g.panel.Groups() {
		gw := 16 + len(grp.Controls)*cellW
		if x > pad && x+gw > w-pad {
			x = pad
			y += headerH + cellH + 12
		}
		box := image.Rect(x, y, x+gw, y+headerH+cellH)
		l.groups = append(l.groups, groupBox{name: grp.Name, label: grp.Label, rect: box})
		for i, c := range grp.Controls {
			cx := x + 8 + i*cellW
			cy := y + headerH
			l.cells = append(l.cells, layoutCell(c, image.Rect(cx, cy, cx+cellW, cy+cellH)))
		}
		x += gw + 12
	}
	return l
}

func layoutCell(c *synthpanel.Control, r image.Rectangle) cell {
	out := cell{ctrl: c, rect: r}
	midX := r.Min.X + r.Dx()/2
	out.cx = float64(midX)
	out.cy = float64(r.Min.Y + lineH + 8 + knobR)
	top := r.Min.Y + lineH + 8
	switch c.Kind {
	case synthpanel.KindKnob:
		out.hit = image.Rect(midX-knobR-6, top-6, midX+knobR+6, top+2*knobR+6)
		vy := top + 2*knobR + 10
		out.value = image.Rect(r.Min.X+6, vy, r.Max.X-6, vy+lineH+4)
	default:
		out.hit = image.Rect(r.Min.X+6, top, r.Max.X-6, top+2*knobR+lineH+14)
	}
	return out
}

func cellAt(cells []cell, x, y int) *cell {
	for i := range cells {
		if pointInRect(x, y, cells[i].rect) {
			return &cells[i]
		}
	}
	return nil
}

func (g *game) drawCell(screen *ebiten.Image, c cell) {
	label := shortenEnd(c.ctrl.Label, c.rect.Dx()/charW)
	g.drawText(screen, label, c.rect.Min.X+(c.rect.Dx()-len([]rune(label))*charW)/2, c.rect.Min.Y+4)
	switch c.ctrl.Kind {
	case synthpanel.KindKnob:
		g.drawKnob(screen, c)
	case synthpanel.KindToggle:
		g.drawToggle(screen, c)
	case synthpanel.KindWave:
		g.drawWave(screen, c)
	}
}

func (g *game) drawKnob(screen *ebiten.Image, c cell) {
	k := c.ctrl.Knob
	maxRot := k.Config().MaxRotation
	cx, cy := float32(c.cx), float32(c.cy)

	strokeArc(screen, c.cx, c.cy, knobR+6, -maxRot, 2*maxRot, 3, knobTrackColor)
	if arc := k.Gauge(); !arc.Empty() {
		strokeArc(screen, c.cx, c.cy, knobR+6, arc.Start, arc.Sweep, 4, gaugeColor)
	}
	vector.DrawFilledCircle(screen, cx, cy, knobR, knobBodyColor, true)
	vector.StrokeCircle(screen, cx, cy, knobR, 2, bevelDarker, true)

	ix, iy := polar(c.cx, c.cy, knobR-6, k.Rotation())
	vector.StrokeLine(screen, cx, cy, float32(ix), float32(iy), 3, indicatorColor, true)

	editing := g.editing == c.ctrl
	g.drawSunkenPanel(screen, c.value)
	text := c.ctrl.Text()
	if editing {
		text = string(g.editBuf)
		if g.frameTick/30%2 == 0 {
			text += "_"
		}
		drawSunkenBorder(screen, c.value.Inset(-2))
	}
	text = shortenEnd(text, (c.value.Dx()-8)/charW)
	g.drawText(screen, text, c.value.Min.X+(c.value.Dx()-len([]rune(text))*charW)/2, c.value.Min.Y+2)
}

func (g *game) drawToggle(screen *ebiten.Image, c cell) {
	t := c.ctrl.Toggle
	g.drawPanel(screen, c.hit)
	lx := float32(c.hit.Min.X + c.hit.Dx()/2)
	ly := float32(c.hit.Min.Y + 24)
	light := lightOffColor
	if t.Pulsing() {
		pulse := 0.6 + 0.4*math.Sin(float64(g.frameTick)*2*math.Pi/60)
		light = color.RGBA{uint8(float64(lightOnColor.R) * pulse), uint8(float64(lightOnColor.G) * pulse), uint8(float64(lightOnColor.B) * pulse), 255}
		vector.DrawFilledCircle(screen, lx, ly, 14, color.RGBA{light.R, 0, 0, 60}, true)
	}
	vector.DrawFilledCircle(screen, lx, ly, 9, light, true)
	vector.StrokeCircle(screen, lx, ly, 9, 1, bevelDarker, true)
	val := t.Value()
	g.drawText(screen, val, c.hit.Min.X+(c.hit.Dx()-len(val)*charW)/2, c.hit.Max.Y-lineH-6)
}

func (g *game) drawWave(screen *ebiten.Image, c cell) {
	g.drawPanel(screen, c.hit)
	glyph := image.Rect(c.hit.Min.X+10, c.hit.Min.Y+8, c.hit.Max.X-10, c.hit.Min.Y+2*knobR)
	ebitenutil.DrawRect(screen, float64(glyph.Min.X), float64(glyph.Min.Y), float64(glyph.Dx()), float64(glyph.Dy()), sunkenBgColor)
	drawWaveGlyph(screen, c.ctrl.Wave.Selected(), glyph)
	name := shortenEnd(c.ctrl.Wave.Selected(), c.hit.Dx()/charW)
	g.drawText(screen, name, c.hit.Min.X+(c.hit.Dx()-len([]rune(name))*charW)/2, c.hit.Max.Y-lineH-6)
}

// drawWaveGlyph plots two periods of the named waveform inside rect.
func drawWaveGlyph(screen *ebiten.Image, name string, rect image.Rectangle) {
	const steps = 64
	amp := float64(rect.Dy())/2 - 4
	mid := float64(rect.Min.Y) + float64(rect.Dy())/2
	var px, py float64
	for i, v := range lfo.Trace(name, steps, 2) {
		x := float64(rect.Min.X+2) + float64(rect.Dx()-4)*float64(i)/steps
		y := mid - v*amp
		if i > 0 {
			vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 2, waveColor, true)
		}
		px, py = x, y
	}
}

// drawLFOMeter shows the preview oscillator's output as a dot on a
// horizontal track in the group header.
func (g *game) drawLFOMeter(screen *ebiten.Image, box image.Rectangle) {
	track := image.Rect(box.Max.X-130, box.Min.Y+10, box.Max.X-10, box.Min.Y+headerH-10)
	g.drawSunkenPanel(screen, track)
	mid := float64(track.Min.X) + float64(track.Dx())/2
	x := mid + g.lfoValue*float64(track.Dx()/2-6)
	y := float32(track.Min.Y + track.Dy()/2)
	ebitenutil.DrawRect(screen, mid, float64(track.Min.Y+2), 1, float64(track.Dy()-4), borderColor)
	clr := knobTrackColor
	if g.lfo.Active() {
		clr = waveColor
		// phase progress along the bottom edge
		w := g.lfo.Phase() * float64(track.Dx()-4)
		ebitenutil.DrawRect(screen, float64(track.Min.X+2), float64(track.Max.Y-3), w, 1, waveColor)
	}
	vector.DrawFilledCircle(screen, float32(x), y, 5, clr, true)
}

// strokeArc draws an arc of sweep degrees starting at start, both measured
// clockwise from twelve o'clock.
func strokeArc(screen *ebiten.Image, cx, cy, r, start, sweep float64, width float32, clr color.Color) {
	segments := max(2, int(sweep/4))
	px, py := polar(cx, cy, r, start)
	for i := 1; i <= segments; i++ {
		x, y := polar(cx, cy, r, start+sweep*float64(i)/float64(segments))
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), width, clr, true)
		px, py = x, y
	}
}

func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := (deg - 90) * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

func (g *game) drawStatus(screen *ebiten.Image, rect image.Rectangle) {
	msg := g.status
	if c, ok := g.panel.Dragging(); ok {
		msg = fmt.Sprintf("%s = %s", c.Path(), c.Text())
	}
	maxChars := (rect.Dx() - 16) / charW
	if g.statusErr {
		ebitenutil.DrawRect(screen, float64(rect.Min.X+2), float64(rect.Min.Y+2), float64(rect.Dx()-4), float64(rect.Dy()-4), highlightColor)
	}
	g.drawText(screen, shortenEnd(msg, maxChars), rect.Min.X+8, rect.Min.Y+6)
}

func (g *game) setError(msg string) {
	g.status = msg
	g.statusErr = true
}

func (g *game) setStatus(msg string) {
	g.status = msg
	g.statusErr = false
}

func (g *game) drawPanel(screen *ebiten.Image, rect image.Rectangle) {
	ebitenutil.DrawRect(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), panelColor)
	drawBorder(screen, rect)
}

func (g *game) drawSunkenPanel(screen *ebiten.Image, rect image.Rectangle) {
	ebitenutil.DrawRect(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), sunkenBgColor)
	drawSunkenBorder(screen, rect)
}

func (g *game) drawButton(screen *ebiten.Image, rect image.Rectangle, label string) {
	g.drawPanel(screen, rect)
	labelW := len([]rune(label)) * charW
	x := rect.Min.X + (rect.Dx()-labelW)/2
	y := rect.Min.Y + (rect.Dy()-lineH)/2
	g.drawText(screen, label, x, y)
}

// drawBorder draws a raised bevel: highlight top/left, shadow bottom/right.
func drawBorder(screen *ebiten.Image, rect image.Rectangle) {
	x := float64(rect.Min.X)
	y := float64(rect.Min.Y)
	w := float64(rect.Dx())
	h := float64(rect.Dy())
	ebitenutil.DrawRect(screen, x, y, w-1, 1, bevelLight)
	ebitenutil.DrawRect(screen, x, y+1, 1, h-2, bevelLight)
	ebitenutil.DrawRect(screen, x, y+h-1, w, 1, bevelDarker)
	ebitenutil.DrawRect(screen, x+w-1, y, 1, h, bevelDarker)
	ebitenutil.DrawRect(screen, x+1, y+h-2, w-3, 1, borderColor)
	ebitenutil.DrawRect(screen, x+w-2, y+1, 1, h-3, borderColor)
}

// drawSunkenBorder is drawBorder with the light source flipped.
func drawSunkenBorder(screen *ebiten.Image, rect image.Rectangle) {
	x := float64(rect.Min.X)
	y := float64(rect.Min.Y)
	w := float64(rect.Dx())
	h := float64(rect.Dy())
	ebitenutil.DrawRect(screen, x, y, w-1, 1, borderColor)
	ebitenutil.DrawRect(screen, x, y+1, 1, h-2, borderColor)
	ebitenutil.DrawRect(screen, x, y+h-1, w, 1, bevelLight)
	ebitenutil.DrawRect(screen, x+w-1, y, 1, h, bevelLight)
	ebitenutil.DrawRect(screen, x+1, y+1, w-3, 1, bevelDarker)
	ebitenutil.DrawRect(screen, x+1, y+2, 1, h-4, bevelDarker)
}

func (g *game) drawText(screen *ebiten.Image, msg string, x int, y int) {
	if msg == "" {
		return
	}
	img := g.textCache[msg]
	if img == nil {
		w := max(1, len([]rune(msg))*7)
		img = ebiten.NewImage(w, 14)
		ebitenutil.DebugPrintAt(img, msg, 0, 0)
		if len(g.textCache) > 3000 {
			g.textCache = make(map[string]*ebiten.Image, 1024)
		}
		g.textCache[msg] = img
	}
	opS := &ebiten.DrawImageOptions{}
	opS.GeoM.Scale(textScale, textScale)
	opS.GeoM.Translate(float64(x+2), float64(y+2))
	opS.ColorScale.Scale(0, 0, 0, 1)
	screen.DrawImage(img, opS)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func shortenEnd(s string, maxChars int) string {
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	if maxChars <= 3 {
		return string(r[:max(0, maxChars)])
	}
	return string(r[:maxChars-3]) + "..."
}

func shortenMiddle(s string, maxChars int) string {
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	if maxChars <= 7 {
		return shortenEnd(s, maxChars)
	}
	left := (maxChars - 3) / 2
	right := maxChars - 3 - left
	return string(r[:left]) + "..." + string(r[len(r)-right:])
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func main() {
	var initialPath string
	if len(os.Args) > 1 {
		p, err := filepath.Abs(os.Args[1])
		if err != nil {
			log.Fatalf("resolve %q: %v", os.Args[1], err)
		}
		initialPath = p
	}

	g, err := newGame(initialPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(minWindowW, minWindowH, -1, -1)
	ebiten.SetWindowTitle("synthpanel")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
