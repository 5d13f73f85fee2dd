package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cbegin/synthpanel-go"
)

type opKind string

const (
	opSet    opKind = "set"
	opDrag   opKind = "drag"
	opReset  opKind = "reset"
	opClick  opKind = "click"
	opSelect opKind = "select"
)

type op struct {
	kind opKind
	path string
	arg  string
}

// dragStepPx is the largest pointer move fed to a drag at once.
const dragStepPx = 5

func main() {
	var ops []op
	addOp := func(kind opKind, needsArg bool) func(string) error {
		return func(s string) error {
			o, err := parseOp(kind, s, needsArg)
			if err != nil {
				return err
			}
			ops = append(ops, o)
			return nil
		}
	}
	var (
		panelPath = flag.String("panel", "", "panel description file (toml, yaml or json); empty uses the built-in panel")
		list      = flag.Bool("list", false, "list controls and exit")
		dump      = flag.Bool("dump", false, "write the final panel state as TOML to stdout")
		quiet     = flag.Bool("quiet", false, "do not print parameter updates")
	)
	flag.Func("set", "write text into a control: group/name=value (repeatable)", addOp(opSet, true))
	flag.Func("drag", "drag a knob by a pointer offset: group/name=dx,dy (repeatable)", addOp(opDrag, true))
	flag.Func("select", "pick a waveform: group/name=option (repeatable)", addOp(opSelect, true))
	flag.Func("reset", "double-click a knob back to its default: group/name (repeatable)", addOp(opReset, false))
	flag.Func("click", "click a toggle or waveform picker: group/name (repeatable)", addOp(opClick, false))
	flag.Parse()

	ready := false
	pl, err := synthpanel.Load(*panelPath, synthpanel.WithUpdateListener(func(u synthpanel.Update) {
		if ready && !*quiet {
			fmt.Println(formatUpdate(u))
		}
	}))
	if err != nil {
		log.Fatal(err)
	}
	ready = true

	if *list {
		listControls(os.Stdout, pl)
		return
	}
	for _, o := range ops {
		if err := apply(pl, o); err != nil {
			log.Fatalf("-%s %s: %v", o.kind, o.path, err)
		}
	}
	if *dump {
		if err := dumpState(os.Stdout, pl); err != nil {
			log.Fatal(err)
		}
	}
}

func parseOp(kind opKind, s string, needsArg bool) (op, error) {
	path, arg, hasArg := strings.Cut(s, "=")
	path = strings.TrimSpace(path)
	if path == "" || !strings.Contains(path, "/") {
		return op{}, fmt.Errorf("invalid control %q (expected group/name)", s)
	}
	if needsArg && !hasArg {
		return op{}, fmt.Errorf("missing value in %q (expected group/name=value)", s)
	}
	if !needsArg && hasArg {
		return op{}, fmt.Errorf("unexpected value in %q (expected group/name)", s)
	}
	return op{kind: kind, path: path, arg: arg}, nil
}

func apply(pl *synthpanel.Panel, o op) error {
	c, err := pl.Lookup(o.path)
	if err != nil {
		return err
	}
	switch o.kind {
	case opSet:
		return pl.SetText(c.ID, o.arg)
	case opSelect:
		return pl.Select(c.ID, o.arg)
	case opReset:
		return pl.DoubleClick(c.ID)
	case opClick:
		return pl.Click(c.ID)
	case opDrag:
		dx, dy, err := parseOffset(o.arg)
		if err != nil {
			return err
		}
		return drag(pl, c.ID, dx, dy)
	}
	return fmt.Errorf("unknown operation %q", o.kind)
}

func parseOffset(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid offset %q (expected dx,dy)", s)
	}
	dx, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dx %q: %w", xs, err)
	}
	dy, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dy %q: %w", ys, err)
	}
	return dx, dy, nil
}

// drag replays a pointer drag from the origin to (dx, dy) in screen pixels,
// y growing downward, split into small moves the way a real pointer reports
// them.
func drag(pl *synthpanel.Panel, id string, dx, dy float64) error {
	if err := pl.PointerDown(id, 0, 0); err != nil {
		return err
	}
	defer pl.PointerUp()
	n := int(max(math.Abs(dx), math.Abs(dy))/dragStepPx) + 1
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pl.PointerMove(dx*t, dy*t)
	}
	return nil
}

func formatUpdate(u synthpanel.Update) string {
	switch u.Kind {
	case synthpanel.KindKnob:
		return fmt.Sprintf("%s = %s [%g, %g]", u.Path(), u.Text, u.Min, u.Max)
	default:
		return fmt.Sprintf("%s = %s", u.Path(), u.Text)
	}
}

func listControls(w io.Writer, pl *synthpanel.Panel) {
	st := pl.Description().Settings
	fmt.Fprintf(w, "sensitivity %g, rotation ±%g°, icons %s/*.%s#%s\n",
		st.Sensitivity, st.MaxRotation, st.IconBase, st.IconExt, st.IconFragment)
	for _, g := range pl.Groups() {
		fmt.Fprintf(w, "%s\n", g.Label)
		for _, c := range g.Controls {
			fmt.Fprintf(w, "  %-20s %-6s %-10s %s\n", c.Path(), c.Kind, c.Text(), c.ID)
		}
	}
}

type stateFile struct {
	Controls []synthpanel.State `toml:"controls"`
}

func dumpState(w io.Writer, pl *synthpanel.Panel) error {
	return toml.NewEncoder(w).Encode(stateFile{Controls: pl.Snapshot()})
}

