package wave

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var ErrUnknownOption = errors.New("unknown waveform")

// UnknownOptionError names the rejected waveform and, when one is close
// enough, the option the caller probably meant.
type UnknownOptionError struct {
	Name       string
	Suggestion string
}

func (e *UnknownOptionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown waveform %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown waveform %q", e.Name)
}

func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// Icon describes where waveform icons live: <Base>/<name>.<Ext>#<Fragment>.
type Icon struct {
	Base     string
	Ext      string
	Fragment string
}

// DefaultIcon is the icon location used when a panel names none.
func DefaultIcon() Icon {
	return Icon{Base: "waves", Ext: "svg", Fragment: "svg"}
}

// Ref returns the icon reference for waveform name.
func (i Icon) Ref(name string) string {
	ref := name
	if i.Base != "" {
		ref = strings.TrimRight(i.Base, "/") + "/" + ref
	}
	if i.Ext != "" {
		ref += "." + i.Ext
	}
	if i.Fragment != "" {
		ref += "#" + i.Fragment
	}
	return ref
}

// Selector is a waveform picker with an icon that tracks the selection.
type Selector struct {
	options   []string
	icon      Icon
	selected  int
	ref       string
	listeners []func(index int, name string)
}

// New builds a selector over options with initial selected. An empty initial
// selects the first option.
func New(options []string, initial string, icon Icon) (*Selector, error) {
	if len(options) == 0 {
		return nil, errors.New("waveform selector needs at least one option")
	}
	s := &Selector{options: append([]string(nil), options...), icon: icon}
	if initial == "" {
		initial = options[0]
	}
	idx, err := s.indexOf(initial)
	if err != nil {
		return nil, err
	}
	s.selected = idx
	s.ref = icon.Ref(s.options[idx])
	return s, nil
}

// OnChange registers fn to receive every selection change.
func (s *Selector) OnChange(fn func(index int, name string)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Select switches to the option called name (case-insensitive) and swaps the
// icon reference.
func (s *Selector) Select(name string) error {
	idx, err := s.indexOf(name)
	if err != nil {
		return err
	}
	s.set(idx)
	return nil
}

// Next selects the following option, wrapping at the end.
func (s *Selector) Next() { s.set((s.selected + 1) % len(s.options)) }

// Prev selects the preceding option, wrapping at the start.
func (s *Selector) Prev() { s.set((s.selected + len(s.options) - 1) % len(s.options)) }

func (s *Selector) set(idx int) {
	if idx == s.selected {
		return
	}
	s.selected = idx
	s.ref = s.icon.Ref(s.options[idx])
	for _, fn := range s.listeners {
		fn(idx, s.options[idx])
	}
}

func (s *Selector) Index() int       { return s.selected }
func (s *Selector) Selected() string { return s.options[s.selected] }
func (s *Selector) IconRef() string  { return s.ref }

func (s *Selector) Options() []string {
	return append([]string(nil), s.options...)
}

func (s *Selector) indexOf(name string) (int, error) {
	want := strings.TrimSpace(name)
	for i, opt := range s.options {
		if strings.EqualFold(opt, want) {
			return i, nil
		}
	}
	return -1, &UnknownOptionError{Name: name, Suggestion: Closest(s.options, want)}
}

// Closest returns the option nearest to name by edit distance, or "" when
// nothing is within half the name's length.
func Closest(options []string, name string) string {
	name = strings.ToLower(name)
	best := ""
	bestDist := len(name)/2 + 1
	for _, opt := range options {
		d := levenshtein.ComputeDistance(name, strings.ToLower(opt))
		if d < bestDist {
			best, bestDist = opt, d
		}
	}
	return best
}
