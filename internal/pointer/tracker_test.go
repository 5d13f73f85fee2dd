package pointer

import (
	"reflect"
	"testing"
)

func kinds(events []Event) []Kind {
	out := make([]Kind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestTrackerSampleDrag(t *testing.T) {
	tr := NewTracker()
	var got []Kind
	frames := []struct {
		x, y    int
		pressed bool
	}{
		{10, 10, false},
		{10, 10, true},
		{10, 10, true},
		{12, 8, true},
		{15, 5, false},
		{20, 5, false},
	}
	for tick, f := range frames {
		got = append(got, kinds(tr.Sample(f.x, f.y, f.pressed, tick))...)
	}
	want := []Kind{Press, Move, Move, Release}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
}

func TestTrackerDoubleClick(t *testing.T) {
	cases := []struct {
		name    string
		secondX int
		gap     int
		want    bool
	}{
		{name: "fast and close", secondX: 11, gap: 10, want: true},
		{name: "too slow", secondX: 10, gap: DefaultDoubleClickTicks + 1, want: false},
		{name: "too far", secondX: 30, gap: 5, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker()
			tr.Press(10, 10, 100)
			tr.Release(10, 10)
			events := tr.Press(tc.secondX, 10, 100+tc.gap)
			got := len(events) == 2 && events[1].Kind == DoubleClick
			if got != tc.want {
				t.Fatalf("double click = %v, want %v (events %v)", got, tc.want, kinds(events))
			}
		})
	}
}

func TestTrackerTripleClickIsOneDoubleClick(t *testing.T) {
	tr := NewTracker()
	n := 0
	for i := 0; i < 3; i++ {
		for _, ev := range tr.Press(0, 0, i*2) {
			if ev.Kind == DoubleClick {
				n++
			}
		}
		tr.Release(0, 0)
	}
	if n != 1 {
		t.Fatalf("double clicks = %d, want 1", n)
	}
}

func TestTrackerIgnoresHoverMotion(t *testing.T) {
	tr := NewTracker()
	if events := tr.Motion(5, 5); events != nil {
		t.Fatalf("hover produced %v", kinds(events))
	}
	if events := tr.Release(5, 5); events != nil {
		t.Fatalf("release without press produced %v", kinds(events))
	}
}
