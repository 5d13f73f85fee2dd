package toggle

import "testing"

func TestToggleClickFlips(t *testing.T) {
	tg := New(false)
	var got []bool
	tg.OnChange(func(on bool) { got = append(got, on) })

	tg.Click()
	if !tg.Checked() || tg.Value() != ValueOn || !tg.Pulsing() {
		t.Fatalf("after click: checked=%v value=%q pulsing=%v", tg.Checked(), tg.Value(), tg.Pulsing())
	}
	tg.Click()
	if tg.Checked() || tg.Value() != ValueOff || tg.Pulsing() {
		t.Fatalf("after double click: checked=%v value=%q pulsing=%v", tg.Checked(), tg.Value(), tg.Pulsing())
	}
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Fatalf("notifications = %v, want [true false]", got)
	}
}

func TestToggleSetSameStateIsSilent(t *testing.T) {
	tg := New(true)
	events := 0
	tg.OnChange(func(bool) { events++ })
	tg.Set(true)
	if events != 0 {
		t.Fatalf("events = %d, want 0", events)
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		in     string
		want   bool
		wantOK bool
	}{
		{"on", true, true},
		{"off", false, true},
		{"true", true, true},
		{"0", false, true},
		{"maybe", false, false},
	}
	for _, tc := range cases {
		got, ok := ParseValue(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseValue(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
