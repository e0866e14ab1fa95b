package gesture

import (
	"testing"

	"planet-showcase/internal/scroll"
)

func TestWheel(t *testing.T) {
	tests := []struct {
		delta float32
		dir   scroll.Direction
		ok    bool
	}{
		{delta: 120, dir: scroll.Forward, ok: true},
		{delta: 0.01, dir: scroll.Forward, ok: true},
		{delta: -3, dir: scroll.Backward, ok: true},
		{delta: 0, ok: false},
	}
	for _, tt := range tests {
		dir, ok := Wheel(tt.delta)
		if ok != tt.ok || dir != tt.dir {
			t.Errorf("Wheel(%v) = %v,%v want %v,%v", tt.delta, dir, ok, tt.dir, tt.ok)
		}
	}
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name       string
		axis       Axis
		start, end [2]float32
		dir        scroll.Direction
		ok         bool
	}{
		{name: "swipe up", axis: AxisY, start: [2]float32{100, 500}, end: [2]float32{100, 300}, dir: scroll.Forward, ok: true},
		{name: "swipe down", axis: AxisY, start: [2]float32{100, 300}, end: [2]float32{100, 500}, dir: scroll.Backward, ok: true},
		{name: "tap", axis: AxisY, start: [2]float32{100, 300}, end: [2]float32{100, 320}, ok: false},
		{name: "below threshold", axis: AxisY, start: [2]float32{0, 300}, end: [2]float32{0, 339}, ok: false},
		{name: "at threshold", axis: AxisY, start: [2]float32{0, 300}, end: [2]float32{0, 260}, dir: scroll.Forward, ok: true},
		{name: "horizontal on y axis", axis: AxisY, start: [2]float32{0, 300}, end: [2]float32{400, 300}, ok: false},
		{name: "swipe left", axis: AxisX, start: [2]float32{500, 0}, end: [2]float32{100, 0}, dir: scroll.Forward, ok: true},
		{name: "swipe right", axis: AxisX, start: [2]float32{100, 0}, end: [2]float32{500, 0}, dir: scroll.Backward, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Swipe{Axis: tt.axis, Threshold: DefaultSwipeThreshold}
			s.Begin(tt.start[0], tt.start[1])
			dir, ok := s.End(tt.end[0], tt.end[1])
			if ok != tt.ok || dir != tt.dir {
				t.Fatalf("got %v,%v want %v,%v", dir, ok, tt.dir, tt.ok)
			}
			if s.Active() {
				t.Fatal("End should finish the touch")
			}
		})
	}
}

func TestSwipeEndWithoutBegin(t *testing.T) {
	s := Swipe{Threshold: DefaultSwipeThreshold}
	if _, ok := s.End(0, 1000); ok {
		t.Fatal("End without Begin produced a gesture")
	}
	s.Begin(0, 0)
	s.Cancel()
	if _, ok := s.End(0, 1000); ok {
		t.Fatal("End after Cancel produced a gesture")
	}
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]Axis{"": AxisY, "y": AxisY, "X": AxisX} {
		got, err := ParseAxis(in)
		if err != nil || got != want {
			t.Errorf("ParseAxis(%q) = %v,%v want %v", in, got, err, want)
		}
	}
	if _, err := ParseAxis("z"); err == nil {
		t.Error("ParseAxis(z) should fail")
	}
}

func TestKeys(t *testing.T) {
	k := DefaultKeys()
	if d, ok := k.Direction(KeyPageDown); !ok || d != scroll.Forward {
		t.Errorf("PageDown = %v,%v want Forward", d, ok)
	}
	if d, ok := k.Direction(KeyUp); !ok || d != scroll.Backward {
		t.Errorf("Up = %v,%v want Backward", d, ok)
	}
	if _, ok := k.Direction(Key(9999)); ok {
		t.Error("unmapped key produced a gesture")
	}
}

func TestPointer(t *testing.T) {
	p := Pointer{Swipe: Swipe{Axis: AxisY, Threshold: 40}}
	frames := []struct {
		down bool
		y    float32
	}{
		{false, 0},
		{true, 500},
		{true, 450},
		{true, 380},
		{false, 0}, // release: position is ignored
	}
	var got []scroll.Direction
	for _, f := range frames {
		if dir, ok := p.Update(f.down, 0, f.y); ok {
			got = append(got, dir)
		}
	}
	if len(got) != 1 || got[0] != scroll.Forward {
		t.Fatalf("gestures = %v, want [Forward]", got)
	}

	// a short drag is a tap
	p.Update(true, 0, 100)
	p.Update(true, 0, 120)
	if _, ok := p.Update(false, 0, 0); ok {
		t.Error("tap produced a gesture")
	}

	// drag down goes backward
	p.Update(true, 0, 100)
	p.Update(true, 0, 300)
	if dir, ok := p.Update(false, 0, 0); !ok || dir != scroll.Backward {
		t.Errorf("drag down = %v, %v, want Backward", dir, ok)
	}
}

func TestPointerCancel(t *testing.T) {
	p := Pointer{Swipe: Swipe{Axis: AxisY, Threshold: 40}}
	p.Update(true, 0, 500)
	p.Update(true, 0, 300)
	p.Cancel()
	if _, ok := p.Update(false, 0, 0); ok {
		t.Fatal("release after Cancel produced a gesture")
	}

	// pressed again after a cancel: a fresh swipe from the new start
	p.Update(true, 0, 300)
	p.Cancel()
	p.Update(true, 0, 400)
	p.Update(true, 0, 380)
	if dir, ok := p.Update(false, 0, 0); ok {
		t.Fatalf("short drag after re-press = %v, want no gesture", dir)
	}
	p.Update(true, 0, 400)
	p.Update(true, 0, 300)
	if dir, ok := p.Update(false, 0, 0); !ok || dir != scroll.Forward {
		t.Errorf("drag up = %v, %v, want Forward", dir, ok)
	}
}
