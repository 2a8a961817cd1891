package input

import "testing"

func TestTakeFreezesSampler(t *testing.T) {
	cases := []struct {
		name string
		in   Snapshot
	}{
		{"none", Snapshot{}},
		{"left", Snapshot{Left: true}},
		{"both_directions", Snapshot{Left: true, Right: true}},
		{"jump_right", Snapshot{Right: true, Jump: true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Take(c.in)
			if got != c.in {
				t.Fatalf("expected %+v, got %+v", c.in, got)
			}
			if got.IsPressed(MoveLeft) != c.in.Left || got.IsPressed(MoveRight) != c.in.Right || got.IsPressed(Jump) != c.in.Jump {
				t.Fatalf("IsPressed disagrees with snapshot %+v", got)
			}
		})
	}
}

func TestTakeNilSampler(t *testing.T) {
	if got := Take(nil); got != (Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", got)
	}
}

func TestUnknownControlIsReleased(t *testing.T) {
	s := Snapshot{Left: true, Right: true, Jump: true}
	if s.IsPressed(Control(99)) {
		t.Fatal("unknown control should never be pressed")
	}
	if Control(99).String() != "unknown" {
		t.Fatalf("unexpected name %q", Control(99).String())
	}
}
