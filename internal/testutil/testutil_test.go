package testutil

import (
	"testing"

	"github.com/banshee-data/lidar-sim/internal/geometry"
)

func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)
}

func TestRectRoom(t *testing.T) {
	room := RectRoom(-2, -1, 4, 3)
	if room.Len() != 4 {
		t.Fatalf("Len = %d, want 4", room.Len())
	}
	segs := room.Segments()
	for i, s := range segs {
		next := segs[(i+1)%len(segs)]
		if s.B != next.A {
			t.Errorf("segment %d does not join segment %d: %v vs %v", i, (i+1)%len(segs), s, next)
		}
	}
	if !room.Contains(geometry.Pt(1, 1)) {
		t.Error("room centre should be inside")
	}
}

func TestSquareRoom(t *testing.T) {
	room := SquareRoom(10)
	if !room.Contains(geometry.Pt(5, 5)) || room.Contains(geometry.Pt(15, 5)) {
		t.Error("unexpected containment for square room")
	}
}
