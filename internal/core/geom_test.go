package core

import "testing"

func TestBoxOverlapsY(t *testing.T) {
	player := NewBox(80, 100, 60, 60)

	if !player.OverlapsY(NewBox(0, 150, 30, 30)) {
		t.Error("spans 100-160 and 150-180 should overlap")
	}
	if player.OverlapsY(NewBox(0, 160, 30, 30)) {
		t.Error("spans 100-160 and 160-190 only touch")
	}
	if player.OverlapsY(NewBox(0, 40, 30, 30)) {
		t.Error("spans 100-160 and 40-70 should not overlap")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
