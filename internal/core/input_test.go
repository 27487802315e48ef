package core

import "testing"

func TestInputFrameIdempotent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionRight)

	if !f.Has(ActionRight) {
		t.Fatal("expected Right to be set")
	}
	if len(f.Actions) != 1 {
		t.Errorf("repeated Set should not add entries, got %d", len(f.Actions))
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		a    Action
		want bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionConfirm, false},
		{ActionMenu, false},
		{ActionNone, false},
	}
	for _, tt := range tests {
		if got := tt.a.IsDirection(); got != tt.want {
			t.Errorf("%v.IsDirection() = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	c := f.Clone()
	f.Clear()
	if !c.Has(ActionUp) {
		t.Error("clone should be independent of the original")
	}
}
