package tui

import (
	"testing"

	"github.com/vovakirdan/season-quest/internal/core"
)

func TestHeldInputDirectionExpires(t *testing.T) {
	h := NewHeldInput(60) // window of 7 ticks
	h.Press(core.ActionUp)

	for i := 0; i < 6; i++ {
		if !h.Frame().Has(core.ActionUp) {
			t.Fatalf("tick %d: up released early", i)
		}
		h.Advance()
	}
	if !h.Frame().Has(core.ActionUp) {
		t.Fatal("up released before the window ended")
	}
	h.Advance()
	if h.Frame().Has(core.ActionUp) {
		t.Error("up still held after the window")
	}
}

func TestHeldInputRepeatExtendsHold(t *testing.T) {
	h := NewHeldInput(60)
	h.Press(core.ActionRight)
	for i := 0; i < 20; i++ {
		if i%5 == 0 {
			h.Press(core.ActionRight) // key auto-repeat
		}
		if !h.Frame().Has(core.ActionRight) {
			t.Fatalf("tick %d: right dropped while repeating", i)
		}
		h.Advance()
	}
}

func TestHeldInputNewDirectionReplaces(t *testing.T) {
	h := NewHeldInput(60)
	h.Press(core.ActionUp)
	h.Press(core.ActionLeft)

	f := h.Frame()
	if f.Has(core.ActionUp) {
		t.Error("up should be released by left")
	}
	if !f.Has(core.ActionLeft) {
		t.Error("left should be held")
	}
}

func TestHeldInputOneShot(t *testing.T) {
	h := NewHeldInput(60)
	h.Press(core.ActionConfirm)
	h.Press(core.ActionNone)

	if !h.Frame().Has(core.ActionConfirm) {
		t.Fatal("confirm missing from its tick")
	}
	if h.Frame().Has(core.ActionNone) {
		t.Error("none should never be set")
	}
	h.Advance()
	if !h.Frame().Empty() {
		t.Error("confirm should last one tick")
	}
}
