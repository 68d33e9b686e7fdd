package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame(120)
	f.Set(ActionFire)
	f.Set(ActionSizeLarge)

	if !f.Has(ActionFire) || !f.Has(ActionSizeLarge) {
		t.Fatal("set actions should be held")
	}
	if f.Has(ActionSizeSmall) {
		t.Error("unset action should not be held")
	}

	f.Unset(ActionFire)
	if f.Has(ActionFire) {
		t.Error("Unset should release the action")
	}

	f.Clear()
	if f.Has(ActionSizeLarge) {
		t.Error("Clear should release all actions")
	}
	if f.PointerX != 120 {
		t.Errorf("Clear should keep the pointer, got %v", f.PointerX)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should hold nothing")
	}
	f.Set(ActionQuit)
	if !f.WantsExit() {
		t.Error("quit should request exit")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame(10)
	f.Set(ActionEscape)

	c := f.Clone()
	c.Unset(ActionEscape)

	if !f.Has(ActionEscape) {
		t.Error("clone must not share the action map")
	}
	if c.PointerX != 10 {
		t.Errorf("clone pointer = %v", c.PointerX)
	}
}

func TestOutcomeTerminal(t *testing.T) {
	tests := []struct {
		o        Outcome
		terminal bool
	}{
		{OutcomeRunning, false},
		{OutcomeOutOfLives, true},
		{OutcomeDefeated, true},
		{OutcomeQuit, true},
	}
	for _, tc := range tests {
		if tc.o.Terminal() != tc.terminal {
			t.Errorf("%s.Terminal() = %v", tc.o, !tc.terminal)
		}
	}
}
