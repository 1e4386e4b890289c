package core

import "testing"

func TestInputFrameSelectLane(t *testing.T) {
	f := NewInputFrame()
	f.SelectLane(2)
	f.SelectLane(3)

	if !f.Has(ActionSelectLane) {
		t.Error("expected ActionSelectLane to be set")
	}
	if f.Lane != 3 {
		t.Errorf("Lane = %d, want 3 (last selection wins)", f.Lane)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.SelectLane(1)
	f.Clear()

	if f.Has(ActionConfirm) || f.Has(ActionSelectLane) {
		t.Error("Clear should remove all actions")
	}
	if f.Lane != 0 {
		t.Errorf("Clear should reset Lane, got %d", f.Lane)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionSelectLane, "SelectLane"},
		{ActionConfirm, "Confirm"},
		{ActionBack, "Back"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
