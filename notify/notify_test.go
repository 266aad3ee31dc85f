package notify

import (
	"testing"
	"time"
)

func TestRecorderNotifyAndDismiss(t *testing.T) {
	var rec Recorder

	h1 := rec.Notify("habits loaded", Options{Kind: KindSuccess})
	h2 := rec.Notify("copy failed", Options{Kind: KindError, Duration: -1})
	if h1 == h2 {
		t.Fatalf("handles must be distinct, got %d twice", h1)
	}

	if active := rec.Active(); len(active) != 2 {
		t.Fatalf("expected 2 active notifications, got %d", len(active))
	}

	rec.Dismiss(h1)
	active := rec.Active()
	if len(active) != 1 {
		t.Fatalf("expected 1 active notification after dismiss, got %d", len(active))
	}
	if active[0].Handle != h2 {
		t.Errorf("expected %d to remain active, got %d", h2, active[0].Handle)
	}

	// Dismissing a stale handle is a no-op
	rec.Dismiss(Handle(999))
	if len(rec.Active()) != 1 {
		t.Errorf("stale dismiss must not affect active notifications")
	}
}

func TestOptionsEffectiveDuration(t *testing.T) {
	if d := (Options{}).EffectiveDuration(); d != DefaultDuration {
		t.Errorf("expected default duration, got %v", d)
	}
	if d := (Options{Duration: time.Second}).EffectiveDuration(); d != time.Second {
		t.Errorf("expected 1s, got %v", d)
	}
	if d := (Options{Duration: -1}).EffectiveDuration(); d != -1 {
		t.Errorf("sticky duration must pass through, got %v", d)
	}
}

func TestKindString(t *testing.T) {
	if KindInfo.String() != "info" || KindSuccess.String() != "success" || KindError.String() != "error" {
		t.Errorf("unexpected kind names: %s %s %s", KindInfo, KindSuccess, KindError)
	}
}
