package cosmic

import (
	"testing"
	"time"
)

func TestFocusBlinkPhase(t *testing.T) {
	base := time.Now()
	f := NewFocus(base)

	if !f.CaretVisible() {
		t.Error("Expected caret visible immediately after focus")
	}

	f.Tick(base.Add(499 * time.Millisecond))
	if !f.CaretVisible() {
		t.Error("Expected caret visible inside the first interval")
	}

	f.Tick(base.Add(501 * time.Millisecond))
	if f.CaretVisible() {
		t.Error("Expected caret hidden inside the second interval")
	}

	f.Tick(base.Add(1001 * time.Millisecond))
	if !f.CaretVisible() {
		t.Error("Expected caret visible again inside the third interval")
	}
}

func TestFocusRefreshRestartsPhase(t *testing.T) {
	base := time.Now()
	f := NewFocus(base)

	f.Tick(base.Add(700 * time.Millisecond))
	if f.CaretVisible() {
		t.Error("Expected caret hidden before refresh")
	}

	// A keystroke refreshes the phase: caret must be visible at once.
	f.Refresh(base.Add(700 * time.Millisecond))
	if !f.CaretVisible() {
		t.Error("Expected caret visible right after refresh")
	}
}

func TestFocusNextRedraw(t *testing.T) {
	base := time.Now()
	f := NewFocus(base)

	next := f.NextRedraw(base.Add(120 * time.Millisecond))
	if want := base.Add(BlinkInterval); !next.Equal(want) {
		t.Errorf("Expected next redraw at %v, got %v", want, next)
	}

	// The schedule is phased from the last update, not the wall clock.
	next = f.NextRedraw(base.Add(730 * time.Millisecond))
	if want := base.Add(2 * BlinkInterval); !next.Equal(want) {
		t.Errorf("Expected next redraw at %v, got %v", want, next)
	}
}

func TestFocusArbiterClaims(t *testing.T) {
	a := NewFocusArbiter()
	base := time.Now()

	first := a.Claim(base)
	if !a.Holds(first) {
		t.Error("Expected claimant to hold the arbiter")
	}

	second := a.Claim(base) // same instant must still produce a newer claim
	if !second.After(first) {
		t.Error("Expected second claim to be strictly newer")
	}
	if a.Holds(first) {
		t.Error("Expected first claim to be superseded")
	}
	if !a.Holds(second) {
		t.Error("Expected second claimant to hold the arbiter")
	}
}
