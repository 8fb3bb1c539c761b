package cosmic

import "time"

// BlinkInterval is the half-period of the caret blink: the caret is visible
// for one interval, hidden for the next.
const BlinkInterval = 500 * time.Millisecond

// Focus is the focus timing state of a single text input. updatedAt is the
// blink phase origin: it resets on every accepted edit or caret move, so
// the caret is guaranteed visible right after the user acts.
type Focus struct {
	updatedAt time.Time
	now       time.Time
}

// NewFocus records focus acquisition at now.
func NewFocus(now time.Time) Focus {
	return Focus{updatedAt: now, now: now}
}

// UpdatedAt returns the last time the focus phase was reset.
func (f Focus) UpdatedAt() time.Time {
	return f.updatedAt
}

// Refresh restarts the blink phase at now.
func (f *Focus) Refresh(now time.Time) {
	f.updatedAt = now
	f.now = now
}

// Tick advances the focus clock without touching the blink phase.
func (f *Focus) Tick(now time.Time) {
	f.now = now
}

// CaretVisible reports whether the caret is in the visible half of its
// blink cycle.
func (f Focus) CaretVisible() bool {
	elapsed := f.now.Sub(f.updatedAt)
	if elapsed < 0 {
		return true
	}
	return (elapsed/BlinkInterval)%2 == 0
}

// NextRedraw returns the next blink boundary after now, phased from
// updatedAt rather than the wall clock so each field blinks in sync with
// its own last edit.
func (f Focus) NextRedraw(now time.Time) time.Time {
	elapsed := now.Sub(f.updatedAt)
	if elapsed < 0 {
		return f.updatedAt
	}
	periods := elapsed/BlinkInterval + 1
	return f.updatedAt.Add(periods * BlinkInterval)
}

// FocusArbiter enforces the at-most-one-focused-field invariant across all
// text inputs of a window. Whichever field gains focus (or edits while
// focused) claims the arbiter with its own timestamp; every other field
// notices the mismatch against its Focus.UpdatedAt on the next tick and
// unfocuses itself.
//
// The arbiter is owned by the surrounding window or form and shared by all
// its inputs. All access happens on the UI thread.
type FocusArbiter struct {
	lastUpdate time.Time
}

// NewFocusArbiter creates an arbiter with no focus claimed.
func NewFocusArbiter() *FocusArbiter {
	return &FocusArbiter{}
}

// Claim records a focus update at now and returns the timestamp the caller
// must keep in its own Focus state. Consecutive claims within the clock's
// resolution are disambiguated by nudging the timestamp forward.
func (a *FocusArbiter) Claim(now time.Time) time.Time {
	if !now.After(a.lastUpdate) {
		now = a.lastUpdate.Add(time.Nanosecond)
	}
	a.lastUpdate = now
	return now
}

// LastUpdate returns the timestamp of the most recent claim.
func (a *FocusArbiter) LastUpdate() time.Time {
	return a.lastUpdate
}

// Holds reports whether a field whose focus was last updated at updatedAt
// still owns the arbiter.
func (a *FocusArbiter) Holds(updatedAt time.Time) bool {
	return a.lastUpdate.Equal(updatedAt)
}
