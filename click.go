package cosmic

import "time"

// Multi-click detection thresholds. A press within both of these of the
// previous press at the same button advances the click kind.
const (
	MultiClickInterval = 300 * time.Millisecond
	MultiClickRadius   = 5.0
)

// ClickKind is the classification of a pointer press based on how quickly
// and how close to the previous press it happened.
type ClickKind uint8

const (
	ClickSingle ClickKind = iota
	ClickDouble
	ClickTriple
)

// String returns a human-readable name for the click kind.
func (k ClickKind) String() string {
	switch k {
	case ClickSingle:
		return "Single"
	case ClickDouble:
		return "Double"
	case ClickTriple:
		return "Triple"
	default:
		return "Unknown"
	}
}

// next returns the kind the following press escalates to. Triple wraps back
// to Single rather than escalating further.
func (k ClickKind) next() ClickKind {
	switch k {
	case ClickSingle:
		return ClickDouble
	case ClickDouble:
		return ClickTriple
	default:
		return ClickSingle
	}
}

// Click records one accepted pointer press. A widget keeps only the most
// recent Click and feeds it back into NewClick to classify the next press;
// history never accumulates.
type Click struct {
	kind     ClickKind
	button   MouseButton
	position Point
	time     time.Time
}

// NewClick classifies a press against the previous one. The kind escalates
// Single -> Double -> Triple -> Single when the press lands within
// MultiClickInterval and MultiClickRadius of the previous press at the same
// button; any mismatch resets to Single.
func NewClick(position Point, button MouseButton, previous *Click, now time.Time) Click {
	kind := ClickSingle
	if previous != nil &&
		previous.button == button &&
		now.Sub(previous.time) <= MultiClickInterval &&
		previous.position.Distance(position) <= MultiClickRadius {
		kind = previous.kind.next()
	}

	return Click{
		kind:     kind,
		button:   button,
		position: position,
		time:     now,
	}
}

// Kind returns the classification of this click.
func (c Click) Kind() ClickKind {
	return c.kind
}

// Position returns where the press happened.
func (c Click) Position() Point {
	return c.position
}

// Button returns the pressed mouse button.
func (c Click) Button() MouseButton {
	return c.button
}
