package cosmic

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// DragThreshold is the pointer travel, in pixels, required before a press
// over a selection turns into a drag.
const DragThreshold = 8.0

// SupportedTextMimeTypes are the plain-text mime types accepted for text
// drops, in preference order.
var SupportedTextMimeTypes = []string{
	"text/plain;charset=utf-8",
	"text/plain",
	"UTF8_STRING",
	"STRING",
	"TEXT",
}

// DndAction is the set of drag-and-drop actions offered or negotiated with
// the platform.
type DndAction uint8

const (
	ActionNone DndAction = 0
	ActionCopy DndAction = 1 << iota
	ActionMove
)

// String returns a human-readable name for the action set.
func (a DndAction) String() string {
	switch a {
	case ActionCopy:
		return "Copy"
	case ActionMove:
		return "Move"
	case ActionCopy | ActionMove:
		return "Copy|Move"
	default:
		return "None"
	}
}

// DragDropService is the platform drag-and-drop interface the widget talks
// to. Requests return immediately; outcomes arrive later as the DnD events
// declared below, re-entering the widget's Update.
type DragDropService interface {
	// StartDrag announces a new drag with the given payload, offered mime
	// types and preferred action.
	StartDrag(payload string, mimeTypes []string, preferred DndAction)

	// Accept tells the platform which mime type of the current offer the
	// widget will take.
	Accept(mimeType string)

	// SetActions negotiates the preferred and accepted action sets for the
	// current offer.
	SetActions(preferred, accepted DndAction)

	// RequestData asks for the offer's payload in the given mime type. The
	// bytes arrive later as an OfferData event.
	RequestData(mimeType string)

	// Finish tells the platform the drop completed.
	Finish()
}

// Source-side drag events, delivered by the platform after StartDrag.
type (
	// DragActionAccepted reports the action the destination settled on.
	DragActionAccepted struct{ Action DndAction }
	// DragFinished reports that the drag completed.
	DragFinished struct{}
	// DragCancelled reports that the drag was cancelled.
	DragCancelled struct{}
)

// Destination-side offer events, delivered while a drag hovers the widget.
type (
	// OfferEnter reports an offer entering the widget's bounds.
	OfferEnter struct {
		Position  Point
		MimeTypes []string
	}
	// OfferMotion reports the offer's pointer moving.
	OfferMotion struct{ Position Point }
	// OfferDrop reports the offer being dropped.
	OfferDrop struct{}
	// OfferData delivers the payload requested after a drop.
	OfferData struct {
		MimeType string
		Data     []byte
	}
	// OfferLeave reports the offer leaving without a drop.
	OfferLeave struct{}
)

func (DragActionAccepted) isEvent() {}
func (DragFinished) isEvent()       {}
func (DragCancelled) isEvent()      {}
func (OfferEnter) isEvent()         {}
func (OfferMotion) isEvent()        {}
func (OfferDrop) isEvent()          {}
func (OfferData) isEvent()          {}
func (OfferLeave) isEvent()         {}

// DragState is the source-side state of a text drag.
type DragState uint8

const (
	// DragNone means no drag is in progress.
	DragNone DragState = iota
	// DragPreparing means the pointer went down over a selection and may
	// become a drag once it travels past DragThreshold.
	DragPreparing
	// DragActive means the selection has been exported and the platform is
	// running the drag.
	DragActive
)

// String returns a human-readable name for the drag state.
func (s DragState) String() string {
	switch s {
	case DragPreparing:
		return "Preparing"
	case DragActive:
		return "Active"
	default:
		return "None"
	}
}

// DragController is the source side of the text drag state machine. Each
// platform callback maps to exactly one transition; terminal callbacks are
// idempotent so duplicate or out-of-order finish/cancel land in DragNone
// without effect.
type DragController struct {
	state  DragState
	origin Point
	action DndAction
}

// State returns the current drag state.
func (d *DragController) State() DragState {
	return d.state
}

// Prepare arms the controller after a press over an existing selection.
func (d *DragController) Prepare(origin Point) {
	d.state = DragPreparing
	d.origin = origin
	d.action = ActionNone
}

// ShouldStart reports whether pointer motion to p crosses the drag
// threshold while armed.
func (d *DragController) ShouldStart(p Point) bool {
	return d.state == DragPreparing && d.origin.Distance(p) > DragThreshold
}

// Start marks the drag active after the selection has been exported.
func (d *DragController) Start() {
	d.state = DragActive
	d.action = ActionMove
	logger().Debug("drag started")
}

// AcceptAction records the action the destination negotiated. Ignored
// unless a drag is active.
func (d *DragController) AcceptAction(action DndAction) {
	if d.state != DragActive {
		return
	}
	d.action = action
	logger().Debug("drag action accepted", zap.Stringer("action", action))
}

// Action returns the currently negotiated action.
func (d *DragController) Action() DndAction {
	return d.action
}

// Finish resets to idle after the platform reports the drag finished or
// cancelled. Safe to call in any state.
func (d *DragController) Finish() {
	if d.state != DragNone {
		logger().Debug("drag finished", zap.Stringer("from", d.state))
	}
	d.state = DragNone
	d.action = ActionNone
}

// Disarm cancels a prepared drag that never crossed the threshold.
func (d *DragController) Disarm() {
	if d.state == DragPreparing {
		d.state = DragNone
	}
}

// OfferState is the destination-side state of an incoming drag offer.
type OfferState uint8

const (
	// OfferNone means no offer is being handled.
	OfferNone OfferState = iota
	// OfferInside means an accepted offer is hovering inside the widget.
	OfferInside
	// OfferOutside means the offer's pointer left the widget but the offer
	// is retained; caret tracking is suspended.
	OfferOutside
	// OfferDropped means the drop happened and the payload is in flight.
	OfferDropped
)

// String returns a human-readable name for the offer state.
func (s OfferState) String() string {
	switch s {
	case OfferInside:
		return "Inside"
	case OfferOutside:
		return "Outside"
	case OfferDropped:
		return "Dropped"
	default:
		return "None"
	}
}

// OfferController is the destination side of the drag-and-drop state
// machine. It accepts plain-text offers, tracks whether the pointer is
// inside the widget, and validates the dropped payload.
type OfferController struct {
	state    OfferState
	mimeType string
	action   DndAction
}

// State returns the current offer state.
func (o *OfferController) State() OfferState {
	return o.state
}

// MimeType returns the accepted mime type of the current offer.
func (o *OfferController) MimeType() string {
	return o.mimeType
}

// Enter handles an offer entering the widget. It picks the best supported
// plain-text mime type and returns it with ok=true, or leaves the
// controller idle when none of the advertised types is usable.
func (o *OfferController) Enter(mimeTypes []string) (string, bool) {
	mime, ok := pickTextMime(mimeTypes)
	if !ok {
		return "", false
	}

	o.state = OfferInside
	o.mimeType = mime
	o.action = ActionCopy | ActionMove
	logger().Debug("offer accepted", zap.String("mime", mime))
	return mime, true
}

// Action returns the action set requested for the current offer.
func (o *OfferController) Action() DndAction {
	return o.action
}

// SetInside records whether the offer's pointer is inside the widget.
// Only meaningful between Enter and Drop.
func (o *OfferController) SetInside(inside bool) {
	switch {
	case inside && o.state == OfferOutside:
		o.state = OfferInside
	case !inside && o.state == OfferInside:
		o.state = OfferOutside
	}
}

// TracksCaret reports whether offer motion should keep moving the caret.
func (o *OfferController) TracksCaret() bool {
	return o.state == OfferInside
}

// Drop handles the drop callback, returning the mime type to request the
// payload in. Ignored unless an offer is being handled inside the widget.
func (o *OfferController) Drop() (string, bool) {
	if o.state != OfferInside {
		return "", false
	}
	o.state = OfferDropped
	return o.mimeType, true
}

// Data validates a delivered payload. Empty or non-UTF-8 payloads are
// discarded. Either way the controller returns to idle; data arriving in
// any state but Dropped is ignored outright.
func (o *OfferController) Data(mimeType string, data []byte) (string, bool) {
	if o.state != OfferDropped || mimeType != o.mimeType {
		return "", false
	}

	o.reset()
	if len(data) == 0 || !utf8.Valid(data) {
		logger().Debug("drop payload discarded", zap.Int("bytes", len(data)))
		return "", false
	}
	return string(data), true
}

// Leave abandons the offer. A leave arriving after the drop is ignored so
// the in-flight payload still lands.
func (o *OfferController) Leave() {
	if o.state == OfferDropped {
		return
	}
	o.reset()
}

func (o *OfferController) reset() {
	o.state = OfferNone
	o.mimeType = ""
	o.action = ActionNone
}

// pickTextMime returns the first supported plain-text mime type advertised
// by an offer.
func pickTextMime(advertised []string) (string, bool) {
	for _, want := range SupportedTextMimeTypes {
		for _, have := range advertised {
			if have == want {
				return want, true
			}
		}
	}
	return "", false
}
