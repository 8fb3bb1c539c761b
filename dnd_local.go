package cosmic

// EventSink receives platform events on behalf of a widget. Hosts usually
// wrap TextInput.Update with the current frame time.
type EventSink func(Event)

// LocalDragDrop is an in-process DragDropService for drags between widgets
// of the same application, and for exercising both sides of the protocol in
// tests. The host drives the pointer with EnterTarget, Motion, Drop and
// Cancel; the broker turns those into the callback events the widgets
// expect, in protocol order (enter, motion, drop, data, finished).
type LocalDragDrop struct {
	source EventSink
	target EventSink

	payload   string
	mimeTypes []string
	preferred DndAction

	accepted  string
	negotiate DndAction
	dragging  bool
}

// NewLocalDragDrop creates an idle broker.
func NewLocalDragDrop() *LocalDragDrop {
	return &LocalDragDrop{}
}

// BindSource sets the sink receiving source-side callbacks. Call before the
// bound widget can start a drag.
func (l *LocalDragDrop) BindSource(sink EventSink) {
	l.source = sink
}

// BindTarget sets the sink receiving destination-side callbacks.
func (l *LocalDragDrop) BindTarget(sink EventSink) {
	l.target = sink
}

// StartDrag implements DragDropService for the source widget.
func (l *LocalDragDrop) StartDrag(payload string, mimeTypes []string, preferred DndAction) {
	l.payload = payload
	l.mimeTypes = mimeTypes
	l.preferred = preferred
	l.dragging = true
}

// Accept implements DragDropService for the target widget.
func (l *LocalDragDrop) Accept(mimeType string) {
	l.accepted = mimeType
}

// SetActions implements DragDropService for the target widget. The
// preferred action is echoed back to the source as the negotiated one.
func (l *LocalDragDrop) SetActions(preferred, accepted DndAction) {
	l.negotiate = preferred
	if l.dragging && l.source != nil {
		l.source(DragActionAccepted{Action: preferred})
	}
}

// RequestData implements DragDropService for the target widget, delivering
// the payload bytes immediately.
func (l *LocalDragDrop) RequestData(mimeType string) {
	if !l.dragging || l.target == nil {
		return
	}
	l.target(OfferData{MimeType: mimeType, Data: []byte(l.payload)})
}

// Finish implements DragDropService, completing the drag on the source side.
func (l *LocalDragDrop) Finish() {
	if l.dragging && l.source != nil {
		l.source(DragFinished{})
	}
	l.reset()
}

// EnterTarget moves the drag over the target widget at p.
func (l *LocalDragDrop) EnterTarget(p Point) {
	if !l.dragging || l.target == nil {
		return
	}
	l.target(OfferEnter{Position: p, MimeTypes: l.mimeTypes})
}

// Motion moves the hovering offer to p.
func (l *LocalDragDrop) Motion(p Point) {
	if !l.dragging || l.target == nil {
		return
	}
	l.target(OfferMotion{Position: p})
}

// Drop releases the drag over the target.
func (l *LocalDragDrop) Drop() {
	if !l.dragging || l.target == nil {
		return
	}
	l.target(OfferDrop{})
}

// Cancel aborts the drag, notifying both sides.
func (l *LocalDragDrop) Cancel() {
	if !l.dragging {
		return
	}
	if l.target != nil {
		l.target(OfferLeave{})
	}
	if l.source != nil {
		l.source(DragCancelled{})
	}
	l.reset()
}

// Dragging reports whether a drag is in flight.
func (l *LocalDragDrop) Dragging() bool {
	return l.dragging
}

func (l *LocalDragDrop) reset() {
	l.payload = ""
	l.mimeTypes = nil
	l.preferred = ActionNone
	l.accepted = ""
	l.negotiate = ActionNone
	l.dragging = false
}
