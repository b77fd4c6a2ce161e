package glimpse

// Event is one of CloseRequested, KeyPressed, Resized or RedrawRequested.
type Event interface {
	isEvent()
}

// CloseRequested is emitted when the user asks the window to close.
type CloseRequested struct{}

// KeyPressed is emitted once per key press. Repeats and releases are not reported.
type KeyPressed struct {
	Key Key
}

// Resized carries the new framebuffer size in pixels. Either dimension
// may be zero while the window is minimized.
type Resized struct {
	Width  uint32
	Height uint32
}

// RedrawRequested is emitted after Window.RequestRedraw or when the
// platform asks for the window contents to be refreshed.
type RedrawRequested struct{}

func (CloseRequested) isEvent()  {}
func (KeyPressed) isEvent()      {}
func (Resized) isEvent()         {}
func (RedrawRequested) isEvent() {}

// eventQueue collects events pushed by platform callbacks until the
// next poll hands them out.
type eventQueue struct {
	pending []Event

	// true if a RedrawRequested should be appended on the next drain
	redraw bool
}

func (q *eventQueue) push(ev Event) {
	q.pending = append(q.pending, ev)
}

func (q *eventQueue) requestRedraw() {
	q.redraw = true
}

func (q *eventQueue) redrawPending() bool {
	return q.redraw
}

// drain returns all queued events. A pending redraw is delivered after
// the platform events of the same poll.
func (q *eventQueue) drain() []Event {
	if q.redraw {
		q.redraw = false
		q.pending = append(q.pending, RedrawRequested{})
	}

	events := q.pending
	q.pending = nil

	return events
}
