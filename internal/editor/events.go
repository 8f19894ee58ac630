package editor

// Event is something the editor announces to the rest of the application.
type Event interface {
	editorEvent()
}

// ToggleEvent is sent when the editor is switched on or off from the menu bar.
type ToggleEvent struct {
	NowActive bool
}

// FocusSelectedEvent asks the camera to frame the current selection. The
// editor itself never sends it.
type FocusSelectedEvent struct{}

func (ToggleEvent) editorEvent()        {}
func (FocusSelectedEvent) editorEvent() {}

// Events is a queue of editor events with optional listeners that are called
// as events are sent.
type Events struct {
	queue     []Event
	listeners []func(Event)
}

func (e *Events) AddListener(callback func(Event)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *Events) Send(ev Event) {
	e.queue = append(e.queue, ev)
	for _, listener := range e.listeners {
		listener(ev)
	}
}

// Drain returns the queued events and empties the queue.
func (e *Events) Drain() []Event {
	out := e.queue
	e.queue = nil
	return out
}

func (e *Events) Len() int {
	return len(e.queue)
}
