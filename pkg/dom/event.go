package dom

// Event is delivered to listeners registered on an element.
type Event struct {
	Type   string   // Event name, e.g. "click"
	Target *Element // Element the event was dispatched on
	Value  string   // Payload, e.g. an input's current value
}

// Listener handles a dispatched event.
type Listener func(*Event)
