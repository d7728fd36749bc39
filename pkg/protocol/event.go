package protocol

// Event is a user event reported by a remote client: the node it
// targeted, the event name and an optional payload (e.g. an input's
// current value).
type Event struct {
	Node  uint64
	Type  string
	Value string
}

// EncodeEvent encodes an event frame payload.
func EncodeEvent(ev Event) []byte {
	e := NewEncoder()
	e.WriteUvarint(ev.Node)
	e.WriteString(ev.Type)
	e.WriteString(ev.Value)
	return e.Bytes()
}

// DecodeEvent decodes an event frame payload.
func DecodeEvent(payload []byte) (Event, error) {
	var ev Event
	d := NewDecoder(payload)

	var err error
	if ev.Node, err = d.ReadUvarint(); err != nil {
		return ev, err
	}
	if ev.Type, err = d.ReadString(); err != nil {
		return ev, err
	}
	if ev.Value, err = d.ReadString(); err != nil {
		return ev, err
	}
	return ev, nil
}
