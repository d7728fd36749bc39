package dom

// Document owns a live tree of nodes and assigns node identity.
type Document struct {
	nextID    uint64
	body      *Element
	nodes     map[uint64]Node
	observers []func(Mutation)
}

// NewDocument creates a document with an empty body element as the root.
func NewDocument() *Document {
	d := &Document{nodes: make(map[uint64]Node)}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the root element.
func (d *Document) Body() *Element { return d.body }

// CreateElement creates a detached element node with the given tag.
func (d *Document) CreateElement(tag string) *Element {
	e := &Element{
		id:        d.allocID(),
		doc:       d,
		tag:       tag,
		attrs:     make(map[string]string),
		listeners: make(map[string]Listener),
	}
	d.nodes[e.id] = e
	d.record(Mutation{Op: OpCreateElement, Node: e.id, Tag: tag})
	return e
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) *Text {
	t := &Text{
		id:   d.allocID(),
		doc:  d,
		data: data,
	}
	d.nodes[t.id] = t
	d.record(Mutation{Op: OpCreateText, Node: t.id, Value: data})
	return t
}

// GetElementByID returns the first element (in depth-first document
// order) whose id attribute equals id, or nil if none exists.
func (d *Document) GetElementByID(id string) *Element {
	return findByID(d.body, id)
}

func findByID(e *Element, id string) *Element {
	if v, ok := e.attrs["id"]; ok && v == id {
		return e
	}
	for _, child := range e.children {
		if ce, ok := child.(*Element); ok {
			if found := findByID(ce, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// NodeByID returns the node with the given identifier, or nil.
// Detached nodes remain resolvable for the lifetime of the document so
// that in-flight remote events can still find their target.
func (d *Document) NodeByID(id uint64) Node {
	return d.nodes[id]
}

// Observe registers fn to receive one Mutation per host-tree change.
// Observers run synchronously in registration order.
func (d *Document) Observe(fn func(Mutation)) {
	d.observers = append(d.observers, fn)
}

func (d *Document) record(m Mutation) {
	for _, fn := range d.observers {
		fn(m)
	}
}

func (d *Document) allocID() uint64 {
	d.nextID++
	return d.nextID
}
