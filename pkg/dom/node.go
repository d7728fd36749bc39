package dom

import "sort"

// Node is a live host node: either an *Element or a *Text.
type Node interface {
	// ID returns the document-unique node identifier.
	ID() uint64

	// Parent returns the parent element, or nil for a detached node.
	Parent() *Element

	setParent(p *Element)
}

// Text is a live text node.
type Text struct {
	id     uint64
	doc    *Document
	parent *Element
	data   string
}

// ID returns the document-unique node identifier.
func (t *Text) ID() uint64 { return t.id }

// Parent returns the parent element, or nil for a detached node.
func (t *Text) Parent() *Element { return t.parent }

func (t *Text) setParent(p *Element) { t.parent = p }

// Data returns the text content.
func (t *Text) Data() string { return t.data }

// SetData updates the text content.
func (t *Text) SetData(data string) {
	if t.data == data {
		return
	}
	t.data = data
	t.doc.record(Mutation{Op: OpSetText, Node: t.id, Value: data})
}

// Element is a live element node with attributes, listeners and ordered
// children.
type Element struct {
	id        uint64
	doc       *Document
	parent    *Element
	tag       string
	attrs     map[string]string
	listeners map[string]Listener
	children  []Node
}

// ID returns the document-unique node identifier.
func (e *Element) ID() uint64 { return e.id }

// Parent returns the parent element, or nil for a detached node.
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// Attributes

// Attribute returns the value of the named attribute and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// AttributeNames returns the set attribute names in sorted order.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetAttribute sets the named attribute. Setting an attribute to its
// current value records no mutation.
func (e *Element) SetAttribute(name, value string) {
	if old, ok := e.attrs[name]; ok && old == value {
		return
	}
	e.attrs[name] = value
	e.doc.record(Mutation{Op: OpSetAttr, Node: e.id, Key: name, Value: value})
}

// RemoveAttribute removes the named attribute. Removing an absent
// attribute is a no-op.
func (e *Element) RemoveAttribute(name string) {
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	e.doc.record(Mutation{Op: OpRemoveAttr, Node: e.id, Key: name})
}

// Listeners

// AddEventListener installs the listener for the named event, replacing
// any existing listener for that event.
func (e *Element) AddEventListener(event string, l Listener) {
	if l == nil {
		return
	}
	e.listeners[event] = l
	e.doc.record(Mutation{Op: OpAddListener, Node: e.id, Key: event})
}

// RemoveEventListener removes the listener for the named event.
// Removing an absent listener is a no-op.
func (e *Element) RemoveEventListener(event string) {
	if _, ok := e.listeners[event]; !ok {
		return
	}
	delete(e.listeners, event)
	e.doc.record(Mutation{Op: OpRemoveListener, Node: e.id, Key: event})
}

// HasListener returns true if a listener is installed for the named event.
func (e *Element) HasListener(event string) bool {
	_, ok := e.listeners[event]
	return ok
}

// DispatchEvent invokes the listener registered for ev.Type, if any.
// Only the target element is consulted; there is no capture or bubble
// phase. Returns true if a listener ran.
func (e *Element) DispatchEvent(ev *Event) bool {
	l, ok := e.listeners[ev.Type]
	if !ok {
		return false
	}
	if ev.Target == nil {
		ev.Target = e
	}
	l(ev)
	return true
}

// Children

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return len(e.children) }

// ChildAt returns the child at index, or nil if out of range.
func (e *Element) ChildAt(index int) Node {
	if index < 0 || index >= len(e.children) {
		return nil
	}
	return e.children[index]
}

// IndexOf returns the index of the child, or -1 if it is not a child.
func (e *Element) IndexOf(n Node) int {
	for i, child := range e.children {
		if child == n {
			return i
		}
	}
	return -1
}

// AppendChild adds the node as the last child, detaching it from any
// previous parent first.
func (e *Element) AppendChild(n Node) {
	e.InsertAt(n, len(e.children))
}

// InsertAt inserts the node at index, detaching it from any previous
// parent first. Indexes beyond the end append.
func (e *Element) InsertAt(n Node, index int) {
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
	if index < 0 {
		index = 0
	}
	if index > len(e.children) {
		index = len(e.children)
	}
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = n
	n.setParent(e)
	e.doc.record(Mutation{Op: OpInsert, Node: n.ID(), Parent: e.id, Index: index})
}

// InsertBefore inserts the node before the reference child. A nil
// reference appends.
func (e *Element) InsertBefore(n, ref Node) {
	if ref == nil {
		e.AppendChild(n)
		return
	}
	idx := e.IndexOf(ref)
	if idx < 0 {
		e.AppendChild(n)
		return
	}
	e.InsertAt(n, idx)
}

// RemoveChild detaches the node from this element. Removing a node that
// is not a child is a no-op.
func (e *Element) RemoveChild(n Node) {
	idx := e.IndexOf(n)
	if idx < 0 {
		return
	}
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	n.setParent(nil)
	e.doc.record(Mutation{Op: OpRemove, Node: n.ID(), Parent: e.id, Index: idx})
}

// ReplaceChild swaps old for new in place, keeping the position.
// A no-op if old is not a child.
func (e *Element) ReplaceChild(newNode, oldNode Node) {
	idx := e.IndexOf(oldNode)
	if idx < 0 {
		return
	}
	if p := newNode.Parent(); p != nil {
		p.RemoveChild(newNode)
	}
	e.children[idx] = newNode
	oldNode.setParent(nil)
	newNode.setParent(e)
	e.doc.record(Mutation{
		Op:     OpReplace,
		Node:   newNode.ID(),
		Parent: e.id,
		Other:  oldNode.ID(),
		Index:  idx,
	})
}
