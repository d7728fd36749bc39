package render

import (
	"errors"
	"fmt"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/vdom"
)

// ErrNoSuchChild is returned when the live tree has no child at the
// position the reconciler expects one, meaning the live tree and the
// previous virtual tree have diverged.
var ErrNoSuchChild = errors.New("render: no live child at index")

// Patch reconciles the live child at index under parent against the
// virtual node it was rendered from (prev) and mutates it to match next.
//
// Policy, in order:
//  1. prev absent: append a fresh render of next (child list grew).
//  2. next absent: remove the live child at index (child list shrank).
//  3. kind or tag changed: replace the live child with a fresh render;
//     no attribute diff, no children reuse.
//  4. same tag: diff attributes in place, then recurse into children by
//     index. Text children compare by value and replace on change. A
//     child index out of range on either side is treated as absent and
//     funnels through the append/remove policy above; shrink removals
//     run highest-index-first so positions stay valid.
//
// Children are matched purely by index. There is no key-based move
// detection: a reorder is N independent value changes, not a move.
func Patch(parent *dom.Element, next, prev *vdom.VNode, index int) error {
	switch {
	case next == nil && prev == nil:
		return nil

	case prev == nil:
		parent.AppendChild(Render(parent.Document(), next))
		return nil

	case next == nil:
		live := parent.ChildAt(index)
		if live == nil {
			return fmt.Errorf("%w: %d under %s", ErrNoSuchChild, index, parent.Tag())
		}
		parent.RemoveChild(live)
		return nil
	}

	live := parent.ChildAt(index)
	if live == nil {
		return fmt.Errorf("%w: %d under %s", ErrNoSuchChild, index, parent.Tag())
	}

	// A kind change (text vs element) or tag change means the node's
	// identity changed; replace wholesale.
	if next.Kind != prev.Kind || next.Tag != prev.Tag {
		parent.ReplaceChild(Render(parent.Document(), next), live)
		return nil
	}

	if next.Kind == vdom.KindText {
		if next.Text != prev.Text {
			parent.ReplaceChild(Render(parent.Document(), next), live)
		}
		return nil
	}

	el, ok := live.(*dom.Element)
	if !ok {
		// Live tree diverged from what prev says was rendered here.
		return fmt.Errorf("%w: %d under %s is not an element", ErrNoSuchChild, index, parent.Tag())
	}

	UpdateProps(el, next.Props, prev.Props)

	return patchChildren(el, next.Children, prev.Children)
}

// patchChildren recurses into the children of a same-tag element pair.
// The common prefix patches in order, extra old children are removed
// highest-index-first, and extra new children append.
func patchChildren(el *dom.Element, next, prev []*vdom.VNode) error {
	minLen := len(next)
	if len(prev) < minLen {
		minLen = len(prev)
	}

	for i := 0; i < minLen; i++ {
		if err := Patch(el, next[i], prev[i], i); err != nil {
			return err
		}
	}

	// Shrink: remove from the end so earlier removals don't shift the
	// positions of later ones.
	for i := len(prev) - 1; i >= minLen; i-- {
		if err := Patch(el, nil, prev[i], i); err != nil {
			return err
		}
	}

	// Growth: appends are position-independent.
	for i := len(prev); i < len(next); i++ {
		if err := Patch(el, next[i], nil, i); err != nil {
			return err
		}
	}

	return nil
}

// UpdateProps applies the minimal attribute/listener diff to a live
// element. Keys whose value is unchanged are left untouched. Changed or
// added event props remove the old listener (when one was bound) before
// adding the new one; changed or added attributes are set to the new
// value's string form. Keys absent from next are removed.
func UpdateProps(el *dom.Element, next, prev vdom.Props) {
	for key, nv := range next {
		pv, had := prev[key]
		if had && propsEqual(pv, nv) {
			continue
		}
		if vdom.IsEventProp(key) {
			if l := asListener(nv); l != nil {
				event := vdom.EventName(key)
				if had && asListener(pv) != nil {
					el.RemoveEventListener(event)
				}
				el.AddEventListener(event, l)
				continue
			}
		}
		el.SetAttribute(key, propToString(nv))
	}

	for key, pv := range prev {
		if _, ok := next[key]; ok {
			continue
		}
		if vdom.IsEventProp(key) && asListener(pv) != nil {
			el.RemoveEventListener(vdom.EventName(key))
			continue
		}
		el.RemoveAttribute(key)
	}
}
