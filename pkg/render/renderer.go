package render

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/vdom"
)

// Render builds a fresh live subtree for the virtual node. Creation
// only, no diffing: every call produces new host nodes.
//
// Event-prefixed props with a callable value become listeners, with the
// "on" prefix stripped and the remainder lower-cased as the event name.
// Every other prop is set as an attribute using its string form.
func Render(doc *dom.Document, v *vdom.VNode) dom.Node {
	if v.Kind == vdom.KindText {
		return doc.CreateTextNode(v.Text)
	}

	el := doc.CreateElement(v.Tag)

	for key, val := range v.Props {
		if vdom.IsEventProp(key) {
			if l := asListener(val); l != nil {
				el.AddEventListener(vdom.EventName(key), l)
				continue
			}
		}
		el.SetAttribute(key, propToString(val))
	}

	for _, child := range v.Children {
		el.AppendChild(Render(doc, child))
	}

	return el
}

// asListener adapts a prop value to a host listener. Accepted handler
// signatures are func(*dom.Event) and func(); anything else is not
// callable for binding purposes and falls through to attribute handling.
func asListener(v any) dom.Listener {
	switch fn := v.(type) {
	case dom.Listener:
		return fn
	case func(*dom.Event):
		return fn
	case func():
		return func(*dom.Event) { fn() }
	default:
		return nil
	}
}

// propToString converts a prop value to its attribute string form.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// propsEqual compares two prop values. Handlers compare by code
// pointer: a stable func value is the same binding and must not be
// rebound. Two closures over the same body share a code pointer and
// therefore compare equal, so handlers should read state when invoked
// rather than capture it per render.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
		return false
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return false
	case int64:
		if bv, ok := b.(int64); ok {
			return av == bv
		}
		return false
	case float64:
		if bv, ok := b.(float64); ok {
			return av == bv
		}
		return false
	case bool:
		if bv, ok := b.(bool); ok {
			return av == bv
		}
		return false
	case nil:
		return b == nil
	}
	if av := reflect.ValueOf(a); av.Kind() == reflect.Func {
		bv := reflect.ValueOf(b)
		return bv.Kind() == reflect.Func && av.Pointer() == bv.Pointer()
	}
	// Fallback to reflect for the remaining complex types.
	return reflect.DeepEqual(a, b)
}
