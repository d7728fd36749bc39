package render

import (
	"errors"
	"testing"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/vdom"
)

// mountTree renders prev under a fresh parent and returns the parent
// plus a mutation counter that starts counting after the initial render.
func mountTree(t *testing.T, prev *vdom.VNode) (*dom.Element, *int) {
	t.Helper()
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	doc.Body().AppendChild(parent)
	parent.AppendChild(Render(doc, prev))

	count := 0
	doc.Observe(func(dom.Mutation) { count++ })
	return parent, &count
}

func TestPatchIdenticalTreeIsZeroMutations(t *testing.T) {
	handler := func(*dom.Event) {}
	build := func() *vdom.VNode {
		return vdom.Div(vdom.Class("card"), vdom.ID("x"),
			vdom.H1("title"),
			vdom.Ul(vdom.Li("a"), vdom.Li("b")),
			vdom.Button(vdom.OnClick(handler), "go"),
		)
	}
	prev := build()
	parent, count := mountTree(t, prev)

	if err := Patch(parent, build(), prev, 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if *count != 0 {
		t.Errorf("Expected 0 host mutations, got %d", *count)
	}
}

func TestPatchTextChange(t *testing.T) {
	prev := vdom.P("old")
	parent, _ := mountTree(t, prev)

	next := vdom.P("new")
	if err := Patch(parent, next, prev, 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	p := parent.ChildAt(0).(*dom.Element)
	txt := p.ChildAt(0).(*dom.Text)
	if txt.Data() != "new" {
		t.Errorf("text = %q, want new", txt.Data())
	}
}

func TestPatchTagChangeReplaces(t *testing.T) {
	// Same attributes and children; only the tag differs. The node must
	// be replaced wholesale.
	prev := vdom.El("span", vdom.Class("x"), "same")
	parent, _ := mountTree(t, prev)
	oldLive := parent.ChildAt(0)

	next := vdom.El("div", vdom.Class("x"), "same")
	if err := Patch(parent, next, prev, 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	newLive := parent.ChildAt(0).(*dom.Element)
	if newLive == oldLive {
		t.Error("live node should have been replaced")
	}
	if newLive.Tag() != "div" {
		t.Errorf("Tag = %q, want div", newLive.Tag())
	}
	if parent.ChildCount() != 1 {
		t.Errorf("ChildCount = %d, want 1", parent.ChildCount())
	}
}

func TestPatchKindChangeReplaces(t *testing.T) {
	prev := vdom.Div(vdom.Span("x"))
	parent, _ := mountTree(t, prev)

	next := vdom.Div(vdom.Text("x"))
	if err := Patch(parent, next, prev, 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	div := parent.ChildAt(0).(*dom.Element)
	if _, ok := div.ChildAt(0).(*dom.Text); !ok {
		t.Errorf("child = %T, want *dom.Text", div.ChildAt(0))
	}
}

func TestPatchListGrowth(t *testing.T) {
	prev := vdom.Ul(vdom.Li("x"), vdom.Li("y"))
	parent, count := mountTree(t, prev)

	next := vdom.Ul(vdom.Li("x"), vdom.Li("y"), vdom.Li("z"))
	if err := Patch(parent, next, prev, 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	ul := parent.ChildAt(0).(*dom.Element)
	if ul.ChildCount() != 3 {
		t.Fatalf("ChildCount = %d, want 3", ul.ChildCount())
	}
	li := ul.ChildAt(2).(*dom.Element)
	if li.ChildAt(0).(*dom.Text).Data() != "z" {
		t.Errorf("appended child text = %q, want z", li.ChildAt(0).(*dom.Text).Data())
	}
	// Create li, create text, insert text into li, insert li into ul.
	if *count != 4 {
		t.Errorf("Expected 4 host mutations, got %d", *count)
	}
}

func TestPatchListShrink(t *testing.T) {
	prev := vdom.Ul(vdom.Li("x"), vdom.Li("y"), vdom.Li("z"))
	parent, count := mountTree(t, prev)

	next := vdom.Ul(vdom.Li("x"), vdom.Li("y"))
	if err := Patch(parent, next, prev, 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	ul := parent.ChildAt(0).(*dom.Element)
	if ul.ChildCount() != 2 {
		t.Fatalf("ChildCount = %d, want 2", ul.ChildCount())
	}
	if *count != 1 {
		t.Errorf("Expected exactly 1 removal, got %d mutations", *count)
	}
}

func TestPatchListShrinkMultiple(t *testing.T) {
	prev := vdom.Ul(vdom.Li("a"), vdom.Li("b"), vdom.Li("c"), vdom.Li("d"))
	parent, _ := mountTree(t, prev)

	next := vdom.Ul(vdom.Li("a"))
	if err := Patch(parent, next, prev, 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	ul := parent.ChildAt(0).(*dom.Element)
	if ul.ChildCount() != 1 {
		t.Fatalf("ChildCount = %d, want 1", ul.ChildCount())
	}
	li := ul.ChildAt(0).(*dom.Element)
	if li.ChildAt(0).(*dom.Text).Data() != "a" {
		t.Errorf("remaining child = %q, want a", li.ChildAt(0).(*dom.Text).Data())
	}
}

func TestPatchReorderIsValueChanges(t *testing.T) {
	// No move detection: swapping two children rewrites both positions.
	prev := vdom.Ul(vdom.Li("a"), vdom.Li("b"))
	parent, count := mountTree(t, prev)

	next := vdom.Ul(vdom.Li("b"), vdom.Li("a"))
	if err := Patch(parent, next, prev, 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	ul := parent.ChildAt(0).(*dom.Element)
	got0 := ul.ChildAt(0).(*dom.Element).ChildAt(0).(*dom.Text).Data()
	got1 := ul.ChildAt(1).(*dom.Element).ChildAt(0).(*dom.Text).Data()
	if got0 != "b" || got1 != "a" {
		t.Errorf("children = %q,%q, want b,a", got0, got1)
	}
	if *count == 0 {
		t.Error("a swap must cost mutations; it is not detected as a move")
	}
}

func TestPatchDeepRecursion(t *testing.T) {
	prev := vdom.Div(vdom.Section(vdom.P("old")))
	parent, _ := mountTree(t, prev)

	next := vdom.Div(vdom.Section(vdom.P("new")))
	if err := Patch(parent, next, prev, 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	p := parent.ChildAt(0).(*dom.Element).
		ChildAt(0).(*dom.Element).
		ChildAt(0).(*dom.Element)
	if p.ChildAt(0).(*dom.Text).Data() != "new" {
		t.Errorf("deep text = %q, want new", p.ChildAt(0).(*dom.Text).Data())
	}
}

func TestPatchTextBesideGrowth(t *testing.T) {
	// Mixed text/element children where the list also grows: the
	// out-of-range side funnels through the append policy.
	prev := vdom.Div(vdom.Text("a"))
	parent, _ := mountTree(t, prev)

	next := vdom.Div(vdom.Text("a"), vdom.Span("b"))
	if err := Patch(parent, next, prev, 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	div := parent.ChildAt(0).(*dom.Element)
	if div.ChildCount() != 2 {
		t.Fatalf("ChildCount = %d, want 2", div.ChildCount())
	}
}

func TestPatchMissingLiveChild(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")

	// prev claims a node was rendered at index 0, but the live tree is
	// empty: structural error.
	err := Patch(parent, vdom.P(), vdom.P(), 0)
	if !errors.Is(err, ErrNoSuchChild) {
		t.Fatalf("err = %v, want ErrNoSuchChild", err)
	}
}

func TestPatchBothAbsent(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")

	if err := Patch(parent, nil, nil, 0); err != nil {
		t.Fatalf("Patch(nil, nil): %v", err)
	}
}

func TestUpdatePropsMinimalDiff(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("a", "1")
	el.SetAttribute("b", "2")

	var muts []dom.Mutation
	doc.Observe(func(m dom.Mutation) { muts = append(muts, m) })

	UpdateProps(el,
		vdom.Props{"b": 2, "c": 3},
		vdom.Props{"a": 1, "b": 2},
	)

	if len(muts) != 2 {
		t.Fatalf("Expected 2 host mutations, got %d: %v", len(muts), muts)
	}
	seen := map[dom.Op]string{}
	for _, m := range muts {
		seen[m.Op] = m.Key
	}
	if seen[dom.OpRemoveAttr] != "a" {
		t.Errorf("RemoveAttr key = %q, want a", seen[dom.OpRemoveAttr])
	}
	if seen[dom.OpSetAttr] != "c" {
		t.Errorf("SetAttr key = %q, want c", seen[dom.OpSetAttr])
	}
	if v, _ := el.Attribute("c"); v != "3" {
		t.Errorf("c = %q, want 3", v)
	}
	if v, _ := el.Attribute("b"); v != "2" {
		t.Errorf("b = %q, want 2 (untouched)", v)
	}
}

func TestUpdatePropsListenerRebind(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("button")

	oldCalls, newCalls := 0, 0
	oldHandler := func() { oldCalls++ }
	el.AddEventListener("click", func(*dom.Event) { oldCalls++ })

	UpdateProps(el,
		vdom.Props{"onclick": func() { newCalls++ }},
		vdom.Props{"onclick": oldHandler},
	)

	el.DispatchEvent(&dom.Event{Type: "click"})
	if oldCalls != 0 || newCalls != 1 {
		t.Errorf("oldCalls = %d newCalls = %d, want 0 and 1", oldCalls, newCalls)
	}
}

func TestUpdatePropsStableListenerUntouched(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("button")

	handler := func(*dom.Event) {}
	el.AddEventListener("click", handler)

	count := 0
	doc.Observe(func(dom.Mutation) { count++ })

	UpdateProps(el,
		vdom.Props{"onclick": handler},
		vdom.Props{"onclick": handler},
	)

	if count != 0 {
		t.Errorf("Expected 0 host mutations for an unchanged handler, got %d", count)
	}
}

func TestUpdatePropsListenerRemoved(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("button")
	el.AddEventListener("click", func(*dom.Event) {})

	UpdateProps(el, vdom.Props{}, vdom.Props{"onclick": func() {}})

	if el.HasListener("click") {
		t.Error("listener should have been removed")
	}
}
