package vdom

// El creates a new element VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, Props, *VNode, []*VNode,
// string (shorthand for a text child), or []any nested to any depth.
// Nested child sequences are flattened in order and nil entries dropped.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		appendArg(node, arg)
	}

	return node
}

// appendArg folds one constructor argument into the node being built.
// Child sequences ([]any, []*VNode) recurse so flattening handles
// unbounded nesting.
func appendArg(node *VNode, arg any) {
	switch v := arg.(type) {
	case nil:
		// Ignore nil (allows conditional attributes and children)

	case Attr:
		if v.Key != "" {
			node.Props[v.Key] = v.Value
		}

	case []Attr:
		for _, a := range v {
			if a.Key != "" {
				node.Props[a.Key] = a.Value
			}
		}

	case Props:
		for key, val := range v {
			node.Props[key] = val
		}

	case *VNode:
		if v != nil {
			node.Children = append(node.Children, v)
		}

	case []*VNode:
		for _, child := range v {
			if child != nil {
				node.Children = append(node.Children, child)
			}
		}

	case string:
		node.Children = append(node.Children, Text(v))

	case []any:
		for _, item := range v {
			appendArg(node, item)
		}
	}
}

// Document structure

func Html(args ...any) *VNode { return El("html", args...) }
func Head(args ...any) *VNode { return El("head", args...) }
func Body(args ...any) *VNode { return El("body", args...) }

// Content sectioning

func Div(args ...any) *VNode     { return El("div", args...) }
func Span(args ...any) *VNode    { return El("span", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
func Header(args ...any) *VNode  { return El("header", args...) }
func Footer(args ...any) *VNode  { return El("footer", args...) }
func Main(args ...any) *VNode    { return El("main", args...) }
func Nav(args ...any) *VNode     { return El("nav", args...) }

// Text content

func H1(args ...any) *VNode  { return El("h1", args...) }
func H2(args ...any) *VNode  { return El("h2", args...) }
func H3(args ...any) *VNode  { return El("h3", args...) }
func P(args ...any) *VNode   { return El("p", args...) }
func Ul(args ...any) *VNode  { return El("ul", args...) }
func Ol(args ...any) *VNode  { return El("ol", args...) }
func Li(args ...any) *VNode  { return El("li", args...) }
func Pre(args ...any) *VNode { return El("pre", args...) }

// Inline and media

func A(args ...any) *VNode      { return El("a", args...) }
func Strong(args ...any) *VNode { return El("strong", args...) }
func Em(args ...any) *VNode     { return El("em", args...) }
func Img(args ...any) *VNode    { return El("img", args...) }
func Br(args ...any) *VNode     { return El("br", args...) }

// Forms

func Form(args ...any) *VNode     { return El("form", args...) }
func Input(args ...any) *VNode    { return El("input", args...) }
func Button(args ...any) *VNode   { return El("button", args...) }
func Label(args ...any) *VNode    { return El("label", args...) }
func Select(args ...any) *VNode   { return El("select", args...) }
func OptionEl(args ...any) *VNode { return El("option", args...) }
func Textarea(args ...any) *VNode { return El("textarea", args...) }

// Tables

func Table(args ...any) *VNode { return El("table", args...) }
func Thead(args ...any) *VNode { return El("thead", args...) }
func Tbody(args ...any) *VNode { return El("tbody", args...) }
func Tr(args ...any) *VNode    { return El("tr", args...) }
func Th(args ...any) *VNode    { return El("th", args...) }
func Td(args ...any) *VNode    { return El("td", args...) }
