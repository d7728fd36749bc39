// Package vdom provides the virtual tree representation of UI structure.
//
// A VNode is an immutable description of one element or text leaf. Trees
// are built with variadic factory functions and are never mutated in
// place; each render pass constructs a fresh tree that supersedes the
// previous one.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// Child arguments flatten: a []any nested to any depth contributes its
// contents in order, and nil entries are dropped. Plain strings become
// text children.
//
// Reconciliation against a live tree lives in pkg/render; this package
// has no host interaction and no side effects.
package vdom
