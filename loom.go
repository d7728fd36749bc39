// Package loom provides the public API for the Loom UI library.
//
// This is the recommended import for most applications:
//
//	import "github.com/loom-ui/loom"
//
// Usage:
//
//	app := func(rctx *loom.Context, doc *loom.Document) func() *loom.VNode {
//		state := rctx.NewStore(map[string]any{"count": 0})
//		increment := func() {
//			state.Set("count", state.Peek("count").(int)+1)
//		}
//		return func() *loom.VNode {
//			return loom.Button(
//				loom.OnClick(increment),
//				loom.Textf("%d", state.Get("count").(int)),
//			)
//		}
//	}
//	loom.Serve(app)
package loom

import (
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/server"
	"github.com/loom-ui/loom/pkg/vdom"
)

// =============================================================================
// Virtual tree (re-export from pkg/vdom)
// =============================================================================

// VNode is one node of a virtual tree.
type VNode = vdom.VNode

// Attr is a single attribute or event binding for El.
type Attr = vdom.Attr

// Props is a bag of element properties.
type Props = vdom.Props

// El builds an element node from a tag and a free mix of arguments:
// attributes, children, strings and nested slices, flattened in order.
var El = vdom.El

// Text creates a text node.
var Text = vdom.Text

// Textf creates a text node with fmt.Sprintf formatting.
var Textf = vdom.Textf

// Common element constructors.
var (
	Div    = vdom.Div
	Span   = vdom.Span
	P      = vdom.P
	H1     = vdom.H1
	H2     = vdom.H2
	H3     = vdom.H3
	Ul     = vdom.Ul
	Li     = vdom.Li
	Button = vdom.Button
	Input  = vdom.Input
	Form   = vdom.Form
)

// Conditional and list helpers.
var (
	If      = vdom.If
	IfElse  = vdom.IfElse
	When    = vdom.When
	Nothing = vdom.Nothing
)

// Common attribute constructors.
var (
	ID          = vdom.ID
	Class       = vdom.Class
	Key         = vdom.Key
	Value       = vdom.Value
	Placeholder = vdom.Placeholder
	Disabled    = vdom.Disabled
)

// Event binding constructors.
var (
	On       = vdom.On
	OnClick  = vdom.OnClick
	OnInput  = vdom.OnInput
	OnChange = vdom.OnChange
	OnSubmit = vdom.OnSubmit
)

// =============================================================================
// Reactivity (re-export from pkg/reactive)
// =============================================================================

// Context owns the dependency tracker for one unit of reactive state.
type Context = reactive.Context

// Store is reactive key/value state bound to a Context.
type Store = reactive.Store

// Effect is a computation that re-runs when state it read changes.
type Effect = reactive.Effect

// NewContext creates an empty reactivity context.
var NewContext = reactive.NewContext

// =============================================================================
// Host tree and rendering
// =============================================================================

// Document owns a live tree of host nodes.
type Document = dom.Document

// Element is a live element node.
type Element = dom.Element

// Event is a host event dispatched to a live element.
type Event = dom.Event

// NewDocument creates a document with an empty body element.
var NewDocument = dom.NewDocument

// Render materializes a virtual node into a detached host subtree.
var Render = render.Render

// Mount renders v under the element with the given id attribute.
var Mount = render.Mount

// Patch reconciles the live child of parent at index from prev to next,
// mutating the smallest possible part of the host tree.
var Patch = render.Patch

// =============================================================================
// Server (re-export from pkg/server)
// =============================================================================

// App sets up one session's state and returns its render function.
type App = server.App

// Server hosts live sessions over WebSocket.
type Server = server.Server

// NewServer creates a server for the given application.
var NewServer = server.New

// Server options.
var (
	WithConfig      = server.WithConfig
	WithAddr        = server.WithAddr
	WithLogger      = server.WithLogger
	WithCheckOrigin = server.WithCheckOrigin
)

// Serve starts a server for app on the default address and blocks.
func Serve(app App, opts ...server.Option) error {
	return server.New(app, opts...).ListenAndServe()
}
