// Package server hosts live UI sessions over HTTP and WebSocket.
//
// Each WebSocket connection gets a Session owning its own live document
// (pkg/dom) and reactivity context (pkg/reactive). The session runs the
// application's render function inside an effect: state writes re-run
// the effect, the reconciler patches the live document, and the
// resulting mutation stream is encoded (pkg/protocol) and pushed to the
// thin client, which mirrors the tree. User events travel the other way
// and are dispatched to the live element's listeners.
//
// All session work — rendering, patching, event dispatch — is
// serialized onto one goroutine per session, preserving the
// single-threaded cooperative model the reactive layer assumes. The
// read loop is the only other goroutine and communicates through
// channels.
//
// The server exposes:
//
//	GET /live     WebSocket endpoint for sessions
//	GET /healthz  liveness probe
//	GET /metrics  Prometheus metrics
package server
