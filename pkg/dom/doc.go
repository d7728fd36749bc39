// Package dom implements the live host tree the renderer mutates.
//
// A Document owns a mutable tree of Element and Text nodes supporting the
// host contract the core consumes: create element, create text node,
// set/remove attribute, add/remove event listener, insert/replace/remove
// child, and lookup by id.
//
// Every mutation is reported to observers registered with
// Document.Observe as a Mutation record. The server uses this stream to
// mirror the tree to remote clients; tests use it to count host
// operations.
//
// A Document is not safe for concurrent use. Execution is cooperative
// and single-threaded: event listeners dispatched through DispatchEvent
// are the only re-entry point, and callers (such as pkg/server sessions)
// serialize all access onto one goroutine.
package dom
