// Package reactive implements fine-grained dependency tracking.
//
// A Context owns the tracking state: a single active-listener slot that
// holds the effect currently executing, if any. Reading a Store key
// while the slot is occupied subscribes that listener to the (store,
// key) pair; writing a key to a distinct value notifies every
// subscriber synchronously and exhaustively before the write returns.
//
// Subscriber sets live on the Store itself, so an unreachable store
// takes its subscriptions with it; the tracker never extends an
// observed object's lifetime. Contexts are independent: state tracked
// in one context never triggers effects registered in another.
//
// The model is single-threaded and cooperative. There is no batching,
// no scheduling and no cycle detection: an effect that writes a key it
// transitively depends on recurses without bound.
package reactive
