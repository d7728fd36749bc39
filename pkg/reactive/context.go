package reactive

// Listener is notified when a (store, key) pair it subscribed to
// changes value. Listeners are tracked by identity via their ID.
type Listener interface {
	// ID returns the unique identifier for this listener.
	ID() uint64

	// Notify tells the listener one of its dependencies changed.
	Notify()
}

// Context owns the reactive tracking state for one independent
// reactivity graph: the single-slot active-listener pointer.
//
// A new context starts with an empty slot and needs no teardown.
// Multiple contexts may coexist in one process; stores and effects
// belong to the context that created them.
type Context struct {
	active Listener
}

// NewContext creates an empty reactivity context.
func NewContext() *Context {
	return &Context{}
}

// ActiveListener returns the currently running listener, or nil when no
// tracking is active.
func (c *Context) ActiveListener() Listener {
	return c.active
}

// withListener runs fn with l occupying the active-listener slot.
// The previous occupant is restored on every exit path, including a
// panicking fn, so a failing effect cannot corrupt later tracking.
func (c *Context) withListener(l Listener, fn func()) {
	prev := c.active
	c.active = l
	defer func() { c.active = prev }()
	fn()
}

// Untracked runs fn with tracking suspended: reads inside fn are not
// attributed to any listener.
func (c *Context) Untracked(fn func()) {
	c.withListener(nil, fn)
}

// Track records the active listener as a subscriber of (store, key).
// A no-op when no listener is active.
func (c *Context) Track(s *Store, key string) {
	s.track(key)
}

// Trigger notifies every subscriber of (store, key). A missing entry is
// a silent no-op.
func (c *Context) Trigger(s *Store, key string) {
	s.trigger(key)
}
