package reactive

// Effect is a callback re-run automatically whenever a (store, key)
// pair it read during its previous run changes value.
type Effect struct {
	id  uint64
	ctx *Context
	fn  func()

	// sources are the (store, key) pairs read during the last run,
	// kept so stale subscriptions can be dropped before each re-run.
	sources []source

	disposed bool
}

type source struct {
	store *Store
	key   string
}

// Effect registers fn and runs it immediately. The first run performs
// the initial dependency recording; afterwards the effect re-runs
// synchronously whenever one of its dependencies is triggered, and only
// then. Re-runs re-record dependencies from scratch, so reads behind
// conditionals subscribe exactly what the latest run touched.
func (c *Context) Effect(fn func()) *Effect {
	e := &Effect{
		id:  nextID(),
		ctx: c,
		fn:  fn,
	}
	e.run()
	return e
}

// ID returns the unique identifier for this effect.
// Implements the Listener interface.
func (e *Effect) ID() uint64 { return e.id }

// Notify re-runs the effect. Implements the Listener interface.
func (e *Effect) Notify() {
	if e.disposed {
		return
	}
	e.run()
}

// run executes the effect function with the active-listener slot held.
// The slot is released on every exit path, including a panicking fn;
// a failing effect must not corrupt later dependency tracking.
func (e *Effect) run() {
	e.clearSources()
	e.ctx.withListener(e, e.fn)
}

// addSource records a (store, key) dependency for cleanup before the
// next run. Called by stores on tracked reads.
func (e *Effect) addSource(s *Store, key string) {
	for _, src := range e.sources {
		if src.store == s && src.key == key {
			return
		}
	}
	e.sources = append(e.sources, source{store: s, key: key})
}

// clearSources unsubscribes from everything the previous run read.
func (e *Effect) clearSources() {
	for _, src := range e.sources {
		src.store.unsubscribe(src.key, e)
	}
	e.sources = e.sources[:0]
}

// Dispose permanently detaches the effect from its dependencies.
// A disposed effect ignores further notifications.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.clearSources()
	e.sources = nil
}
