package reactive

import (
	"reflect"
	"sort"
)

// Store is an observable string-keyed value map. Reads performed while
// an effect is running subscribe that effect to the key being read;
// writes that change the stored value notify the key's subscribers.
//
// Subscription granularity is per key, never whole-store. Reads and
// writes of absent keys, deletions and key iteration behave as they
// would on a plain map, with tracking layered on top.
type Store struct {
	id   uint64
	ctx  *Context
	data map[string]any

	// subs are the per-key subscriber sets, created lazily on first
	// tracked read. Kept on the store so the context never holds a
	// reference to observed state.
	subs map[string][]Listener
}

// NewStore wraps a copy of initial in a new observable store bound to
// this context. A nil initial map starts the store empty.
func (c *Context) NewStore(initial map[string]any) *Store {
	data := make(map[string]any, len(initial))
	for k, v := range initial {
		data[k] = v
	}
	return &Store{
		id:   nextID(),
		ctx:  c,
		data: data,
		subs: make(map[string][]Listener),
	}
}

// ID returns the unique identifier for this store.
func (s *Store) ID() uint64 { return s.id }

// Get returns the value for key, subscribing the active listener to it.
// An absent key reads as nil, and the read is still tracked.
func (s *Store) Get(key string) any {
	s.track(key)
	return s.data[key]
}

// Peek returns the value for key without subscribing. Useful when a
// value is needed without creating a dependency.
func (s *Store) Peek(key string) any {
	return s.data[key]
}

// Has reports whether key is set, subscribing the active listener.
func (s *Store) Has(key string) bool {
	s.track(key)
	_, ok := s.data[key]
	return ok
}

// Set stores value under key. Subscribers are notified only when the
// stored value actually changed; writing the current value back is
// silent.
func (s *Store) Set(key string, value any) {
	old, had := s.data[key]
	s.data[key] = value
	if had && valuesEqual(old, value) {
		return
	}
	s.trigger(key)
}

// Delete removes key. Deleting an absent key is a no-op; deleting a set
// key notifies its subscribers.
func (s *Store) Delete(key string) {
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	s.trigger(key)
}

// Keys returns the set keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of set keys.
func (s *Store) Len() int { return len(s.data) }

// track subscribes the context's active listener to key, if there is
// one. The per-key set is created lazily.
func (s *Store) track(key string) {
	l := s.ctx.ActiveListener()
	if l == nil {
		return
	}
	s.subscribe(key, l)
	if e, ok := l.(*Effect); ok {
		e.addSource(s, key)
	}
}

// subscribe adds a listener to the key's subscriber set.
// Deduplicates by listener ID so double-tracking cannot make a listener
// fire twice for one trigger.
func (s *Store) subscribe(key string, l Listener) {
	subs := s.subs[key]
	lid := l.ID()
	for _, existing := range subs {
		if existing.ID() == lid {
			return
		}
	}
	s.subs[key] = append(subs, l)
}

// unsubscribe removes a listener from the key's subscriber set.
func (s *Store) unsubscribe(key string, l Listener) {
	subs := s.subs[key]
	lid := l.ID()
	for i, existing := range subs {
		if existing.ID() == lid {
			// Swap-remove; relative order of the rest is preserved
			// well enough since correctness must not depend on it.
			subs[i] = subs[len(subs)-1]
			s.subs[key] = subs[:len(subs)-1]
			return
		}
	}
}

// trigger notifies every subscriber of key, synchronously and
// exhaustively. The set is copied first so listeners that resubscribe
// during their run don't perturb the iteration.
func (s *Store) trigger(key string) {
	subs := s.subs[key]
	if len(subs) == 0 {
		return
	}
	copied := make([]Listener, len(subs))
	copy(copied, subs)
	for _, l := range copied {
		l.Notify()
	}
}

// valuesEqual provides type-appropriate equality checking: == for the
// common scalar types, reflect.DeepEqual otherwise.
func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case uint64:
		bv, ok := b.(uint64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		// Slices, maps, structs, etc.
		return reflect.DeepEqual(a, b)
	}
}
