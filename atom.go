package todostate

// Atom is a primary cell: a value that can be read and replaced. Values are meant to be treated as immutable;
// in particular slices and maps must be replaced rather than modified in place, or dependents won't notice.
type Atom[T any] struct {
	nodeBase
	value T
}

// NewAtom creates an atom in the store holding the initial value.
func NewAtom[T any](s *Store, initial T) *Atom[T] {
	a := &Atom[T]{value: initial}
	a.store = s
	return a
}

// Get returns the current value.
func (a *Atom[T]) Get() T {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return a.value
}

// Read returns the value from within a selector function, recording the atom as a dependency of that selector.
func (a *Atom[T]) Read(g *Getter) T {
	link(a, g.sub)
	return a.value
}

// Set replaces the value. Every selector that depends on the atom, directly or not, is invalidated before Set
// returns. Subscribers are called afterwards.
func (a *Atom[T]) Set(value T) {
	a.Update(func(T) T { return value })
}

// Update replaces the value with the result of fn applied to the current value, atomically with respect to other
// readers and writers of the store. The function must not use the store.
func (a *Atom[T]) Update(fn func(T) T) {
	a.store.mu.Lock()
	a.value = fn(a.value)
	notify := appendListeners(nil, &a.nodeBase)
	notify = a.store.invalidateLocked(a, notify)
	a.store.mu.Unlock()
	runAll(notify)
}

// Subscribe calls fn after every write to the atom. The returned function removes the subscription.
func (a *Atom[T]) Subscribe(fn func()) (cancel func()) {
	return a.store.subscribe(a, fn)
}
