package todostate

import (
	log "github.com/sirupsen/logrus"
)

// Getter is handed to selector functions, which pass it to the Read method of the atoms and selectors they
// depend on. It is only valid during the call.
type Getter struct {
	sub node
}

// Selector is a read-only value derived from atoms and other selectors. The function computing it is called at
// most once between changes of its dependencies; it must be free of side effects.
type Selector[T any] struct {
	nodeBase
	get        func(*Getter) T
	value      T
	evaluating bool
}

// NewSelector creates a selector computed by get. Nothing is computed until the first read.
func NewSelector[T any](s *Store, get func(*Getter) T) *Selector[T] {
	sel := &Selector[T]{get: get}
	sel.store = s
	sel.stale = true
	return sel
}

// Get returns the cached value, recomputing it first if any dependency changed since the last computation.
func (sel *Selector[T]) Get() T {
	sel.store.mu.Lock()
	defer sel.store.mu.Unlock()
	return sel.valueLocked()
}

// Read returns the value from within a selector function, recording sel as a dependency of that selector.
func (sel *Selector[T]) Read(g *Getter) T {
	link(sel, g.sub)
	return sel.valueLocked()
}

func (sel *Selector[T]) valueLocked() T {
	if !sel.stale {
		return sel.value
	}
	if sel.evaluating {
		panic("todostate: selector depends on itself")
	}
	sel.evaluating = true
	defer func() { sel.evaluating = false }()
	// Dependencies may differ from one evaluation to the next, e.g., if the function branches on a value.
	unlinkDeps(sel)
	sel.value = sel.get(&Getter{sub: sel})
	sel.stale = false
	selectorEvaluations.Inc()
	log.WithField("deps", len(sel.deps)).Debug("Evaluated selector")
	return sel.value
}

// Subscribe calls fn every time the selector becomes stale because a dependency changed. Dependencies are only
// known after a read, so nothing is reported before the first Get, and after a notification nothing is reported
// again until the selector has been read.
func (sel *Selector[T]) Subscribe(fn func()) (cancel func()) {
	return sel.store.subscribe(sel, fn)
}
