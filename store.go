package todostate

import (
	"sync"
	"sync/atomic"
)

// Store owns a graph of atoms and selectors. All reads and writes of values in the graph, as well as the links
// between nodes, are serialized by a single mutex, so atoms and selectors may be used from several goroutines.
// Nodes from different stores must not be mixed.
type Store struct {
	mu sync.Mutex

	// Source of ids for todo items, see NextID.
	ids atomic.Int64

	// Used to hand out listener handles, guarded by mu.
	lastListener uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return new(Store)
}

// NextID returns 0 on the first call, and one more than the previous result on every subsequent call.
func (s *Store) NextID() int64 {
	return s.ids.Add(1) - 1
}

// node is implemented by every atom and selector (by embedding nodeBase).
type node interface {
	base() *nodeBase
}

type nodeBase struct {
	store *Store

	// Nodes that read this one during their last evaluation.
	subs map[node]struct{}

	// Nodes this one read during its last evaluation. Always empty for atoms.
	deps map[node]struct{}

	// Set when a dependency changed since the last evaluation. Atoms are never stale.
	stale bool

	listeners map[uint64]func()
}

func (b *nodeBase) base() *nodeBase {
	return b
}

// link records that sub read dep. Must be called with the store mutex held.
func link(dep, sub node) {
	d, s := dep.base(), sub.base()
	if d.store != s.store {
		panic("todostate: nodes belong to different stores")
	}
	if d.subs == nil {
		d.subs = make(map[node]struct{})
	}
	if s.deps == nil {
		s.deps = make(map[node]struct{})
	}
	d.subs[sub] = struct{}{}
	s.deps[dep] = struct{}{}
}

// unlinkDeps forgets everything n read during its previous evaluation. Must be called with the store mutex held.
func unlinkDeps(n node) {
	b := n.base()
	for dep := range b.deps {
		delete(dep.base().subs, n)
	}
	clear(b.deps)
}

// invalidateLocked marks every transitive dependent of n as stale and returns the listeners to notify once the
// mutex is released. A dependent that is already stale is skipped: its own dependents were marked when it was.
func (s *Store) invalidateLocked(n node, notify []func()) []func() {
	for sub := range n.base().subs {
		b := sub.base()
		if b.stale {
			continue
		}
		b.stale = true
		notify = appendListeners(notify, b)
		notify = s.invalidateLocked(sub, notify)
	}
	return notify
}

func appendListeners(notify []func(), b *nodeBase) []func() {
	for _, fn := range b.listeners {
		notify = append(notify, fn)
	}
	return notify
}

// subscribe registers fn to be called, without the mutex held, whenever n changes or becomes stale.
func (s *Store) subscribe(n node, fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastListener++
	handle := s.lastListener
	b := n.base()
	if b.listeners == nil {
		b.listeners = make(map[uint64]func())
	}
	b.listeners[handle] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(b.listeners, handle)
	}
}

func runAll(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}
