package todostate

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// AsyncSelector is a derived value that needs a blocking call, e.g., a network request, to be resolved. The call
// is parameterized by a key, itself derived synchronously from atoms and selectors.
//
// Resolved values are cached per key and kept until Refresh is called, so reading again with a key that was
// already resolved doesn't make any call. Readers asking for a key whose call is still in progress wait for that
// call instead of starting another one. Errors are returned to all the readers waiting for the failed call and
// are not cached: the next read makes a new call. Nothing is retried automatically.
type AsyncSelector[K comparable, T any] struct {
	nodeBase
	key   *Selector[K]
	fetch func(context.Context, K) (T, error)

	flight singleflight.Group

	// Guarded by the store mutex.
	cache      map[K]T
	generation uint64

	// Singleflight keys are strings; each distinct key gets its own number, so keys that print the same don't
	// share a call. Guarded by the store mutex.
	flightIDs map[K]uint64
}

// NewAsyncSelector creates an asynchronous selector whose key is computed by key and whose value for a key is
// resolved by fetch.
func NewAsyncSelector[K comparable, T any](s *Store, key func(*Getter) K, fetch func(context.Context, K) (T, error)) *AsyncSelector[K, T] {
	a := &AsyncSelector[K, T]{
		key:   NewSelector(s, key),
		fetch: fetch,
		cache:     make(map[K]T),
		flightIDs: make(map[K]uint64),
	}
	a.store = s
	s.mu.Lock()
	link(a.key, a)
	s.mu.Unlock()
	return a
}

// Key returns the key the next Get will resolve.
func (a *AsyncSelector[K, T]) Key() K {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	// Reading the key counts as reading the selector, so the next key change is reported to subscribers.
	a.stale = false
	return a.key.valueLocked()
}

// Get returns the value for the current key, waiting for it to be resolved if needed. If ctx is done before
// that, Get returns ctx.Err(); a call started on behalf of this reader keeps going and its result is cached for
// whoever reads the same key next.
func (a *AsyncSelector[K, T]) Get(ctx context.Context) (T, error) {
	var zero T
	s := a.store
	s.mu.Lock()
	key := a.key.valueLocked()
	value, ok := a.cache[key]
	generation := a.generation
	a.stale = false
	flightID, found := a.flightIDs[key]
	if !found {
		flightID = uint64(len(a.flightIDs))
		a.flightIDs[key] = flightID
	}
	s.mu.Unlock()

	logEntry := log.WithField("key", key)
	if ok {
		asyncReads.WithLabelValues("hit").Inc()
		logEntry.Debug("Serving cached value")
		return value, nil
	}
	asyncReads.WithLabelValues("miss").Inc()

	ch := a.flight.DoChan(fmt.Sprintf("%d/%d", generation, flightID), func() (interface{}, error) {
		// Another call for the key may have completed since the cache was checked.
		s.mu.Lock()
		value, ok := a.cache[key]
		cached := ok && a.generation == generation
		s.mu.Unlock()
		if cached {
			return value, nil
		}
		logEntry.Debug("Resolving value")
		// The call outlives the reader that started it.
		value, err := a.fetch(context.WithoutCancel(ctx), key)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		// Results of calls started before a Refresh are dropped.
		if a.generation == generation {
			a.cache[key] = value
		}
		s.mu.Unlock()
		return value, nil
	})
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			asyncReads.WithLabelValues("error").Inc()
			logEntry.WithField("cause", r.Err).Debug("Could not resolve value")
			return zero, r.Err
		}
		value, _ := r.Val.(T)
		return value, nil
	}
}

// Refresh drops all the cached values, so the next read will resolve its key again. Calls in progress complete,
// but their results are not cached.
func (a *AsyncSelector[K, T]) Refresh() {
	a.store.mu.Lock()
	a.generation++
	clear(a.cache)
	notify := appendListeners(nil, &a.nodeBase)
	a.store.mu.Unlock()
	runAll(notify)
}

// Subscribe calls fn when the key of the selector changes, or when the selector is refreshed.
func (a *AsyncSelector[K, T]) Subscribe(fn func()) (cancel func()) {
	return a.store.subscribe(a, fn)
}
