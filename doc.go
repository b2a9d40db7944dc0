// The todostate package holds the client-side state of a todo-list application as a small reactive graph. A UI
// reads values from the graph and writes only to its primary cells; everything else is derived.
//
// The graph is owned by a Store. Primary cells are atoms (NewAtom), which can be read and written. Derived values
// are selectors (NewSelector), pure functions of other atoms and selectors. A selector discovers its dependencies
// while it runs, reading them through the Getter it is handed, caches its result, and is marked stale as soon as
// any atom it transitively read is written. It only recomputes on the next read, so repeated reads between writes
// are served from the cache.
//
// Asynchronous derived values (NewAsyncSelector) are keyed by a synchronous derivation and resolve their value with
// a blocking call, typically a network request. Results are cached per key; concurrent readers of the same key
// share a single in-flight call. Failures are returned to the readers and never cached.
//
// The State type wires the todo application on top of these primitives: the input text and its character count,
// the todo list, the filter and the filtered view, list statistics, and the current user id with the user name
// fetched from a Directory (by default, https://jsonplaceholder.typicode.com/users/).
//
// Ids for new todo items come from Store.NextID, which starts at zero and is safe for concurrent use.
package todostate // import "github.com/nicolagi/todostate"
