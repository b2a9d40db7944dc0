package todostate

import (
	"context"
	"slices"
	"unicode/utf8"
)

// DefaultUserID is the initial value of State.CurrentUserID.
const DefaultUserID = "1"

// UserDirectory resolves user names; Directory implements it.
type UserDirectory interface {
	UserName(ctx context.Context, id string) (string, error)
}

// State is the state of the todo application. Only the atoms are meant to be written by the UI; the selectors
// follow.
type State struct {
	store *Store

	// Text is the content of the input field, initially empty.
	Text *Atom[string]

	// CharCount is the number of characters in Text.
	CharCount *Selector[int]

	// Todos is the todo list in display order, initially empty. See AddItem and friends for edits.
	Todos *Atom[[]Item]

	// Filter is initially ShowAll.
	Filter *Atom[Filter]

	// FilteredTodos holds the items of Todos selected by Filter.
	FilteredTodos *Selector[[]Item]

	Stats *Selector[Stats]

	// CurrentUserID is initially DefaultUserID.
	CurrentUserID *Atom[string]

	// CurrentUserName is the name of the current user according to the directory, cached per user id.
	CurrentUserName *AsyncSelector[string, string]
}

// NewState creates the application state in the given store, fetching user names from directory.
func NewState(store *Store, directory UserDirectory) *State {
	st := &State{
		store:         store,
		Text:          NewAtom(store, ""),
		Todos:         NewAtom(store, []Item{}),
		Filter:        NewAtom(store, ShowAll),
		CurrentUserID: NewAtom(store, DefaultUserID),
	}
	st.CharCount = NewSelector(store, func(g *Getter) int {
		return utf8.RuneCountInString(st.Text.Read(g))
	})
	st.FilteredTodos = NewSelector(store, func(g *Getter) []Item {
		filter := st.Filter.Read(g)
		return FilterItems(st.Todos.Read(g), filter)
	})
	st.Stats = NewSelector(store, func(g *Getter) Stats {
		return ComputeStats(st.Todos.Read(g))
	})
	st.CurrentUserName = NewAsyncSelector(store, func(g *Getter) string {
		return st.CurrentUserID.Read(g)
	}, directory.UserName)
	return st
}

// AddItem appends a new, uncompleted item with the next id from the store.
func (st *State) AddItem(text string) Item {
	item := Item{ID: st.store.NextID(), Text: text}
	st.Todos.Update(func(items []Item) []Item {
		return append(slices.Clip(items), item)
	})
	return item
}

// EditItemText changes the text of the item with the given id.
func (st *State) EditItemText(id int64, text string) error {
	return st.updateItem(id, func(item *Item) {
		item.Text = text
	})
}

// ToggleItem flips the completion flag of the item with the given id.
func (st *State) ToggleItem(id int64) error {
	return st.updateItem(id, func(item *Item) {
		item.IsCompleted = !item.IsCompleted
	})
}

// DeleteItem removes the item with the given id.
func (st *State) DeleteItem(id int64) error {
	found := false
	st.Todos.Update(func(items []Item) []Item {
		i := slices.IndexFunc(items, func(item Item) bool { return item.ID == id })
		if i < 0 {
			return items
		}
		found = true
		return slices.Delete(slices.Clone(items), i, i+1)
	})
	if !found {
		return ErrItemNotFound
	}
	return nil
}

func (st *State) updateItem(id int64, fn func(*Item)) error {
	found := false
	st.Todos.Update(func(items []Item) []Item {
		i := slices.IndexFunc(items, func(item Item) bool { return item.ID == id })
		if i < 0 {
			return items
		}
		found = true
		items = slices.Clone(items)
		fn(&items[i])
		return items
	})
	if !found {
		return ErrItemNotFound
	}
	return nil
}
