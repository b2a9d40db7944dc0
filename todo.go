package todostate

import "errors"

// ErrItemNotFound is returned by the State methods editing a single item when no item has the given id.
var ErrItemNotFound = errors.New("item not found")

// Item is one entry of the todo list. The id is assigned when the item is created (see Store.NextID) and never
// changes.
type Item struct {
	ID          int64  `json:"id" yaml:"id"`
	Text        string `json:"text" yaml:"text"`
	IsCompleted bool   `json:"isCompleted" yaml:"completed"`
}
