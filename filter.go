package todostate

import (
	"fmt"
	"strings"
)

// Filter selects which items of the todo list are shown.
type Filter string

const (
	ShowAll         Filter = "Show All"
	ShowCompleted   Filter = "Show Completed"
	ShowUncompleted Filter = "Show Uncompleted"
)

// Valid reports whether f is one of the known filters. Unknown filters are not rejected when set, they select
// all items.
func (f Filter) Valid() bool {
	switch f {
	case ShowAll, ShowCompleted, ShowUncompleted:
		return true
	default:
		return false
	}
}

// ParseFilter accepts either a filter value, e.g., "Show Completed", or its last word, e.g., "completed", in any
// case.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range []Filter{ShowAll, ShowCompleted, ShowUncompleted} {
		long := strings.ToLower(string(f))
		if s == long || s == strings.TrimPrefix(long, "show ") {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// FilterItems returns the items selected by the filter, in their original order.
func FilterItems(items []Item, filter Filter) []Item {
	switch filter {
	case ShowCompleted:
		return ScanItems(items).WithCompleted().Results()
	case ShowUncompleted:
		return ScanItems(items).WithCompleted().Not().Results()
	default:
		return items
	}
}

type itemPredicate func(Item) bool

func negate(p itemPredicate) itemPredicate {
	return func(item Item) bool {
		return !p(item)
	}
}

// ItemScan selects items satisfying all the predicates added to it.
type ItemScan struct {
	items      []Item
	predicates []itemPredicate
}

// ScanItems starts a scan of the given items. Without predicates, all items match.
func ScanItems(items []Item) *ItemScan {
	return &ItemScan{
		items: items,
	}
}

// Not negates the last predicate added.  It will panic if no predicates were added.
func (s *ItemScan) Not() *ItemScan {
	i := len(s.predicates) - 1
	s.predicates[i] = negate(s.predicates[i])
	return s
}

func (s *ItemScan) WithCompleted() *ItemScan {
	s.predicates = append(s.predicates, func(item Item) bool {
		return item.IsCompleted
	})
	return s
}

// WithText looks for items containing the given substring, case-insensitive.
func (s *ItemScan) WithText(needle string) *ItemScan {
	needle = strings.ToLower(needle)
	s.predicates = append(s.predicates, func(item Item) bool {
		return strings.Contains(strings.ToLower(item.Text), needle)
	})
	return s
}

// Results returns the matching items in scan order. The result never aliases the scanned slice.
func (s *ItemScan) Results() []Item {
	results := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if s.match(item) {
			results = append(results, item)
		}
	}
	return results
}

func (s *ItemScan) match(item Item) bool {
	for _, match := range s.predicates {
		if !match(item) {
			return false
		}
	}
	return true
}
