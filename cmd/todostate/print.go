package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/nicolagi/todostate"
)

// printItems prints the filtered todo list, one item per line: id, an x for completed items, and text. Items are
// in list order unless alphabetically is set.
func printItems(w io.Writer, st *todostate.State, alphabetically bool) error {
	items := st.FilteredTodos.Get()
	if alphabetically {
		// Selector values are shared, so sort a copy.
		items = slices.Clone(items)
		sort.Stable(itemsByText(items))
	}
	for _, item := range items {
		mark := ""
		if item.IsCompleted {
			mark = "x"
		}
		_, _ = fmt.Fprintf(w, "%v\t%v\t%v\n", item.ID, mark, item.Text)
	}
	return nil
}

func printStats(w io.Writer, st *todostate.State) error {
	stats := st.Stats.Get()
	_, _ = fmt.Fprintf(w, "Total: %d\n", stats.TotalNum)
	_, _ = fmt.Fprintf(w, "Completed: %d\n", stats.TotalCompletedNum)
	_, _ = fmt.Fprintf(w, "Uncompleted: %d\n", stats.TotalUncompletedNum)
	_, _ = fmt.Fprintf(w, "Percent completed: %.0f%%\n", stats.PercentCompleted*100)
	return nil
}

func printUserName(ctx context.Context, w io.Writer, st *todostate.State) error {
	name, err := st.CurrentUserName.Get(ctx)
	if err != nil {
		return fmt.Errorf("print user %q: %w", st.CurrentUserID.Get(), err)
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\n", st.CurrentUserID.Get(), name)
	return nil
}
