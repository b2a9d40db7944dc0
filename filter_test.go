package todostate_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nicolagi/todostate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioItems() []todostate.Item {
	return []todostate.Item{
		{ID: 1, Text: "a", IsCompleted: false},
		{ID: 2, Text: "b", IsCompleted: true},
		{ID: 3, Text: "c", IsCompleted: true},
	}
}

func randomItems(r *rand.Rand) []todostate.Item {
	items := make([]todostate.Item, r.Intn(20))
	for i := range items {
		items[i] = todostate.Item{
			ID:          int64(i),
			Text:        string(rune('a' + r.Intn(26))),
			IsCompleted: r.Intn(2) == 0,
		}
	}
	return items
}

func TestFilterItems(t *testing.T) {
	testCases := []struct {
		filter   todostate.Filter
		expected []todostate.Item
	}{
		{
			filter:   todostate.ShowAll,
			expected: scenarioItems(),
		},
		{
			filter: todostate.ShowCompleted,
			expected: []todostate.Item{
				{ID: 2, Text: "b", IsCompleted: true},
				{ID: 3, Text: "c", IsCompleted: true},
			},
		},
		{
			filter: todostate.ShowUncompleted,
			expected: []todostate.Item{
				{ID: 1, Text: "a", IsCompleted: false},
			},
		},
		{
			filter:   "Show Nothing",
			expected: scenarioItems(),
		},
		{
			filter:   "",
			expected: scenarioItems(),
		},
	}
	for _, tc := range testCases {
		t.Run(string(tc.filter), func(t *testing.T) {
			actual := todostate.FilterItems(scenarioItems(), tc.filter)
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("FilterItems(%q) mismatch (-want +got):\n%s", tc.filter, diff)
			}
		})
	}
}

// isSubsequence reports whether sub can be obtained from items by removing elements.
func isSubsequence(sub, items []todostate.Item) bool {
	i := 0
	for _, item := range items {
		if i < len(sub) && sub[i] == item {
			i++
		}
	}
	return i == len(sub)
}

func TestFilterItemsProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 200; n++ {
		items := randomItems(r)
		all := todostate.FilterItems(items, todostate.ShowAll)
		require.Empty(t, cmp.Diff(items, all))

		completed := todostate.FilterItems(items, todostate.ShowCompleted)
		uncompleted := todostate.FilterItems(items, todostate.ShowUncompleted)
		require.True(t, isSubsequence(completed, items))
		require.True(t, isSubsequence(uncompleted, items))
		for _, item := range completed {
			require.True(t, item.IsCompleted)
		}
		for _, item := range uncompleted {
			require.False(t, item.IsCompleted)
		}
		require.Equal(t, len(items), len(completed)+len(uncompleted))
	}
}

func TestFilterItemsDoesNotAliasInput(t *testing.T) {
	items := scenarioItems()
	completed := todostate.FilterItems(items, todostate.ShowCompleted)
	completed[0].Text = "changed"
	assert.Equal(t, "b", items[1].Text)
}

func TestParseFilter(t *testing.T) {
	testCases := []struct {
		in       string
		expected todostate.Filter
	}{
		{"Show All", todostate.ShowAll},
		{"show completed", todostate.ShowCompleted},
		{"Uncompleted", todostate.ShowUncompleted},
		{" all ", todostate.ShowAll},
	}
	for _, tc := range testCases {
		actual, err := todostate.ParseFilter(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.expected, actual)
		assert.True(t, actual.Valid())
	}
	_, err := todostate.ParseFilter("done")
	assert.Error(t, err)
	assert.False(t, todostate.Filter("done").Valid())
}

func TestItemScan(t *testing.T) {
	items := []todostate.Item{
		{ID: 1, Text: "Buy milk", IsCompleted: true},
		{ID: 2, Text: "buy bread"},
		{ID: 3, Text: "Call mom"},
	}
	actual := todostate.ScanItems(items).WithText("BUY").WithCompleted().Not().Results()
	assert.Equal(t, []todostate.Item{{ID: 2, Text: "buy bread"}}, actual)
	assert.Len(t, todostate.ScanItems(items).Results(), 3)
	assert.Empty(t, todostate.ScanItems(nil).WithText("x").Results())
}
