package main

import "github.com/nicolagi/todostate"

type itemsByText []todostate.Item

func (items itemsByText) Len() int {
	return len(items)
}

func (items itemsByText) Swap(i, j int) {
	items[i], items[j] = items[j], items[i]
}

func (items itemsByText) Less(i, j int) bool {
	return items[i].Text < items[j].Text
}
