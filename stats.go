package todostate

// Stats aggregates the todo list.
type Stats struct {
	TotalNum            int     `json:"totalNum"`
	TotalCompletedNum   int     `json:"totalCompletedNum"`
	TotalUncompletedNum int     `json:"totalUncompletedNum"`
	PercentCompleted    float64 `json:"percentCompleted"` // A fraction in [0, 1], zero for an empty list.
}

// ComputeStats counts the items of the list, completed or not.
func ComputeStats(items []Item) Stats {
	var stats Stats
	stats.TotalNum = len(items)
	stats.TotalCompletedNum = len(ScanItems(items).WithCompleted().Results())
	stats.TotalUncompletedNum = stats.TotalNum - stats.TotalCompletedNum
	if stats.TotalNum != 0 {
		stats.PercentCompleted = float64(stats.TotalCompletedNum) / float64(stats.TotalNum)
	}
	return stats
}
