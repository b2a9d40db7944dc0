package todostate

// Exported for tests in package todostate_test.
var (
	AsyncReads          = asyncReads
	DirectoryRequests   = directoryRequests
	SelectorEvaluations = selectorEvaluations
)
