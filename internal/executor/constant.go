package executor

const (
	logPrefixExecute = "internal.executor.Execute"

	reasonLowConfidence = "low confidence"
	noTasksMessage      = "You have no tasks"

	// Titles listed per status in the READ summary.
	readPendingLimit    = 5
	readInProgressLimit = 3
)
