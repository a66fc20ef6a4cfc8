package output

import (
	"focushub/internal/summary"
	"focushub/internal/task"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTask(t *task.Task) string
	FormatTaskList(tasks []*task.Task) string
	FormatSummary(s summary.Summary) string
	FormatSuggestion(t *task.Task) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
