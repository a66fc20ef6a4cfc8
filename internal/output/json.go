package output

import (
	"encoding/json"

	"focushub/internal/summary"
	"focushub/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t *task.Task) string {
	return marshalJSON(t)
}

// FormatTaskList formats a list of tasks as JSON.
func (f *JSONFormatter) FormatTaskList(tasks []*task.Task) string {
	if tasks == nil {
		tasks = []*task.Task{}
	}
	return marshalJSON(tasks)
}

// FormatSummary formats the activity digest as JSON.
func (f *JSONFormatter) FormatSummary(s summary.Summary) string {
	return marshalJSON(s)
}

// suggestionJSON is the JSON representation of a suggestion.
type suggestionJSON struct {
	Suggestion *task.Task `json:"suggestion"`
}

// FormatSuggestion formats the suggested next task as JSON.
func (f *JSONFormatter) FormatSuggestion(t *task.Task) string {
	return marshalJSON(suggestionJSON{Suggestion: t})
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
