//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// EmptyNameError indicates a task was submitted without a name.
type EmptyNameError struct{}

func (e EmptyNameError) Error() string {
	return "task name is required"
}

// InvalidDateError indicates a due date that is not YYYY-MM-DD.
type InvalidDateError struct {
	Value string
}

func (e InvalidDateError) Error() string {
	return fmt.Sprintf("invalid due date: %q (expected YYYY-MM-DD)", e.Value)
}

// InvalidPriorityError indicates an invalid priority value.
type InvalidPriorityError struct {
	Value string
}

func (e InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %s (valid: High, Medium, Low)", e.Value)
}

// InvalidDurationError indicates a session duration that is not a positive integer.
type InvalidDurationError struct {
	Field string
	Value string
}

func (e InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid %s: %q (expected a positive number of minutes)", e.Field, e.Value)
}

// TaskNotFoundError indicates the task ID doesn't match any stored task.
type TaskNotFoundError struct {
	ID string
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// MissingTaskError indicates a focus session was started without a task.
type MissingTaskError struct{}

func (e MissingTaskError) Error() string {
	return "a task must be selected before starting a session"
}
