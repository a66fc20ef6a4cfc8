package task

import "time"

// DueLayout is the calendar date format used for due dates and streak keys.
const DueLayout = "2006-01-02"

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// PriorityRank returns the sort rank for a priority (lower = more urgent).
// Unknown priorities rank alongside Low.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 3
	}
}

// IsValidPriority checks if a priority string is valid.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Task represents a tracked unit of work.
type Task struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Priority  Priority `json:"priority"`
	Due       string   `json:"due"` // YYYY-MM-DD, empty means no deadline
	Done      bool     `json:"done"`
	Pomodoros int      `json:"pomodoros"`
}

// ParseDue parses a due date string. An empty string returns ok=false
// without an error; a malformed string returns an error.
func ParseDue(s string) (time.Time, bool, error) {
	if s == "" {
		return time.Time{}, false, nil
	}
	d, err := time.Parse(DueLayout, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return d, true, nil
}

// FormatDue renders a due date for display.
func FormatDue(s string) string {
	if s == "" {
		return "No deadline"
	}
	return s
}
