package output

import (
	"fmt"
	"strings"

	"focushub/internal/summary"
	"focushub/internal/task"
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(t *task.Task) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s\n", f.doneMark(t.Done), t.Name))
	sb.WriteString(fmt.Sprintf("  ID:        %s\n", t.ID))
	sb.WriteString(fmt.Sprintf("  Category:  %s\n", t.Category))
	sb.WriteString(fmt.Sprintf("  Priority:  %s\n", t.Priority))
	sb.WriteString(fmt.Sprintf("  Due:       %s\n", task.FormatDue(t.Due)))
	sb.WriteString(fmt.Sprintf("  Pomodoros: %d\n", t.Pomodoros))

	return sb.String()
}

// FormatTaskList formats a list of tasks as compact one-liners.
func (f *HumanFormatter) FormatTaskList(tasks []*task.Task) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(f.formatTaskLine(t))
	}
	return sb.String()
}

func (f *HumanFormatter) formatTaskLine(t *task.Task) string {
	return fmt.Sprintf("%s %s [%s] %s | due %s | pomodoros %d\n",
		f.doneMark(t.Done), f.priorityMark(t.Priority), t.ID, t.Name,
		task.FormatDue(t.Due), t.Pomodoros)
}

func (f *HumanFormatter) doneMark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func (f *HumanFormatter) priorityMark(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "P1"
	case task.PriorityMedium:
		return "P2"
	case task.PriorityLow:
		return "P3"
	default:
		return "P?"
	}
}

// FormatSummary formats the activity digest.
func (f *HumanFormatter) FormatSummary(s summary.Summary) string {
	var sb strings.Builder

	sb.WriteString("--- Summary ---\n")
	sb.WriteString(fmt.Sprintf("Total tasks:     %d\n", s.TotalTasks))
	sb.WriteString(fmt.Sprintf("Completed tasks: %d\n", s.Completed))
	sb.WriteString(fmt.Sprintf("Pending tasks:   %d\n", s.Pending))
	sb.WriteString(fmt.Sprintf("Overdue tasks:   %d\n", s.Overdue))
	sb.WriteString(fmt.Sprintf("Total pomodoros: %d\n", s.TotalPomodoros))

	sb.WriteString("Last 7 days pomodoros:\n")
	for _, d := range s.LastSevenDays {
		sb.WriteString(fmt.Sprintf("  %s: %d\n", d.Date, d.Count))
	}

	if len(s.TopPending) > 0 {
		sb.WriteString("Top pending tasks:\n")
		for _, t := range s.TopPending {
			sb.WriteString(fmt.Sprintf("  - %s | %s | %s | due %s | pomodoros %d\n",
				t.Name, t.Category, t.Priority, task.FormatDue(t.Due), t.Pomodoros))
		}
	}

	return sb.String()
}

// FormatSuggestion formats the suggested next task.
func (f *HumanFormatter) FormatSuggestion(t *task.Task) string {
	return fmt.Sprintf("Next task: %s\n  Category: %s\n  Priority: %s\n  Due:      %s\n",
		t.Name, t.Category, t.Priority, task.FormatDue(t.Due))
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
