// Package summary computes the read-only activity digest. It has no
// mutation rights over the store.
package summary

import (
	"time"

	"focushub/internal/schedule"
	"focushub/internal/store"
	"focushub/internal/task"
)

// topPendingLimit caps the highlighted pending tasks.
const topPendingLimit = 5

// DayCount pairs a calendar date with the focus sessions completed that day.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Summary is a point-in-time digest of store state.
type Summary struct {
	TotalTasks     int          `json:"total_tasks"`
	Completed      int          `json:"completed"`
	Pending        int          `json:"pending"`
	Overdue        int          `json:"overdue"`
	TotalPomodoros int          `json:"total_pomodoros"`
	LastSevenDays  []DayCount   `json:"last_seven_days"`
	TopPending     []*task.Task `json:"top_pending"`
}

// Build reduces the store into a Summary. The 7-day window covers today and
// the six preceding days, oldest first, with zeros for unrecorded days.
func Build(s *store.Store, now time.Time) Summary {
	tasks := s.Tasks()

	completed := 0
	for _, t := range tasks {
		if t.Done {
			completed++
		}
	}

	window := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(task.DueLayout)
		window = append(window, DayCount{Date: day, Count: s.StreakFor(day)})
	}

	pending := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Done {
			pending = append(pending, t)
		}
	}
	top := schedule.Sort(pending, now)
	if len(top) > topPendingLimit {
		top = top[:topPendingLimit]
	}

	return Summary{
		TotalTasks:     len(tasks),
		Completed:      completed,
		Pending:        len(tasks) - completed,
		Overdue:        schedule.OverdueCount(tasks, now),
		TotalPomodoros: s.Stats().TotalPomodoros,
		LastSevenDays:  window,
		TopPending:     top,
	}
}
