// Package schedule holds the pure ordering and suggestion logic: display
// sorting, overdue counting, and the time-of-day-sensitive next-task pick.
package schedule

import (
	"sort"
	"time"

	"focushub/internal/task"
)

const (
	// farFutureDays is the sentinel horizon for tasks without a deadline;
	// they sort and score after every dated task.
	farFutureDays = 9999

	// overdueScore dominates any combination of due proximity, priority
	// rank, and category bonus, so overdue work always wins.
	overdueScore = -100
)

// BonusBucket maps an hour-of-day range to per-category score bonuses.
// A bucket with Start > End wraps past midnight (e.g. 18..5).
type BonusBucket struct {
	Start   int
	End     int
	Bonuses map[string]float64
}

// BonusTable resolves the category bonus for a given hour.
type BonusTable []BonusBucket

// Bonus returns the adjustment for a category at the given hour, or 0.
func (bt BonusTable) Bonus(hour int, category string) float64 {
	for _, b := range bt {
		if b.contains(hour) {
			return b.Bonuses[category]
		}
	}
	return 0
}

func (b BonusBucket) contains(hour int) bool {
	if b.Start <= b.End {
		return hour >= b.Start && hour <= b.End
	}
	return hour >= b.Start || hour <= b.End
}

// dateOnly reduces a moment to its calendar date, in UTC so arithmetic
// against parsed due dates works in whole days.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// effectiveDue returns the task's due date, or today+9999d when absent or
// unparseable.
func effectiveDue(t *task.Task, today time.Time) time.Time {
	d, ok, err := task.ParseDue(t.Due)
	if !ok || err != nil {
		return today.AddDate(0, 0, farFutureDays)
	}
	return d
}

// Sort returns a new slice ordered by (done, effective due date, priority
// rank). Incomplete tasks come first; ties preserve input order.
func Sort(tasks []*task.Task, today time.Time) []*task.Task {
	today = dateOnly(today)
	out := make([]*task.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Done != b.Done {
			return !a.Done
		}
		da, db := effectiveDue(a, today), effectiveDue(b, today)
		if !da.Equal(db) {
			return da.Before(db)
		}
		return task.PriorityRank(a.Priority) < task.PriorityRank(b.Priority)
	})
	return out
}

// OverdueCount counts pending tasks whose due date is strictly before today.
// Tasks without a due date are never overdue.
func OverdueCount(tasks []*task.Task, today time.Time) int {
	today = dateOnly(today)
	count := 0
	for _, t := range tasks {
		if t.Done {
			continue
		}
		d, ok, err := task.ParseDue(t.Due)
		if ok && err == nil && d.Before(today) {
			count++
		}
	}
	return count
}

// daysUntil returns whole calendar days from today to the due date.
func daysUntil(due, today time.Time) int {
	return int(due.Sub(today).Hours() / 24)
}

// Score computes the suggestion score for a single pending task. Lower is
// more urgent: due proximity dominates, priority rank is secondary, and the
// category bonus nudges toward contextually fitting work.
func Score(t *task.Task, now time.Time, bonuses BonusTable) float64 {
	today := dateOnly(now)

	due := float64(farFutureDays)
	if d, ok, err := task.ParseDue(t.Due); ok && err == nil {
		days := daysUntil(d, today)
		if days >= 0 {
			due = float64(days)
		} else {
			due = overdueScore
		}
	}

	rank := float64(task.PriorityRank(t.Priority))
	return due + rank + bonuses.Bonus(now.Hour(), t.Category)
}

// SuggestNext picks the pending task with the minimum score, or nil when no
// pending tasks exist. Ties keep the earliest task in input order.
func SuggestNext(tasks []*task.Task, now time.Time, bonuses BonusTable) *task.Task {
	var best *task.Task
	var bestScore float64
	for _, t := range tasks {
		if t.Done {
			continue
		}
		s := Score(t, now, bonuses)
		if best == nil || s < bestScore {
			best = t
			bestScore = s
		}
	}
	return best
}
