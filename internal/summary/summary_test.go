//nolint:testpackage // Tests require internal access for thorough testing
package summary

import (
	"path/filepath"
	"testing"
	"time"

	"focushub/internal/store"
	"focushub/internal/task"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "data.json"))
}

func TestBuildCounts(t *testing.T) {
	st := testStore(t)
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	if _, err := st.Add("Overdue", "Work", task.PriorityHigh, "2026-08-20"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := st.Add("Later", "Work", task.PriorityLow, "2026-09-20"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	finished, err := st.Add("Finished", "Chores", task.PriorityMedium, "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := st.SetDone(finished.ID, true); err != nil {
		t.Fatalf("SetDone failed: %v", err)
	}

	s := Build(st, now)
	if s.TotalTasks != 3 || s.Completed != 1 || s.Pending != 2 {
		t.Errorf("counts = %d/%d/%d, want 3/1/2", s.TotalTasks, s.Completed, s.Pending)
	}
	if s.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", s.Overdue)
	}
}

func TestBuildSevenDayWindow(t *testing.T) {
	st := testStore(t)
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	if _, err := st.Add("Essay", "School", task.PriorityHigh, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	// Two sessions today, one three days ago, one outside the window.
	for _, day := range []string{"2026-08-23", "2026-08-23", "2026-08-20", "2026-08-01"} {
		if err := st.CompleteSession("Essay", day); err != nil {
			t.Fatalf("CompleteSession failed: %v", err)
		}
	}

	s := Build(st, now)
	if s.TotalPomodoros != 4 {
		t.Errorf("TotalPomodoros = %d, want 4", s.TotalPomodoros)
	}

	if len(s.LastSevenDays) != 7 {
		t.Fatalf("window length = %d, want 7", len(s.LastSevenDays))
	}
	if s.LastSevenDays[0].Date != "2026-08-17" || s.LastSevenDays[6].Date != "2026-08-23" {
		t.Errorf("window range = %s..%s, want 2026-08-17..2026-08-23",
			s.LastSevenDays[0].Date, s.LastSevenDays[6].Date)
	}

	wantCounts := []int{0, 0, 0, 1, 0, 0, 2}
	for i, want := range wantCounts {
		if s.LastSevenDays[i].Count != want {
			t.Errorf("window[%d] (%s) = %d, want %d",
				i, s.LastSevenDays[i].Date, s.LastSevenDays[i].Count, want)
		}
	}
}

func TestBuildTopPending(t *testing.T) {
	st := testStore(t)
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, n := range names {
		if _, err := st.Add(n, "Work", task.PriorityMedium, ""); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	urgent, err := st.Add("urgent", "Work", task.PriorityHigh, "2026-08-24")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	s := Build(st, now)
	if len(s.TopPending) != 5 {
		t.Fatalf("TopPending length = %d, want 5", len(s.TopPending))
	}
	if s.TopPending[0].ID != urgent.ID {
		t.Errorf("TopPending[0] = %s, want the dated high-priority task", s.TopPending[0].Name)
	}
	for _, tk := range s.TopPending {
		if tk.Done {
			t.Errorf("TopPending contains completed task %q", tk.Name)
		}
	}
}
