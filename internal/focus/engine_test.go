//nolint:testpackage // Tests require internal access for thorough testing
package focus

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	apperrors "focushub/internal/errors"
	"focushub/internal/store"
	"focushub/internal/task"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	}
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "data.json"))
}

func TestStartValidation(t *testing.T) {
	e := NewEngine(testStore(t), fixedClock())

	tests := []struct {
		name     string
		taskName string
		work     int
		brk      int
		wantErr  error
	}{
		{"empty task", "", 25, 5, apperrors.MissingTaskError{}},
		{"whitespace task", "  ", 25, 5, apperrors.MissingTaskError{}},
		{"zero work", "Essay", 0, 5, apperrors.InvalidDurationError{Field: "work minutes", Value: "0"}},
		{"negative break", "Essay", 25, -1, apperrors.InvalidDurationError{Field: "break minutes", Value: "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.Start(tt.taskName, tt.work, tt.brk)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Start() error = %v, want %v", err, tt.wantErr)
			}
			if e.Phase() != PhaseIdle {
				t.Errorf("failed Start should leave the engine idle, got %s", e.Phase())
			}
		})
	}
}

func TestFullSessionLifecycle(t *testing.T) {
	st := testStore(t)
	if _, err := st.Add("Essay", "School", task.PriorityHigh, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	e := NewEngine(st, fixedClock())
	if err := e.Start("Essay", 1, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if e.Phase() != PhaseWork || e.Remaining() != 60 {
		t.Fatalf("after Start: phase=%s remaining=%d, want Work/60", e.Phase(), e.Remaining())
	}

	// 59 quiet ticks through the work block.
	for i := 0; i < 59; i++ {
		event, err := e.Tick()
		if err != nil {
			t.Fatalf("Tick %d failed: %v", i+1, err)
		}
		if event != EventNone {
			t.Fatalf("Tick %d event = %v, want EventNone", i+1, event)
		}
	}
	if e.Remaining() != 1 {
		t.Fatalf("remaining before transition = %d, want 1", e.Remaining())
	}

	// Tick 60: work completes and the break starts on the same tick.
	event, err := e.Tick()
	if err != nil {
		t.Fatalf("transition tick failed: %v", err)
	}
	if event != EventWorkComplete {
		t.Errorf("tick 60 event = %v, want EventWorkComplete", event)
	}
	if e.Phase() != PhaseBreak || e.Remaining() != 60 {
		t.Errorf("after work block: phase=%s remaining=%d, want Break/60", e.Phase(), e.Remaining())
	}

	// Nothing committed yet.
	if st.Stats().TotalPomodoros != 0 {
		t.Error("no side effects should occur before the break completes")
	}

	// 60 more ticks finish the break and commit.
	for i := 0; i < 59; i++ {
		if _, err := e.Tick(); err != nil {
			t.Fatalf("break tick %d failed: %v", i+1, err)
		}
	}
	event, err = e.Tick()
	if err != nil {
		t.Fatalf("final tick failed: %v", err)
	}
	if event != EventBreakComplete {
		t.Errorf("tick 120 event = %v, want EventBreakComplete", event)
	}
	if e.Phase() != PhaseIdle || e.Remaining() != 0 {
		t.Errorf("after session: phase=%s remaining=%d, want Idle/0", e.Phase(), e.Remaining())
	}

	if st.Stats().TotalPomodoros != 1 {
		t.Errorf("TotalPomodoros = %d, want 1", st.Stats().TotalPomodoros)
	}
	if st.StreakFor("2026-08-23") != 1 {
		t.Errorf("today's streak = %d, want 1", st.StreakFor("2026-08-23"))
	}
	essay := st.FindByName("Essay")
	if essay == nil || essay.Pomodoros != 1 {
		t.Errorf("task pomodoros = %+v, want 1", essay)
	}
}

func TestStopDiscardsProgress(t *testing.T) {
	st := testStore(t)
	if _, err := st.Add("Essay", "School", task.PriorityHigh, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	e := NewEngine(st, fixedClock())
	if err := e.Start("Essay", 1, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 30; i++ {
		if _, err := e.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
	}

	e.Stop()
	if e.Phase() != PhaseIdle || e.Remaining() != 0 {
		t.Errorf("after Stop: phase=%s remaining=%d, want Idle/0", e.Phase(), e.Remaining())
	}
	if st.Stats().TotalPomodoros != 0 {
		t.Error("Stop must not commit any counters")
	}

	// Stop while idle is a no-op.
	e.Stop()
	if e.Phase() != PhaseIdle {
		t.Error("Stop on idle engine should stay idle")
	}
}

func TestTickWhileIdleIsNoOp(t *testing.T) {
	e := NewEngine(testStore(t), fixedClock())

	for i := 0; i < 5; i++ {
		event, err := e.Tick()
		if err != nil {
			t.Fatalf("idle Tick failed: %v", err)
		}
		if event != EventNone {
			t.Errorf("idle Tick event = %v, want EventNone", event)
		}
		if e.Remaining() != 0 {
			t.Errorf("idle Tick changed remaining to %d", e.Remaining())
		}
	}
}

func TestStartReplacesRunningSession(t *testing.T) {
	st := testStore(t)
	if _, err := st.Add("First", "Work", task.PriorityHigh, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := st.Add("Second", "Work", task.PriorityHigh, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	e := NewEngine(st, fixedClock())
	if err := e.Start("First", 2, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := e.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
	}

	if err := e.Start("Second", 1, 1); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if e.Phase() != PhaseWork || e.Remaining() != 60 || e.TaskName() != "Second" {
		t.Errorf("after restart: phase=%s remaining=%d task=%s, want Work/60/Second",
			e.Phase(), e.Remaining(), e.TaskName())
	}

	// Complete the replacement; exactly one session's effects land.
	for i := 0; i < 120; i++ {
		if _, err := e.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
	}
	if st.Stats().TotalPomodoros != 1 {
		t.Errorf("TotalPomodoros = %d, want 1", st.Stats().TotalPomodoros)
	}
	if first := st.FindByName("First"); first.Pomodoros != 0 {
		t.Errorf("abandoned task pomodoros = %d, want 0", first.Pomodoros)
	}
	if second := st.FindByName("Second"); second.Pomodoros != 1 {
		t.Errorf("completed task pomodoros = %d, want 1", second.Pomodoros)
	}
}

func TestDeletedTaskStillCommitsGlobals(t *testing.T) {
	st := testStore(t)
	tk, err := st.Add("Doomed", "Work", task.PriorityHigh, "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	e := NewEngine(st, fixedClock())
	if err := e.Start("Doomed", 1, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Delete the referenced task mid-session.
	if err := st.Delete(tk.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	for i := 0; i < 120; i++ {
		if _, err := e.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
	}

	if e.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want Idle", e.Phase())
	}
	if st.Stats().TotalPomodoros != 1 {
		t.Errorf("TotalPomodoros = %d, want 1", st.Stats().TotalPomodoros)
	}
	if st.StreakFor("2026-08-23") != 1 {
		t.Errorf("streak = %d, want 1", st.StreakFor("2026-08-23"))
	}
}

func TestDisplay(t *testing.T) {
	e := NewEngine(testStore(t), fixedClock())
	if got := e.Display(); got != "00:00" {
		t.Errorf("idle Display = %q, want 00:00", got)
	}

	if err := e.Start("X", 25, 5); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if got := e.Display(); got != "25:00" {
		t.Errorf("Display = %q, want 25:00", got)
	}
	if _, err := e.Tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if got := e.Display(); got != "24:59" {
		t.Errorf("Display = %q, want 24:59", got)
	}
}
