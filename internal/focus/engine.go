// Package focus drives the work/break interval state machine. The engine has
// no scheduling of its own: any periodic driver (a terminal UI, a test loop)
// calls Tick once per second.
package focus

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "focushub/internal/errors"
	"focushub/internal/task"
)

// Phase is the engine's current state.
type Phase string

const (
	PhaseIdle  Phase = "Idle"
	PhaseWork  Phase = "Work"
	PhaseBreak Phase = "Break"
)

// Event signals a phase transition produced by a tick.
type Event int

const (
	EventNone Event = iota
	// EventWorkComplete fires when a work block ends and the break begins.
	EventWorkComplete
	// EventBreakComplete fires when the break ends and the session is logged.
	EventBreakComplete
)

// Recorder receives the side effects of a completed session. *store.Store
// satisfies it.
type Recorder interface {
	CompleteSession(taskName, day string) error
}

// Engine runs at most one focus session at a time.
type Engine struct {
	recorder Recorder
	now      func() time.Time

	phase     Phase
	remaining int // seconds left in the current phase
	workSecs  int
	breakSecs int
	taskName  string
}

// NewEngine creates an idle engine. A nil clock defaults to time.Now.
func NewEngine(recorder Recorder, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{recorder: recorder, now: now, phase: PhaseIdle}
}

// Start begins a new session for the named task. A running session is
// stopped first, so two sessions never run at once. Validation failures
// leave the engine untouched.
func (e *Engine) Start(taskName string, workMin, breakMin int) error {
	if strings.TrimSpace(taskName) == "" {
		return apperrors.MissingTaskError{}
	}
	if workMin <= 0 {
		return apperrors.InvalidDurationError{Field: "work minutes", Value: strconv.Itoa(workMin)}
	}
	if breakMin <= 0 {
		return apperrors.InvalidDurationError{Field: "break minutes", Value: strconv.Itoa(breakMin)}
	}

	if e.phase != PhaseIdle {
		e.Stop()
	}

	e.taskName = taskName
	e.workSecs = workMin * 60
	e.breakSecs = breakMin * 60
	e.remaining = e.workSecs
	e.phase = PhaseWork
	return nil
}

// Tick advances the session by one second. It is a no-op while idle. When a
// work block runs out the engine flows straight into the break on the same
// tick; when the break runs out the session's side effects are committed and
// the engine returns to idle. The returned error comes only from committing.
func (e *Engine) Tick() (Event, error) {
	if e.phase == PhaseIdle {
		return EventNone, nil
	}

	e.remaining--
	if e.remaining > 0 {
		return EventNone, nil
	}

	if e.phase == PhaseWork {
		e.phase = PhaseBreak
		e.remaining = e.breakSecs
		return EventWorkComplete, nil
	}

	e.phase = PhaseIdle
	e.remaining = 0
	day := e.now().Format(task.DueLayout)
	err := e.recorder.CompleteSession(e.taskName, day)
	return EventBreakComplete, err
}

// Stop abandons any in-progress session without committing anything. Safe to
// call while idle.
func (e *Engine) Stop() {
	e.phase = PhaseIdle
	e.remaining = 0
}

// Phase returns the current state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Remaining returns the seconds left in the current phase.
func (e *Engine) Remaining() int {
	return e.remaining
}

// TaskName returns the task the current (or last) session is attributed to.
func (e *Engine) TaskName() string {
	return e.taskName
}

// Display renders the remaining time as MM:SS.
func (e *Engine) Display() string {
	mins, secs := e.remaining/60, e.remaining%60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}
