package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "focushub/internal/errors"
	"focushub/internal/task"
)

const (
	hubDir   = ".focushub"
	dataFile = "data.json"
)

// defaultCategories seeds the category registry for fresh stores.
//
//nolint:gochecknoglobals // Seed data, never mutated
var defaultCategories = []string{"School", "Chores", "Health", "Work", "Personal"}

// Stats is the process-wide aggregate persisted alongside tasks.
type Stats struct {
	TotalPomodoros int            `json:"total_pomodoros"`
	DailyStreaks   map[string]int `json:"daily_streaks"`
}

// document is the on-disk shape: one JSON file holding everything.
type document struct {
	Tasks []*task.Task `json:"tasks"`
	Stats Stats        `json:"stats"`
}

// Store owns the task collection, aggregate statistics, and the category
// registry. Every mutation is followed by a whole-file write; a failed write
// leaves the in-memory state authoritative.
type Store struct {
	path       string
	tasks      []*task.Task
	stats      Stats
	categories map[string]bool
}

// DefaultPath returns the standard data file location (~/.focushub/data.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, hubDir, dataFile), nil
}

// Open loads the store from path. A missing file yields an empty store; a
// malformed file is logged and also yields an empty store, never an error.
func Open(path string) *Store {
	s := &Store{
		path:       path,
		stats:      Stats{DailyStreaks: map[string]int{}},
		categories: map[string]bool{},
	}
	for _, c := range defaultCategories {
		s.categories[c] = true
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s
	}
	if err != nil {
		slog.Warn("could not read data file, starting empty", "path", path, "error", err)
		return s
	}

	var doc document
	if unmarshalErr := json.Unmarshal(data, &doc); unmarshalErr != nil {
		slog.Warn("malformed data file, starting empty", "path", path, "error", unmarshalErr)
		return s
	}

	s.tasks = doc.Tasks
	s.stats = doc.Stats
	if s.stats.DailyStreaks == nil {
		s.stats.DailyStreaks = map[string]int{}
	}
	for _, t := range s.tasks {
		if t.Category != "" {
			s.categories[t.Category] = true
		}
	}
	return s
}

// Path returns the data file location backing this store.
func (s *Store) Path() string {
	return s.path
}

// save writes the whole document to disk, pretty-printed.
func (s *Store) save() error {
	//nolint:gosec // G301: 0755 is appropriate for a user-owned data directory
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	doc := document{Tasks: s.tasks, Stats: s.stats}
	if doc.Tasks == nil {
		doc.Tasks = []*task.Task{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	//nolint:gosec // G306: 0644 is appropriate for a user-readable data file
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// validate checks task fields shared by Add and Edit. Nothing is mutated on
// a validation failure.
func validate(name string, priority task.Priority, due string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.EmptyNameError{}
	}
	if !task.IsValidPriority(priority) {
		return apperrors.InvalidPriorityError{Value: string(priority)}
	}
	if _, _, err := task.ParseDue(due); err != nil {
		return apperrors.InvalidDateError{Value: due}
	}
	return nil
}

// Add creates a new task and persists the store.
func (s *Store) Add(name, category string, priority task.Priority, due string) (*task.Task, error) {
	if err := validate(name, priority, due); err != nil {
		return nil, err
	}

	t := &task.Task{
		ID:       task.NewID(),
		Name:     strings.TrimSpace(name),
		Category: category,
		Priority: priority,
		Due:      due,
	}
	s.tasks = append(s.tasks, t)
	s.RegisterCategory(category)
	return t, s.save()
}

// Edit replaces the editable fields of an existing task. Completion state and
// the pomodoro counter are untouched.
func (s *Store) Edit(id, name, category string, priority task.Priority, due string) (*task.Task, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := validate(name, priority, due); err != nil {
		return nil, err
	}

	t.Name = strings.TrimSpace(name)
	t.Category = category
	t.Priority = priority
	t.Due = due
	s.RegisterCategory(category)
	return t, s.save()
}

// Delete removes a task by ID.
func (s *Store) Delete(id string) error {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.save()
		}
	}
	return apperrors.TaskNotFoundError{ID: id}
}

// SetDone updates a task's completion flag.
func (s *Store) SetDone(id string, done bool) (*task.Task, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	t.Done = done
	return t, s.save()
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (*task.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, apperrors.TaskNotFoundError{ID: id}
}

// FindByName returns the first task with the given name, or nil.
func (s *Store) FindByName(name string) *task.Task {
	for _, t := range s.tasks {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Tasks returns the current task collection. Callers treat the result as
// read-only; mutations go through Store methods.
func (s *Store) Tasks() []*task.Task {
	out := make([]*task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Stats returns the current aggregate statistics.
func (s *Store) Stats() Stats {
	return s.stats
}

// StreakFor returns the recorded session count for a calendar day.
func (s *Store) StreakFor(day string) int {
	return s.stats.DailyStreaks[day]
}

// RegisterCategory adds a category to the registry if absent.
func (s *Store) RegisterCategory(name string) {
	if name != "" {
		s.categories[name] = true
	}
}

// Categories returns the registered category vocabulary, sorted.
func (s *Store) Categories() []string {
	out := make([]string, 0, len(s.categories))
	for c := range s.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// CompleteSession commits the side effects of a finished focus session. The
// global counter and the day's streak entry always advance; the per-task
// counter is skipped silently when the referenced task no longer exists.
func (s *Store) CompleteSession(taskName, day string) error {
	if t := s.FindByName(taskName); t != nil {
		t.Pomodoros++
	}
	s.stats.TotalPomodoros++
	s.stats.DailyStreaks[day]++
	return s.save()
}
