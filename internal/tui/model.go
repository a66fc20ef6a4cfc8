// Package tui is the interactive focus-session screen. It owns the periodic
// one-second tick that drives the focus engine; the engine itself stays
// scheduling-agnostic.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focushub/internal/config"
	apperrors "focushub/internal/errors"
	"focushub/internal/focus"
	"focushub/internal/schedule"
	"focushub/internal/store"
	"focushub/internal/task"
)

// pane identifies which widget has keyboard focus.
type pane int

const (
	paneTasks pane = iota
	paneWork
	paneBreak
)

type keyMap struct {
	Start key.Binding
	Stop  key.Binding
	Tab   key.Binding
	Quit  key.Binding
}

//nolint:gochecknoglobals // Keymap is static
var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start session"),
	),
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// tickMsg drives the engine once per second.
type tickMsg time.Time

// taskItem adapts a task for bubbles/list.
type taskItem struct {
	t *task.Task
}

func (i taskItem) Title() string { return i.t.Name }

func (i taskItem) Description() string {
	return fmt.Sprintf("%s | %s | due %s | pomodoros %d",
		i.t.Category, i.t.Priority, task.FormatDue(i.t.Due), i.t.Pomodoros)
}

func (i taskItem) FilterValue() string { return i.t.Name }

// Model is the bubbletea model for the focus screen.
type Model struct {
	store   *store.Store
	engine  *focus.Engine
	bonuses schedule.BonusTable

	taskList   list.Model
	workInput  textinput.Model
	breakInput textinput.Model
	activePane pane

	notice string
	err    error
	width  int
	height int
}

// New builds the focus screen over the given store and engine.
func New(st *store.Store, engine *focus.Engine, cfg config.Config) Model {
	delegate := list.NewDefaultDelegate()
	taskList := list.New(nil, delegate, 0, 0)
	taskList.Title = "Pending tasks"
	taskList.SetShowStatusBar(false)
	taskList.SetFilteringEnabled(true)

	workInput := textinput.New()
	workInput.Placeholder = "25"
	workInput.CharLimit = 4
	workInput.Width = 6
	workInput.SetValue(strconv.Itoa(cfg.WorkMinutes))

	breakInput := textinput.New()
	breakInput.Placeholder = "5"
	breakInput.CharLimit = 4
	breakInput.Width = 6
	breakInput.SetValue(strconv.Itoa(cfg.BreakMinutes))

	m := Model{
		store:      st,
		engine:     engine,
		bonuses:    cfg.BonusTable(),
		taskList:   taskList,
		workInput:  workInput,
		breakInput: breakInput,
		activePane: paneTasks,
	}
	m.reloadTasks()
	return m
}

// reloadTasks rebuilds the list items from the store's pending tasks.
func (m *Model) reloadTasks() {
	now := time.Now()
	pending := make([]*task.Task, 0)
	for _, t := range m.store.Tasks() {
		if !t.Done {
			pending = append(pending, t)
		}
	}
	sorted := schedule.Sort(pending, now)

	items := make([]list.Item, 0, len(sorted))
	for _, t := range sorted {
		items = append(items, taskItem{t: t})
	}
	m.taskList.SetItems(items)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.taskList.SetSize(msg.Width-2, msg.Height-10)
		return m, nil

	case tickMsg:
		event, err := m.engine.Tick()
		if err != nil {
			m.err = err
		}
		switch event {
		case focus.EventWorkComplete:
			m.notice = "Work block complete — break started"
		case focus.EventBreakComplete:
			m.notice = "Break complete! Session logged."
			m.reloadTasks()
		case focus.EventNone:
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering, the list owns every keystroke.
	if m.activePane == paneTasks && m.taskList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Tab):
		m.activePane = (m.activePane + 1) % 3
		m.workInput.Blur()
		m.breakInput.Blur()
		switch m.activePane {
		case paneWork:
			m.workInput.Focus()
		case paneBreak:
			m.breakInput.Focus()
		case paneTasks:
		}
		return m, nil

	case key.Matches(msg, keys.Start):
		m.startSession()
		return m, nil

	case key.Matches(msg, keys.Stop) && m.activePane == paneTasks:
		m.engine.Stop()
		m.notice = "Session stopped"
		return m, nil

	case key.Matches(msg, keys.Quit) && m.activePane == paneTasks:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.activePane {
	case paneTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case paneWork:
		m.workInput, cmd = m.workInput.Update(msg)
	case paneBreak:
		m.breakInput, cmd = m.breakInput.Update(msg)
	}
	return m, cmd
}

// startSession validates the inputs and starts the engine. A running session
// is replaced, never doubled.
func (m *Model) startSession() {
	m.err = nil
	m.notice = ""

	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		m.err = apperrors.MissingTaskError{}
		return
	}

	workMin, err := parseMinutes("work minutes", m.workInput.Value())
	if err != nil {
		m.err = err
		return
	}
	breakMin, err := parseMinutes("break minutes", m.breakInput.Value())
	if err != nil {
		m.err = err
		return
	}

	if err := m.engine.Start(item.t.Name, workMin, breakMin); err != nil {
		m.err = err
		return
	}
	m.notice = fmt.Sprintf("Focusing on %q", item.t.Name)
}

func parseMinutes(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, apperrors.InvalidDurationError{Field: field, Value: raw}
	}
	return n, nil
}

// View renders the focus screen.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("focushub"))
	sb.WriteString("\n\n")

	if m.engine.Phase() == focus.PhaseIdle {
		sb.WriteString(idleTimerStyle.Render("Timer: 00:00 (idle)"))
	} else {
		sb.WriteString(timerStyle.Render(fmt.Sprintf("%s %s — %s",
			m.engine.Phase(), m.engine.Display(), m.engine.TaskName())))
	}
	sb.WriteString("\n")

	if suggested := schedule.SuggestNext(m.store.Tasks(), time.Now(), m.bonuses); suggested != nil {
		sb.WriteString(helpStyle.Render("Suggested: " + suggested.Name))
		sb.WriteString("\n")
	}

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		inputLabelStyle.Render("Work min: ")+m.workInput.View(),
		inputLabelStyle.Render("  Break min: ")+m.breakInput.View(),
	))
	sb.WriteString("\n\n")

	sb.WriteString(m.taskList.View())
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(errStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	} else if m.notice != "" {
		sb.WriteString(noticeStyle.Render(m.notice))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("enter start · s stop · tab switch · q quit"))
	return sb.String()
}
