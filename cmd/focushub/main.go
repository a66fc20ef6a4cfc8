package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"focushub/internal/config"
	"focushub/internal/output"
	"focushub/internal/schedule"
	"focushub/internal/store"
	"focushub/internal/summary"
	"focushub/internal/task"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	configPath string
	dataPath   string
	formatter  output.Formatter
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "focushub",
		Short: "A personal task tracker with a focus-session timer",
		Long:  "focushub - track tasks, run pomodoro-style focus sessions, and review your activity.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.focushub/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Data file (default ~/.focushub/data.json)")

	rootCmd.AddCommand(
		addCmd(),
		editCmd(),
		rmCmd(),
		doneCmd(),
		undoneCmd(),
		listCmd(),
		overdueCmd(),
		suggestCmd(),
		summaryCmd(),
		categoriesCmd(),
		focusCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

func getStore() (*store.Store, error) {
	path := dataPath
	if path == "" {
		cfg, err := getConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.DataFile
	}
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(path), nil
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// addCmd implements 'focushub add'.
func addCmd() *cobra.Command {
	var category string
	var priority string
	var due string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			st, err := getStore()
			if err != nil {
				printError(err)
			}

			t, err := st.Add(args[0], category, task.Priority(priority), due)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "Personal", "Task category")
	cmd.Flags().StringVarP(&priority, "priority", "p", "Medium", "Priority (High, Medium, Low)")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date (YYYY-MM-DD, empty for no deadline)")
	return cmd
}

// editCmd implements 'focushub edit'. Flags left unset keep the current value.
func editCmd() *cobra.Command {
	var name string
	var category string
	var priority string
	var due string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			st, err := getStore()
			if err != nil {
				printError(err)
			}

			t, err := st.Get(args[0])
			if err != nil {
				printError(err)
			}

			if !cmd.Flags().Changed("name") {
				name = t.Name
			}
			if !cmd.Flags().Changed("category") {
				category = t.Category
			}
			if !cmd.Flags().Changed("priority") {
				priority = string(t.Priority)
			}
			if !cmd.Flags().Changed("due") {
				due = t.Due
			}

			t, err = st.Edit(args[0], name, category, task.Priority(priority), due)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Task name")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Task category")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (High, Medium, Low)")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date (YYYY-MM-DD, empty for no deadline)")
	return cmd
}

// rmCmd implements 'focushub rm'.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			st, err := getStore()
			if err != nil {
				printError(err)
			}

			if err = st.Delete(args[0]); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Removed task %s", args[0])))
		},
	}
}

// doneCmd implements 'focushub done'.
func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			st, err := getStore()
			if err != nil {
				printError(err)
			}

			t, err := st.SetDone(args[0], true)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// undoneCmd implements 'focushub undone'.
func undoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undone <id>",
		Short: "Mark a task as not completed",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			st, err := getStore()
			if err != nil {
				printError(err)
			}

			t, err := st.SetDone(args[0], false)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// listCmd implements 'focushub list'.
func listCmd() *cobra.Command {
	var pendingOnly, doneOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in display order",
		Run: func(_ *cobra.Command, _ []string) {
			st, err := getStore()
			if err != nil {
				printError(err)
			}

			tasks := schedule.Sort(st.Tasks(), time.Now())
			if pendingOnly || doneOnly {
				filtered := tasks[:0]
				for _, t := range tasks {
					if (pendingOnly && !t.Done) || (doneOnly && t.Done) {
						filtered = append(filtered, t)
					}
				}
				tasks = filtered
			}
			printOutput(formatter.FormatTaskList(tasks))
		},
	}
	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "Show only pending tasks")
	cmd.Flags().BoolVar(&doneOnly, "done", false, "Show only completed tasks")
	return cmd
}

// overdueCmd implements 'focushub overdue'.
func overdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "Count overdue tasks",
		Run: func(_ *cobra.Command, _ []string) {
			st, err := getStore()
			if err != nil {
				printError(err)
			}

			count := schedule.OverdueCount(st.Tasks(), time.Now())
			printOutput(formatter.FormatMessage(fmt.Sprintf("Overdue tasks: %d", count)))
		},
	}
}

// suggestCmd implements 'focushub suggest'.
func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest the best next task for right now",
		Run: func(_ *cobra.Command, _ []string) {
			cfg, err := getConfig()
			if err != nil {
				printError(err)
			}
			st, err := getStore()
			if err != nil {
				printError(err)
			}

			best := schedule.SuggestNext(st.Tasks(), time.Now(), cfg.BonusTable())
			if best == nil {
				printOutput(formatter.FormatMessage("No pending tasks."))
				return
			}
			printOutput(formatter.FormatSuggestion(best))
		},
	}
}

// summaryCmd implements 'focushub summary'.
func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the activity summary",
		Run: func(_ *cobra.Command, _ []string) {
			st, err := getStore()
			if err != nil {
				printError(err)
			}

			printOutput(formatter.FormatSummary(summary.Build(st, time.Now())))
		},
	}
}

// categoriesCmd implements 'focushub categories'.
func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the known task categories",
		Run: func(_ *cobra.Command, _ []string) {
			st, err := getStore()
			if err != nil {
				printError(err)
			}

			for _, c := range st.Categories() {
				printOutput(formatter.FormatMessage(c))
			}
		},
	}
}
