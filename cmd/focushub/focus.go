package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"focushub/internal/focus"
	"focushub/internal/tui"
)

// focusCmd implements 'focushub focus': the interactive focus-session screen.
func focusCmd() *cobra.Command {
	var workMin, breakMin int
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run focus sessions interactively",
		Run: func(cmd *cobra.Command, _ []string) {
			cfg, err := getConfig()
			if err != nil {
				printError(err)
			}
			if cmd.Flags().Changed("work") {
				cfg.WorkMinutes = workMin
			}
			if cmd.Flags().Changed("break") {
				cfg.BreakMinutes = breakMin
			}

			st, err := getStore()
			if err != nil {
				printError(err)
			}

			engine := focus.NewEngine(st, nil)
			model := tui.New(st, engine, cfg)
			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				printError(err)
			}
		},
	}
	cmd.Flags().IntVar(&workMin, "work", 0, "Default work minutes for the session form")
	cmd.Flags().IntVar(&breakMin, "break", 0, "Default break minutes for the session form")
	return cmd
}
