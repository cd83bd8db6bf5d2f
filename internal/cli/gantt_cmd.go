package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/yabane/internal/watcher"
)

func newGanttCmd(app *App) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Open the interactive Gantt view",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("gantt requires an interactive terminal")
			}

			model := newGanttModel(app, projectID)
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

			// Reload when another process writes the database.
			w, err := watcher.NewDBWatcher(app.Config.DBPath, 0, func() {
				program.Send(ganttReloadMsg{})
			})
			if err != nil {
				return err
			}
			if err := w.Start(cmd.Context()); err != nil {
				return err
			}
			defer w.Stop()

			final, err := program.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(ganttModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
