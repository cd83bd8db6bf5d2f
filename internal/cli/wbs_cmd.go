package cli

import (
	"fmt"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/state"
	"github.com/alexanderramin/yabane/internal/wbs"
	"github.com/spf13/cobra"
)

func newWbsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wbs",
		Short: "Manage WBS tasks",
	}

	cmd.AddCommand(
		newWbsAddCmd(app),
		newWbsListCmd(app),
		newWbsUpdateCmd(app),
		newWbsRemoveCmd(app),
		newWbsReorderCmd(app),
	)

	return cmd
}

func newWbsAddCmd(app *App) *cobra.Command {
	var arrowID int64
	var name, owner, start, end, status string
	var progress int
	var estimated, actual float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task under a child arrow",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDateFlag(start)
			if err != nil {
				return err
			}
			endDate, err := parseDateFlag(end)
			if err != nil {
				return err
			}

			w := &domain.WbsItem{
				ArrowID:   arrowID,
				Name:      name,
				Owner:     owner,
				StartDate: startDate,
				EndDate:   endDate,
				Status:    domain.Status(status),
				Progress:  progress,
			}
			if w.Status == "" {
				w.Status = domain.StatusNotStarted
			}
			if cmd.Flags().Changed("estimated") {
				w.EstimatedHours = &estimated
			}
			if cmd.Flags().Changed("actual") {
				w.ActualHours = &actual
			}

			if err := app.Wbs.Create(cmd.Context(), w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %d: %s\n", w.ID, w.Name)
			return nil
		},
	}

	cmd.Flags().Int64Var(&arrowID, "arrow", 0, "Arrow id the task belongs to")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started|in_progress|done)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress 0-100")
	cmd.Flags().Float64Var(&estimated, "estimated", 0, "Estimated hours")
	cmd.Flags().Float64Var(&actual, "actual", 0, "Actual hours")
	_ = cmd.MarkFlagRequired("arrow")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWbsListCmd(app *App) *cobra.Command {
	var projectID int64
	var owner, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's WBS rows, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			arrows, err := app.Arrows.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			items, err := app.Wbs.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}

			var filter wbs.Filter
			if owner != "" {
				filter.Owner = &owner
			}
			if status != "" {
				s := domain.Status(status)
				filter.Status = &s
			}

			rows := wbs.BuildRows(arrows, items, filter)
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			for _, row := range rows {
				parent, child := "", ""
				if row.ShowParent && row.Parent != nil {
					parent = row.Parent.Name
				}
				if row.ShowChild && row.Child != nil {
					child = row.Child.Name
				}
				switch row.Type {
				case wbs.RowTask:
					fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-16s %-24s %-12s %3d%% %s .. %s\n",
						parent, child, row.Task.Name, row.Task.Status, row.Task.Progress,
						formatDate(row.Task.StartDate), formatDate(row.Task.EndDate))
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-16s\n", parent, child)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&owner, "owner", "", "Only rows owned by this member")
	cmd.Flags().StringVar(&status, "status", "", "Only rows with this status")
	_ = cmd.MarkFlagRequired("project")

	// Fuzzy-complete --owner from owners already used in the project.
	_ = cmd.RegisterFlagCompletionFunc("owner",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			items, err := app.Wbs.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			owners := state.NewWbsSet(items).Owners()
			return state.SuggestOwners(toComplete, owners), cobra.ShellCompDirectiveNoFileComp
		})

	return cmd
}

func newWbsUpdateCmd(app *App) *cobra.Command {
	var name, owner, start, end, status string
	var progress int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			w, err := app.Wbs.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				w.Name = name
			}
			if cmd.Flags().Changed("owner") {
				w.Owner = owner
			}
			if cmd.Flags().Changed("status") {
				w.Status = domain.Status(status)
			}
			if cmd.Flags().Changed("progress") {
				w.Progress = progress
			}
			if cmd.Flags().Changed("start") {
				if w.StartDate, err = parseDateFlag(start); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end") {
				if w.EndDate, err = parseDateFlag(end); err != nil {
					return err
				}
			}

			if err := app.Wbs.Update(cmd.Context(), w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d: %s\n", w.ID, w.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD), empty clears")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD), empty clears")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started|in_progress|done)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress 0-100")

	return cmd
}

func newWbsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Wbs.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %d\n", id)
			return nil
		},
	}
}

func newWbsReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder ID...",
		Short: "Rewrite task order to match the given id sequence",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			if err := app.Wbs.Reorder(cmd.Context(), ids); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reordered %d tasks\n", len(ids))
			return nil
		},
	}
}
