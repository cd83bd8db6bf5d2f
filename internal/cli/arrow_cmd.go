package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/timeline"
	"github.com/spf13/cobra"
)

func newArrowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arrow",
		Short: "Manage timeline arrows",
	}

	cmd.AddCommand(
		newArrowAddCmd(app),
		newArrowListCmd(app),
		newArrowUpdateCmd(app),
		newArrowRemoveCmd(app),
		newArrowReorderCmd(app),
	)

	return cmd
}

func newArrowAddCmd(app *App) *cobra.Command {
	var projectID, parentID int64
	var name, owner, start, end, status string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an arrow, appended to its sibling group",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if status == "" {
					status = string(domain.StatusNotStarted)
				}
				if err := arrowForm(&name, &owner, &start, &end, &status).Run(); err != nil {
					return err
				}
			}

			startDate, err := parseDateFlag(start)
			if err != nil {
				return err
			}
			endDate, err := parseDateFlag(end)
			if err != nil {
				return err
			}

			a := &domain.Arrow{
				ProjectID: projectID,
				Name:      name,
				Owner:     owner,
				StartDate: startDate,
				EndDate:   endDate,
				Status:    domain.Status(status),
			}
			if parentID != 0 {
				a.ParentID = &parentID
			}
			if a.Status == "" {
				a.Status = domain.StatusNotStarted
			}

			if err := app.Arrows.Create(cmd.Context(), a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created arrow %d: %s (position %d)\n", a.ID, a.Name, a.SortOrder)
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	cmd.Flags().Int64Var(&parentID, "parent", 0, "Parent arrow id (nests one level)")
	cmd.Flags().StringVar(&name, "name", "", "Arrow name")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started|in_progress|done)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for fields with a form")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newArrowListCmd(app *App) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's arrows as a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			arrows, err := app.Arrows.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if len(arrows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No arrows found.")
				return nil
			}
			for _, node := range timeline.Flatten(arrows, nil) {
				a := node.Arrow
				indent := strings.Repeat("  ", node.Depth)
				fmt.Fprintf(cmd.OutOrStdout(), "%4d %s%-28s %-12s %s .. %s\n",
					a.ID, indent, a.Name, a.Status, formatDate(a.StartDate), formatDate(a.EndDate))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newArrowUpdateCmd(app *App) *cobra.Command {
	var name, owner, start, end, status string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an arrow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := app.Arrows.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				a.Name = name
			}
			if cmd.Flags().Changed("owner") {
				a.Owner = owner
			}
			if cmd.Flags().Changed("status") {
				a.Status = domain.Status(status)
			}
			if cmd.Flags().Changed("start") {
				if a.StartDate, err = parseDateFlag(start); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end") {
				if a.EndDate, err = parseDateFlag(end); err != nil {
					return err
				}
			}

			if err := app.Arrows.Update(cmd.Context(), a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated arrow %d: %s\n", a.ID, a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Arrow name")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD), empty clears")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD), empty clears")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started|in_progress|done)")

	return cmd
}

func newArrowRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an arrow, its children and their tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Arrows.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed arrow %d\n", id)
			return nil
		},
	}
}

func newArrowReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder ID...",
		Short: "Rewrite sibling order to match the given id sequence",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			if err := app.Arrows.Reorder(cmd.Context(), ids); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reordered %d arrows\n", len(ids))
			return nil
		},
	}
}
