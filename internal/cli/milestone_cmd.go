package cli

import (
	"fmt"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/spf13/cobra"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage milestones",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
		newMilestoneUpdateCmd(app),
		newMilestoneRemoveCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var projectID int64
	var name, description, due, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDateFlag(due)
			if err != nil {
				return err
			}

			m := &domain.Milestone{
				ProjectID:   projectID,
				Name:        name,
				Description: description,
				DueDate:     dueDate,
				Color:       color,
			}
			if err := app.Milestones.Create(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created milestone %d: %s\n", m.ID, m.Name)
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&name, "name", "", "Milestone name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&color, "color", "", `Marker color hex, e.g. "#E91E63"`)
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			milestones, err := app.Milestones.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if len(milestones) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No milestones found.")
				return nil
			}
			for _, m := range milestones {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d %-28s %s %s\n",
					m.ID, m.Name, formatDate(m.DueDate), m.Color)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newMilestoneUpdateCmd(app *App) *cobra.Command {
	var name, description, due, color string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			m, err := app.Milestones.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				m.Name = name
			}
			if cmd.Flags().Changed("description") {
				m.Description = description
			}
			if cmd.Flags().Changed("color") {
				m.Color = color
			}
			if cmd.Flags().Changed("due") {
				if m.DueDate, err = parseDateFlag(due); err != nil {
					return err
				}
			}

			if err := app.Milestones.Update(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated milestone %d: %s\n", m.ID, m.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Milestone name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD), empty clears")
	cmd.Flags().StringVar(&color, "color", "", "Marker color hex")

	return cmd
}

func newMilestoneRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Milestones.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed milestone %d\n", id)
			return nil
		},
	}
}
