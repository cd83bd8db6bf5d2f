package cli

import (
	"fmt"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/spf13/cobra"
)

func newIssueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Manage the issue log",
	}

	cmd.AddCommand(
		newIssueAddCmd(app),
		newIssueListCmd(app),
		newIssueUpdateCmd(app),
		newIssueResolveCmd(app),
		newIssueRemoveCmd(app),
	)

	return cmd
}

func newIssueAddCmd(app *App) *cobra.Command {
	var projectID int64
	var title, description, owner, priority, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Open an issue",
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDateFlag(due)
			if err != nil {
				return err
			}

			i := &domain.Issue{
				ProjectID:   projectID,
				Title:       title,
				Description: description,
				Owner:       owner,
				Priority:    domain.IssuePriority(priority),
				DueDate:     dueDate,
			}
			if err := app.Issues.Create(cmd.Context(), i); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened issue %d: %s\n", i.ID, i.Title)
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&title, "title", "", "Issue title")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newIssueListCmd(app *App) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			issues, err := app.Issues.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No issues found.")
				return nil
			}
			for _, i := range issues {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d %-36s %-10s %-12s %s\n",
					i.ID, i.Title, i.Priority, i.Status, formatDate(i.DueDate))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newIssueUpdateCmd(app *App) *cobra.Command {
	var title, description, owner, priority, status, due string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			i, err := app.Issues.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				i.Title = title
			}
			if cmd.Flags().Changed("description") {
				i.Description = description
			}
			if cmd.Flags().Changed("owner") {
				i.Owner = owner
			}
			if cmd.Flags().Changed("priority") {
				i.Priority = domain.IssuePriority(priority)
			}
			if cmd.Flags().Changed("status") {
				i.Status = domain.IssueStatus(status)
			}
			if cmd.Flags().Changed("due") {
				if i.DueDate, err = parseDateFlag(due); err != nil {
					return err
				}
			}

			if err := app.Issues.Update(cmd.Context(), i); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated issue %d: %s\n", i.ID, i.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Issue title")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&status, "status", "", "Status (open|in_progress|resolved|closed)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD), empty clears")

	return cmd
}

func newIssueResolveCmd(app *App) *cobra.Command {
	var resolution string

	cmd := &cobra.Command{
		Use:   "resolve ID",
		Short: "Mark an issue resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Issues.Resolve(cmd.Context(), id, resolution); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resolved issue %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&resolution, "resolution", "", "How the issue was resolved")

	return cmd
}

func newIssueRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Issues.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed issue %d\n", id)
			return nil
		},
	}
}
