package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/repository"
	"github.com/spf13/cobra"
)

func newPurposeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purpose",
		Short: "Manage the project's background block",
	}

	cmd.AddCommand(
		newPurposeShowCmd(app),
		newPurposeSetCmd(app),
	)

	return cmd
}

func newPurposeShowCmd(app *App) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the project's purpose",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Purposes.GetByProject(cmd.Context(), projectID)
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No purpose set.")
				return nil
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Background:   %s\n", p.Background)
			fmt.Fprintf(out, "Objective:    %s\n", p.Objective)
			fmt.Fprintf(out, "Scope:        %s\n", p.Scope)
			fmt.Fprintf(out, "Out of scope: %s\n", p.OutOfScope)
			fmt.Fprintf(out, "Assumptions:  %s\n", p.Assumption)
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newPurposeSetCmd(app *App) *cobra.Command {
	var projectID int64
	var background, objective, scope, outOfScope, assumption string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the project's purpose (unset flags keep their value)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Purposes.GetByProject(cmd.Context(), projectID)
			if errors.Is(err, repository.ErrNotFound) {
				p = &domain.Purpose{ProjectID: projectID}
			} else if err != nil {
				return err
			}

			if cmd.Flags().Changed("background") {
				p.Background = background
			}
			if cmd.Flags().Changed("objective") {
				p.Objective = objective
			}
			if cmd.Flags().Changed("scope") {
				p.Scope = scope
			}
			if cmd.Flags().Changed("out-of-scope") {
				p.OutOfScope = outOfScope
			}
			if cmd.Flags().Changed("assumption") {
				p.Assumption = assumption
			}

			if err := app.Purposes.Upsert(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved purpose for project %d\n", projectID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&background, "background", "", "Background")
	cmd.Flags().StringVar(&objective, "objective", "", "Objective")
	cmd.Flags().StringVar(&scope, "scope", "", "Scope")
	cmd.Flags().StringVar(&outOfScope, "out-of-scope", "", "Out of scope")
	cmd.Flags().StringVar(&assumption, "assumption", "", "Assumptions")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
