package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/spf13/cobra"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage the project roster",
	}

	cmd.AddCommand(
		newMemberAddCmd(app),
		newMemberListCmd(app),
		newMemberUpdateCmd(app),
		newMemberRemoveCmd(app),
		newMemberImportCmd(app),
		newMemberExportCmd(app),
	)

	return cmd
}

func newMemberAddCmd(app *App) *cobra.Command {
	var projectID int64
	var name, role, organization, email, note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a member",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.Member{
				ProjectID:    projectID,
				Name:         name,
				Role:         role,
				Organization: organization,
				Email:        email,
				Note:         note,
			}
			if err := app.Members.Create(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added member %d: %s\n", m.ID, m.Name)
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&role, "role", "", "Role")
	cmd.Flags().StringVar(&organization, "org", "", "Organization")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&note, "note", "", "Note")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := app.Members.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No members found.")
				return nil
			}
			for _, m := range members {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d %-20s %-14s %-16s %s\n",
					m.ID, m.Name, m.Role, m.Organization, m.Email)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newMemberUpdateCmd(app *App) *cobra.Command {
	var name, role, organization, email, note string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			m, err := app.Members.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				m.Name = name
			}
			if cmd.Flags().Changed("role") {
				m.Role = role
			}
			if cmd.Flags().Changed("org") {
				m.Organization = organization
			}
			if cmd.Flags().Changed("email") {
				m.Email = email
			}
			if cmd.Flags().Changed("note") {
				m.Note = note
			}

			if err := app.Members.Update(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated member %d: %s\n", m.ID, m.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&role, "role", "", "Role")
	cmd.Flags().StringVar(&organization, "org", "", "Organization")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&note, "note", "", "Note")

	return cmd
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Members.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed member %d\n", id)
			return nil
		},
	}
}

func newMemberImportCmd(app *App) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import members from a CSV file (all-or-nothing)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			count, err := app.Members.ImportCSV(cmd.Context(), projectID, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d members\n", count)
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newMemberExportCmd(app *App) *cobra.Command {
	var projectID int64
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export members to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Members.ExportCSV(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&out, "out", "members.csv", "Output file")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
