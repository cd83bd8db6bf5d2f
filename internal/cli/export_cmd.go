package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/yabane/internal/service"
	"github.com/spf13/cobra"
)

// sectionsFromNames maps config/flag section names onto the service selection.
func sectionsFromNames(names []string) (service.ExportSections, error) {
	var s service.ExportSections
	for _, name := range names {
		switch name {
		case "overview":
			s.Overview = true
		case "arrows":
			s.Arrows = true
		case "wbs":
			s.Wbs = true
		case "milestones":
			s.Milestones = true
		case "members":
			s.Members = true
		case "issues":
			s.Issues = true
		default:
			return s, fmt.Errorf("unknown export section %q", name)
		}
	}
	return s, nil
}

func newExportCmd(app *App) *cobra.Command {
	var projectID int64
	var out string
	var sections []string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a project to a styled .xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := sections
			if len(names) == 0 {
				names = app.Config.Export.Sections
			}
			selected, err := sectionsFromNames(names)
			if err != nil {
				return err
			}

			data, err := app.Export.Workbook(cmd.Context(), projectID, selected)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d sections)\n", out, len(names))
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&out, "out", "project.xlsx", "Output file")
	cmd.Flags().StringSliceVar(&sections, "sections", nil,
		"Sheets to include (overview,arrows,wbs,milestones,members,issues); defaults from config")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
