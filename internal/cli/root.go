// Package cli wires the cobra command tree and the gantt TUI.
package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/config"
	"github.com/alexanderramin/yabane/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects   service.ProjectService
	Arrows     service.ArrowService
	Wbs        service.WbsService
	Milestones service.MilestoneService
	Members    service.MemberService
	Issues     service.IssueService
	Purposes   service.PurposeService
	Export     service.ExportService
	Config     config.Config
}

// NewRootCmd creates the top-level "yabane" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "yabane",
		Short:         "Project timelines with arrow bars, WBS tasks and styled exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newArrowCmd(app),
		newWbsCmd(app),
		newMilestoneCmd(app),
		newMemberCmd(app),
		newIssueCmd(app),
		newPurposeCmd(app),
		newExportCmd(app),
		newGanttCmd(app),
	)

	return root
}

const dateLayout = "2006-01-02"

// parseDateFlag turns a YYYY-MM-DD flag value into a local-midnight time.
// An empty value means unset.
func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateLayout)
}
