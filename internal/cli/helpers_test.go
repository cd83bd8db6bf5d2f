package cli

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/yabane/internal/config"
	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/repository"
	"github.com/alexanderramin/yabane/internal/service"
	"github.com/alexanderramin/yabane/internal/testutil"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// newTestApp wires a full App over an in-memory database.
func newTestApp(t *testing.T) (*App, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	arrows := repository.NewSQLiteArrowRepo(database)
	items := repository.NewSQLiteWbsItemRepo(database)
	milestones := repository.NewSQLiteMilestoneRepo(database)
	members := repository.NewSQLiteMemberRepo(database)
	issues := repository.NewSQLiteIssueRepo(database)
	purposes := repository.NewSQLitePurposeRepo(database)

	app := &App{
		Projects:   service.NewProjectService(repository.NewSQLiteProjectRepo(database)),
		Arrows:     service.NewArrowService(arrows, uow),
		Wbs:        service.NewWbsService(items, uow),
		Milestones: service.NewMilestoneService(milestones, uow),
		Members:    service.NewMemberService(members, uow),
		Issues:     service.NewIssueService(issues),
		Purposes:   service.NewPurposeService(purposes),
		Export:     service.NewExportService(arrows, items, milestones, members, issues, purposes),
		Config:     config.Default(),
	}
	return app, database
}

// seedGanttProject creates a project pinned to January 2024 with one dated
// arrow, returning both.
func seedGanttProject(t *testing.T, app *App) (*domain.Project, *domain.Arrow) {
	t.Helper()
	ctx := context.Background()

	start, end := day(2024, 1, 1), day(2024, 1, 31)
	p := &domain.Project{Name: "Rollout", StartDate: &start, EndDate: &end}
	require.NoError(t, app.Projects.Create(ctx, p))

	as, ae := day(2024, 1, 10), day(2024, 1, 12)
	a := &domain.Arrow{ProjectID: p.ID, Name: "Design", StartDate: &as, EndDate: &ae,
		Status: domain.StatusInProgress}
	require.NoError(t, app.Arrows.Create(ctx, a))
	return p, a
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
