package service

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/repository"
	"github.com/alexanderramin/yabane/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportService(t *testing.T, observers ...UseCaseObserver) (ExportService, *sql.DB, *domain.Project) {
	t.Helper()
	database := testutil.NewTestDB(t)
	p := seedProject(t, database, "Rollout")
	svc := NewExportService(
		repository.NewSQLiteArrowRepo(database),
		repository.NewSQLiteWbsItemRepo(database),
		repository.NewSQLiteMilestoneRepo(database),
		repository.NewSQLiteMemberRepo(database),
		repository.NewSQLiteIssueRepo(database),
		repository.NewSQLitePurposeRepo(database),
		observers...,
	)
	return svc, database, p
}

func TestExportService_FullWorkbook(t *testing.T) {
	obs := &recordingObserver{}
	svc, database, p := newExportService(t, obs)
	ctx := context.Background()

	arrow := testutil.NewTestArrow(p.ID, "Design",
		testutil.WithArrowDates(day(2024, 3, 5), day(2024, 3, 25)))
	require.NoError(t, repository.NewSQLiteArrowRepo(database).Create(ctx, arrow))
	require.NoError(t, repository.NewSQLiteMemberRepo(database).Create(ctx,
		testutil.NewTestMember(p.ID, "Ann", "lead")))

	data, err := svc.Workbook(ctx, p.ID, AllSections())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t,
		[]string{"Overview", "Arrows", "WBS", "Milestones", "Members", "Issues"},
		f.GetSheetList())

	v, err := f.GetCellValue("Arrows", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Design", v)

	event := obs.last(t)
	assert.Equal(t, "export-workbook", event.Name)
	assert.True(t, event.Succeeded())
}

func TestExportService_SectionSubset(t *testing.T) {
	svc, database, p := newExportService(t)
	ctx := context.Background()

	require.NoError(t, repository.NewSQLiteMemberRepo(database).Create(ctx,
		testutil.NewTestMember(p.ID, "Ann", "lead")))

	data, err := svc.Workbook(ctx, p.ID, ExportSections{Members: true})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Members"}, f.GetSheetList())
}

func TestExportService_MissingPurposeStillExportsOverview(t *testing.T) {
	svc, _, p := newExportService(t)

	data, err := svc.Workbook(context.Background(), p.ID, ExportSections{Overview: true})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Overview", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Background", v, "labeled skeleton when no purpose saved")
}

func TestExportService_NoSectionsIsAnError(t *testing.T) {
	svc, _, p := newExportService(t)

	_, err := svc.Workbook(context.Background(), p.ID, ExportSections{})
	assert.Error(t, err)
}
