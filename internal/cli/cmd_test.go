package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestProjectAddAndList(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "project", "add", "--name", "Rollout", "--start", "2024-01-01", "--end", "2024-03-31")
	require.NoError(t, err)
	assert.Contains(t, out, "Created project 1: Rollout")

	out, err = execute(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Rollout")
	assert.Contains(t, out, "2024-01-01")
}

func TestProjectAddRejectsBadDate(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := execute(t, app, "project", "add", "--name", "X", "--start", "01/02/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestArrowAddListUpdateReorder(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := execute(t, app, "project", "add", "--name", "Rollout")
	require.NoError(t, err)

	out, err := execute(t, app, "arrow", "add", "--project", "1", "--name", "Design",
		"--start", "2024-01-10", "--end", "2024-01-20")
	require.NoError(t, err)
	assert.Contains(t, out, "position 0")

	_, err = execute(t, app, "arrow", "add", "--project", "1", "--name", "Build")
	require.NoError(t, err)

	out, err = execute(t, app, "arrow", "add", "--project", "1", "--parent", "1", "--name", "Wireframes")
	require.NoError(t, err)
	assert.Contains(t, out, "position 0", "sort order counts per sibling group")

	out, err = execute(t, app, "arrow", "list", "--project", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Design")
	assert.Contains(t, lines[1], "  Wireframes", "children render indented under their parent")

	_, err = execute(t, app, "arrow", "reorder", "2", "1")
	require.NoError(t, err)
	out, err = execute(t, app, "arrow", "list", "--project", "1")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n")[0], "Build")

	out, err = execute(t, app, "arrow", "update", "1", "--status", "done")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated arrow 1")
}

func TestWbsListFiltersByOwner(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := execute(t, app, "project", "add", "--name", "Rollout")
	require.NoError(t, err)
	_, err = execute(t, app, "arrow", "add", "--project", "1", "--name", "Phase")
	require.NoError(t, err)
	_, err = execute(t, app, "arrow", "add", "--project", "1", "--parent", "1", "--name", "Sub")
	require.NoError(t, err)
	_, err = execute(t, app, "wbs", "add", "--arrow", "2", "--name", "Draft", "--owner", "ann")
	require.NoError(t, err)
	_, err = execute(t, app, "wbs", "add", "--arrow", "2", "--name", "Review", "--owner", "bob")
	require.NoError(t, err)

	out, err := execute(t, app, "wbs", "list", "--project", "1", "--owner", "ann")
	require.NoError(t, err)
	assert.Contains(t, out, "Draft")
	assert.NotContains(t, out, "Review")
}

func TestMemberCSVCommandsRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := execute(t, app, "project", "add", "--name", "Rollout")
	require.NoError(t, err)
	_, err = execute(t, app, "member", "add", "--project", "1", "--name", "Ann", "--role", "lead", "--org", "Acme")
	require.NoError(t, err)

	csvPath := filepath.Join(t.TempDir(), "members.csv")
	_, err = execute(t, app, "member", "export", "--project", "1", "--out", csvPath)
	require.NoError(t, err)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme,Ann,lead")

	out, err := execute(t, app, "member", "import", "--project", "1", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 members")
}

func TestExportCommandWritesWorkbook(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := execute(t, app, "project", "add", "--name", "Rollout")
	require.NoError(t, err)
	_, err = execute(t, app, "arrow", "add", "--project", "1", "--name", "Design",
		"--start", "2024-03-05", "--end", "2024-03-25")
	require.NoError(t, err)

	xlsxPath := filepath.Join(t.TempDir(), "out.xlsx")
	_, err = execute(t, app, "export", "--project", "1", "--out", xlsxPath, "--sections", "arrows,members")
	require.NoError(t, err)

	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Arrows", "Members"}, f.GetSheetList())
}

func TestExportCommandRejectsUnknownSection(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := execute(t, app, "project", "add", "--name", "Rollout")
	require.NoError(t, err)

	_, err = execute(t, app, "export", "--project", "1", "--sections", "gantt",
		"--out", filepath.Join(t.TempDir(), "x.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export section")
}

func TestPurposeSetAndShow(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := execute(t, app, "project", "add", "--name", "Rollout")
	require.NoError(t, err)

	_, err = execute(t, app, "purpose", "set", "--project", "1",
		"--background", "legacy tooling", "--objective", "replace it")
	require.NoError(t, err)

	// A second set keeps fields whose flags were not passed.
	_, err = execute(t, app, "purpose", "set", "--project", "1", "--scope", "cli only")
	require.NoError(t, err)

	out, err := execute(t, app, "purpose", "show", "--project", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "legacy tooling")
	assert.Contains(t, out, "cli only")
}

func TestIssueResolveCommand(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := execute(t, app, "project", "add", "--name", "Rollout")
	require.NoError(t, err)
	_, err = execute(t, app, "issue", "add", "--project", "1", "--title", "Slipping", "--priority", "high")
	require.NoError(t, err)

	_, err = execute(t, app, "issue", "resolve", "1", "--resolution", "re-scoped")
	require.NoError(t, err)

	out, err := execute(t, app, "issue", "list", "--project", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "resolved")
}
