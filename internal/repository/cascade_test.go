package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/yabane/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deleting a top-level arrow must take its children and every WBS item under
// them along, via the schema's ON DELETE CASCADE.
func TestCascade_DeleteParentArrowRemovesSubtree(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	arrows := NewSQLiteArrowRepo(database)
	items := NewSQLiteWbsItemRepo(database)
	ctx := context.Background()

	proj := testutil.NewTestProject("Plan")
	require.NoError(t, projects.Create(ctx, proj))
	parent := testutil.NewTestArrow(proj.ID, "Phase")
	require.NoError(t, arrows.Create(ctx, parent))
	child := testutil.NewTestArrow(proj.ID, "Subphase", testutil.WithParent(parent.ID))
	require.NoError(t, arrows.Create(ctx, child))
	task := testutil.NewTestWbsItem(child.ID, "task")
	require.NoError(t, items.Create(ctx, task))

	require.NoError(t, arrows.Delete(ctx, parent.ID))

	_, err := arrows.GetByID(ctx, child.ID)
	assert.True(t, errors.Is(err, ErrNotFound), "child arrow cascaded")
	_, err = items.GetByID(ctx, task.ID)
	assert.True(t, errors.Is(err, ErrNotFound), "grandchild task cascaded")
}

func TestCascade_DeleteChildArrowKeepsParent(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	arrows := NewSQLiteArrowRepo(database)
	items := NewSQLiteWbsItemRepo(database)
	ctx := context.Background()

	proj := testutil.NewTestProject("Plan")
	require.NoError(t, projects.Create(ctx, proj))
	parent := testutil.NewTestArrow(proj.ID, "Phase")
	require.NoError(t, arrows.Create(ctx, parent))
	child := testutil.NewTestArrow(proj.ID, "Subphase", testutil.WithParent(parent.ID))
	require.NoError(t, arrows.Create(ctx, child))
	task := testutil.NewTestWbsItem(child.ID, "task")
	require.NoError(t, items.Create(ctx, task))

	require.NoError(t, arrows.Delete(ctx, child.ID))

	_, err := arrows.GetByID(ctx, parent.ID)
	require.NoError(t, err)
	_, err = items.GetByID(ctx, task.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCascade_DeleteProjectRemovesEverything(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	arrows := NewSQLiteArrowRepo(database)
	milestones := NewSQLiteMilestoneRepo(database)
	members := NewSQLiteMemberRepo(database)
	issues := NewSQLiteIssueRepo(database)
	ctx := context.Background()

	proj := testutil.NewTestProject("Plan")
	require.NoError(t, projects.Create(ctx, proj))
	arrow := testutil.NewTestArrow(proj.ID, "Phase")
	require.NoError(t, arrows.Create(ctx, arrow))
	ms := testutil.NewTestMilestone(proj.ID, "Release")
	require.NoError(t, milestones.Create(ctx, ms))
	mem := testutil.NewTestMember(proj.ID, "Ann", "lead")
	require.NoError(t, members.Create(ctx, mem))
	iss := testutil.NewTestIssue(proj.ID, "Late delivery")
	require.NoError(t, issues.Create(ctx, iss))

	require.NoError(t, projects.Delete(ctx, proj.ID))

	for _, check := range []func() error{
		func() error { _, err := arrows.GetByID(ctx, arrow.ID); return err },
		func() error { _, err := milestones.GetByID(ctx, ms.ID); return err },
		func() error { _, err := members.GetByID(ctx, mem.ID); return err },
		func() error { _, err := issues.GetByID(ctx, iss.ID); return err },
	} {
		assert.True(t, errors.Is(check(), ErrNotFound))
	}
}
