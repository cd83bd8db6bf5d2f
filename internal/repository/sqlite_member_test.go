package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/yabane/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepo_CreateListUpdate(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	members := NewSQLiteMemberRepo(database)
	ctx := context.Background()

	proj := testutil.NewTestProject("Plan")
	require.NoError(t, projects.Create(ctx, proj))

	ann := testutil.NewTestMember(proj.ID, "Ann", "lead")
	bob := testutil.NewTestMember(proj.ID, "Bob", "dev")
	require.NoError(t, members.Create(ctx, ann))
	require.NoError(t, members.Create(ctx, bob))
	assert.Equal(t, 0, ann.SortOrder)
	assert.Equal(t, 1, bob.SortOrder)

	bob.Organization = "Acme"
	bob.Email = "bob@example.com"
	require.NoError(t, members.Update(ctx, bob))

	list, err := members.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ann", list[0].Name)
	assert.Equal(t, "Acme", list[1].Organization)
	assert.Equal(t, "bob@example.com", list[1].Email)
}

func TestMemberRepo_Reorder(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	members := NewSQLiteMemberRepo(database)
	ctx := context.Background()

	proj := testutil.NewTestProject("Plan")
	require.NoError(t, projects.Create(ctx, proj))
	ann := testutil.NewTestMember(proj.ID, "Ann", "")
	bob := testutil.NewTestMember(proj.ID, "Bob", "")
	require.NoError(t, members.Create(ctx, ann))
	require.NoError(t, members.Create(ctx, bob))

	require.NoError(t, members.Reorder(ctx, []int64{bob.ID, ann.ID}))

	list, err := members.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", list[0].Name)
}

func TestMemberRepo_DeleteAndNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	members := NewSQLiteMemberRepo(database)
	ctx := context.Background()

	proj := testutil.NewTestProject("Plan")
	require.NoError(t, projects.Create(ctx, proj))
	ann := testutil.NewTestMember(proj.ID, "Ann", "")
	require.NoError(t, members.Create(ctx, ann))
	require.NoError(t, members.Delete(ctx, ann.ID))

	_, err := members.GetByID(ctx, ann.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
