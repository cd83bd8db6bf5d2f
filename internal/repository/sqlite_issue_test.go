package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueRepo_CreateAndResolve(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	issues := NewSQLiteIssueRepo(database)
	ctx := context.Background()

	proj := testutil.NewTestProject("Plan")
	require.NoError(t, projects.Create(ctx, proj))

	iss := testutil.NewTestIssue(proj.ID, "Vendor slipping",
		testutil.WithPriority(domain.PriorityHigh))
	require.NoError(t, issues.Create(ctx, iss))

	iss.Status = domain.IssueResolved
	iss.Resolution = "switched vendors"
	require.NoError(t, issues.Update(ctx, iss))

	fetched, err := issues.GetByID(ctx, iss.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, fetched.Priority)
	assert.Equal(t, domain.IssueResolved, fetched.Status)
	assert.Equal(t, "switched vendors", fetched.Resolution)
}

func TestIssueRepo_ListByProject(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	issues := NewSQLiteIssueRepo(database)
	ctx := context.Background()

	proj := testutil.NewTestProject("Plan")
	require.NoError(t, projects.Create(ctx, proj))
	require.NoError(t, issues.Create(ctx, testutil.NewTestIssue(proj.ID, "one")))
	require.NoError(t, issues.Create(ctx, testutil.NewTestIssue(proj.ID, "two")))

	list, err := issues.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "one", list[0].Title)
}

func TestIssueRepo_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	issues := NewSQLiteIssueRepo(database)

	_, err := issues.GetByID(context.Background(), 55)
	assert.True(t, errors.Is(err, ErrNotFound))
}
