package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/repository"
	"github.com/alexanderramin/yabane/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueService_CreateDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedProject(t, database, "Rollout")
	svc := NewIssueService(repository.NewSQLiteIssueRepo(database))
	ctx := context.Background()

	i := &domain.Issue{ProjectID: p.ID, Title: "Schedule slip"}
	require.NoError(t, svc.Create(ctx, i))
	assert.Equal(t, domain.PriorityMedium, i.Priority)
	assert.Equal(t, domain.IssueOpen, i.Status)
}

func TestIssueService_CreateRejectsBadEnums(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedProject(t, database, "Rollout")
	svc := NewIssueService(repository.NewSQLiteIssueRepo(database))
	ctx := context.Background()

	assert.Error(t, svc.Create(ctx, &domain.Issue{ProjectID: p.ID}), "title required")
	assert.Error(t, svc.Create(ctx, &domain.Issue{
		ProjectID: p.ID, Title: "x", Priority: "urgent", Status: domain.IssueOpen,
	}))
}

func TestIssueService_Resolve(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := seedProject(t, database, "Rollout")
	svc := NewIssueService(repository.NewSQLiteIssueRepo(database))
	ctx := context.Background()

	i := testutil.NewTestIssue(p.ID, "Schedule slip")
	require.NoError(t, svc.Create(ctx, i))
	require.NoError(t, svc.Resolve(ctx, i.ID, "re-scoped phase two"))

	got, err := svc.GetByID(ctx, i.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueResolved, got.Status)
	assert.Equal(t, "re-scoped phase two", got.Resolution)
}
