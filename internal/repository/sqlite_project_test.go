package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 9, 30, 0, 0, 0, 0, time.Local)
	proj := testutil.NewTestProject("Migration", testutil.WithProjectRange(start, end))
	require.NoError(t, repo.Create(ctx, proj))
	assert.NotZero(t, proj.ID, "autoincrement id assigned")

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Migration", fetched.Name)
	assert.Equal(t, domain.ProjectActive, fetched.Status)
	require.NotNil(t, fetched.StartDate)
	require.NotNil(t, fetched.EndDate)
	assert.Equal(t, "2024-04-01", fetched.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-09-30", fetched.EndDate.Format("2006-01-02"))
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 9999)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Mutations against the missing id surface the same sentinel.
	assert.True(t, errors.Is(repo.Archive(ctx, 9999), ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, 9999), ErrNotFound))
}

func TestProjectRepo_List_ExcludesArchived(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	p1 := testutil.NewTestProject("Active1")
	p2 := testutil.NewTestProject("Active2")
	p3 := testutil.NewTestProject("Old")
	require.NoError(t, repo.Create(ctx, p1))
	require.NoError(t, repo.Create(ctx, p2))
	require.NoError(t, repo.Create(ctx, p3))
	require.NoError(t, repo.Archive(ctx, p3.ID))

	list, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	listAll, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, listAll, 3)
}

func TestProjectRepo_Update_ClearsDates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local)
	proj := testutil.NewTestProject("Bounded", testutil.WithProjectRange(start, end))
	require.NoError(t, repo.Create(ctx, proj))

	proj.StartDate = nil
	proj.EndDate = nil
	proj.Name = "Unbounded"
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unbounded", fetched.Name)
	assert.Nil(t, fetched.StartDate)
	assert.Nil(t, fetched.EndDate)
}

func TestProjectRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Doomed")
	require.NoError(t, repo.Create(ctx, proj))
	require.NoError(t, repo.Delete(ctx, proj.ID))

	_, err := repo.GetByID(ctx, proj.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
