package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/repository"
	"github.com/alexanderramin/yabane/internal/testutil"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// seedProject inserts a project directly through the repo layer.
func seedProject(t *testing.T, database *sql.DB, name string) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name)
	require.NoError(t, repository.NewSQLiteProjectRepo(database).Create(context.Background(), p))
	return p
}

// recordingObserver captures observed events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}
