package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/mpatel/task-planner-web/internal/domain"
	"github.com/mpatel/task-planner-web/internal/repository/postgres"
	"github.com/mpatel/task-planner-web/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepository_GetDueBetween(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	project := testutil.NewProjectBuilder(user.ID).Build(t, testDB.DB)
	otherProject := testutil.NewProjectBuilder(other.ID).Build(t, testDB.DB)

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	inRange := testutil.NewTaskBuilder(user.ID, project.ID).
		WithDueDate(monday.AddDate(0, 0, 3)).
		Build(t, testDB.DB)
	testutil.NewTaskBuilder(user.ID, project.ID).
		WithDueDate(monday.AddDate(0, 0, 7)). // exclusive upper bound
		Build(t, testDB.DB)
	testutil.NewTaskBuilder(other.ID, otherProject.ID).
		WithDueDate(monday.AddDate(0, 0, 3)). // other user's task
		Build(t, testDB.DB)

	tasks, err := repo.GetDueBetween(ctx, user.ID, monday, monday.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, inRange.ID, tasks[0].ID)
}

func TestTaskRepository_GetUpcoming(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	project := testutil.NewProjectBuilder(user.ID).Build(t, testDB.DB)

	now := time.Now()
	soonest := testutil.NewTaskBuilder(user.ID, project.ID).
		WithDueDate(now.Add(24 * time.Hour)).
		Build(t, testDB.DB)
	testutil.NewTaskBuilder(user.ID, project.ID).
		WithDueDate(now.Add(48 * time.Hour)).
		Build(t, testDB.DB)
	testutil.NewTaskBuilder(user.ID, project.ID).
		WithDueDate(now.Add(12 * time.Hour)).
		WithStatus(domain.TaskStatusCompleted). // completed tasks are not upcoming
		Build(t, testDB.DB)
	testutil.NewTaskBuilder(user.ID, project.ID).
		WithDueDate(now.Add(-24 * time.Hour)). // already past
		Build(t, testDB.DB)

	tasks, err := repo.GetUpcoming(ctx, user.ID, now, 5)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, soonest.ID, tasks[0].ID)
}

func TestTaskRepository_CountByStatus(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	project := testutil.NewProjectBuilder(user.ID).Build(t, testDB.DB)

	for i := 0; i < 3; i++ {
		testutil.NewTaskBuilder(user.ID, project.ID).
			WithStatus(domain.TaskStatusCompleted).
			Build(t, testDB.DB)
	}
	testutil.NewTaskBuilder(user.ID, project.ID).
		WithStatus(domain.TaskStatusPending).
		Build(t, testDB.DB)

	counts, err := repo.CountByStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[domain.TaskStatusCompleted])
	assert.Equal(t, int64(1), counts[domain.TaskStatusPending])
}
