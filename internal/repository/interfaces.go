package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mpatel/task-planner-web/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	GetDueBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.Task, error)
	GetUpcoming(ctx context.Context, userID uuid.UUID, after time.Time, limit int) ([]*domain.Task, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.TaskStatus]int64, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User     UserRepository
	Project  ProjectRepository
	Task     TaskRepository
	Category CategoryRepository
}
