package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mpatel/task-planner-web/internal/domain"
	"github.com/mpatel/task-planner-web/internal/repository"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

type CreateProjectInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
}

func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		UserID:      input.UserID,
		CreatedAt:   time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	return s.projectRepo.GetByUserID(ctx, userID)
}

// Get returns the project only if it belongs to userID. Projects owned by
// other users are reported as not found rather than forbidden.
func (s *ProjectService) Get(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	if project.UserID != userID {
		return nil, domain.ErrProjectNotFound
	}

	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, projectID); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, projectID)
}
