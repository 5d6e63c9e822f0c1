package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mpatel/task-planner-web/internal/domain"
	"github.com/mpatel/task-planner-web/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TaskService struct {
	taskRepo     repository.TaskRepository
	projectRepo  repository.ProjectRepository
	categoryRepo repository.CategoryRepository
}

func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, categoryRepo repository.CategoryRepository) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
	}
}

type CreateTaskInput struct {
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	CategoryID  *uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Priority    int
	Status      domain.TaskStatus
	Labels      []string
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *int
	Status      *domain.TaskStatus
	Labels      []string
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if input.Priority == 0 {
		input.Priority = domain.PriorityLow
	}
	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}

	if !domain.ValidPriority(input.Priority) {
		return nil, domain.ErrInvalidPriority
	}
	if !input.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	// The target project must belong to the caller.
	if err := s.checkProject(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if err := s.checkCategory(ctx, input.UserID, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	labels, err := labelsJSON(input.Labels)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Status:      input.Status,
		Labels:      labels,
		ProjectID:   input.ProjectID,
		CategoryID:  input.CategoryID,
		UserID:      input.UserID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	return s.taskRepo.GetByUserID(ctx, userID)
}

func (s *TaskService) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]*domain.Task, error) {
	if err := s.checkProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return s.taskRepo.GetByProjectID(ctx, projectID)
}

// ListWeek returns the tasks due in the seven days starting at weekStart,
// for the calendar grid.
func (s *TaskService) ListWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) ([]*domain.Task, error) {
	return s.taskRepo.GetDueBetween(ctx, userID, weekStart, weekStart.AddDate(0, 0, 7))
}

func (s *TaskService) Update(ctx context.Context, userID, taskID uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.getOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Priority != nil {
		if !domain.ValidPriority(*input.Priority) {
			return nil, domain.ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.Labels != nil {
		labels, err := labelsJSON(input.Labels)
		if err != nil {
			return nil, err
		}
		task.Labels = labels
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, taskID)
}

func (s *TaskService) getOwned(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}

	return task, nil
}

func (s *TaskService) checkProject(ctx context.Context, userID, projectID uuid.UUID) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProjectNotFound
		}
		return err
	}
	if project.UserID != userID {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (s *TaskService) checkCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	if category.UserID != userID {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func labelsJSON(labels []string) (datatypes.JSON, error) {
	if labels == nil {
		labels = []string{}
	}
	raw, err := json.Marshal(labels)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
