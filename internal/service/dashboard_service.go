package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mpatel/task-planner-web/internal/domain"
	"github.com/mpatel/task-planner-web/internal/repository"
)

const upcomingTaskLimit = 5

type DashboardService struct {
	taskRepo repository.TaskRepository
}

func NewDashboardService(taskRepo repository.TaskRepository) *DashboardService {
	return &DashboardService{taskRepo: taskRepo}
}

type Dashboard struct {
	TaskProgress  int            `json:"taskProgress"` // percent of tasks completed
	UpcomingTasks []*domain.Task `json:"upcomingTasks"`
	CalendarTasks []*domain.Task `json:"calendarTasks"`
}

// Summary aggregates the signed-in user's tasks: overall completion,
// the next few due tasks and the current week's calendar entries.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID, now time.Time) (*Dashboard, error) {
	counts, err := s.taskRepo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total, completed int64
	for status, count := range counts {
		total += count
		if status == domain.TaskStatusCompleted {
			completed = count
		}
	}

	progress := 0
	if total > 0 {
		progress = int(completed * 100 / total)
	}

	upcoming, err := s.taskRepo.GetUpcoming(ctx, userID, now, upcomingTaskLimit)
	if err != nil {
		return nil, err
	}

	weekStart := StartOfWeek(now)
	calendar, err := s.taskRepo.GetDueBetween(ctx, userID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TaskProgress:  progress,
		UpcomingTasks: upcoming,
		CalendarTasks: calendar,
	}, nil
}

// StartOfWeek truncates t to midnight of its Monday.
func StartOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
