package service

import (
	"github.com/mpatel/task-planner-web/internal/auth"
	"github.com/mpatel/task-planner-web/internal/config"
	"github.com/mpatel/task-planner-web/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Project   *ProjectService
	Task      *TaskService
	Category  *CategoryService
	Dashboard *DashboardService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	hasher := auth.NewHasher(cfg.BcryptCost)
	issuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenValidity())

	return &Services{
		Auth:      NewAuthService(repos.User, hasher, issuer),
		Project:   NewProjectService(repos.Project),
		Task:      NewTaskService(repos.Task, repos.Project, repos.Category),
		Category:  NewCategoryService(repos.Category),
		Dashboard: NewDashboardService(repos.Task),
	}
}
