package postgres

import (
	"github.com/mpatel/task-planner-web/internal/domain"
	"github.com/mpatel/task-planner-web/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Unique violations surface as gorm.ErrDuplicatedKey so the
		// service layer can map them to domain errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Project{},
		&domain.Category{},
		&domain.Task{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:     NewUserRepository(db),
		Project:  NewProjectRepository(db),
		Task:     NewTaskRepository(db),
		Category: NewCategoryRepository(db),
	}
}
