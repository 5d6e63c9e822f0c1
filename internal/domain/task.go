package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task priorities: 1 is high, 2 is medium, 3 is low.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

type Task struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	DueDate     *time.Time     `json:"dueDate"`
	Priority    int            `json:"priority" gorm:"default:3"`
	Status      TaskStatus     `json:"status" gorm:"default:'pending'"`
	Labels      datatypes.JSON `json:"labels" gorm:"type:jsonb;default:'[]'"` // ["work", "urgent"]
	ProjectID   uuid.UUID      `json:"projectId" gorm:"type:uuid;not null;index"`
	Project     *Project       `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CategoryID  *uuid.UUID     `json:"categoryId" gorm:"type:uuid"`
	Category    *Category      `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index"`
	User        *User          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

func ValidPriority(p int) bool {
	return p >= PriorityHigh && p <= PriorityLow
}
