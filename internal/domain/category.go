package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a user-defined grouping for tasks, shown as a color swatch
// in the calendar view.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	Color     string    `json:"color" gorm:"default:'#6b7280'"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
}
