package models

import "time"

// Notification types produced by the portal's domain events. The column is an
// open-ended string; these are the values the backend itself emits.
const (
	NotificationTypeApplication = "application"
	NotificationTypeDrive       = "drive"
	NotificationTypeCoordinator = "coordinator"
	NotificationTypeInfo        = "info"
)

// Notification is a per-user message created by a domain event.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:64;default:info" json:"type"`
	Link      string    `gorm:"size:512" json:"link,omitempty"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
