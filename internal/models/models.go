package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Статусы участника очереди.
const (
	StatusWaiting = "waiting"
	StatusServed  = "served"
	StatusSkipped = "skipped"
)

// Статусы жизненного цикла очереди. Вступать можно только в активную очередь.
const (
	QueueActive = "active"
	QueueClosed = "closed"
)

// ValidUserStatus проверяет, что статус участника входит в допустимое множество.
func ValidUserStatus(status string) bool {
	switch status {
	case StatusWaiting, StatusServed, StatusSkipped:
		return true
	}
	return false
}

type Business struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // хранится в нижнем регистре
	CreatedAt time.Time `json:"created_at"`
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type Queue struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	BusinessID string    `gorm:"type:uuid;index;not null" json:"business_id"`
	Business   Business  `gorm:"foreignKey:BusinessID" json:"-"`
	Status     string    `gorm:"not null;default:active" json:"status"` // active | closed
	CreatedAt  time.Time `json:"created_at"`
}

func (q *Queue) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

type QueueUser struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"not null;uniqueIndex:idx_queue_users_queue_name" json:"name"`
	QueueID string `gorm:"type:uuid;not null;uniqueIndex:idx_queue_users_queue_name" json:"queue_id"`
	Queue   Queue  `gorm:"foreignKey:QueueID" json:"-"`
	// Контакт для уведомлений. Наружу не отдается ни в ответах, ни в рассылке.
	NotifyEmail *string   `json:"-"`
	Status      string    `gorm:"not null;default:waiting" json:"status"` // waiting | served | skipped
	JoinedAt    time.Time `gorm:"index;not null" json:"joined_at"`
	UpdatedAt   time.Time `json:"-"`
}

func (u *QueueUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
