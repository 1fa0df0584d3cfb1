package queue

import (
	"context"
	"errors"
	"strings"
	"time"

	"queuely/internal/events"
	"queuely/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ошибки ядра. Транспортный слой переводит их в HTTP-статусы.
var (
	ErrBusinessNotFound = errors.New("бизнес не найден")
	ErrQueueNotFound    = errors.New("очередь не найдена или не активна")
	ErrUserNotFound     = errors.New("участник не найден в этой очереди")
	ErrNameTaken        = errors.New("имя уже занято в этой очереди")
	ErrEmptyName        = errors.New("имя участника пустое")
	ErrEmptyTitle       = errors.New("название очереди пустое")
	ErrInvalidStatus    = errors.New("недопустимый статус участника")
)

// Service — ядро работы с очередями: создание, вступление, смена статуса,
// выборка и выгрузка. Хранилище и канал уведомлений передаются при сборке.
type Service struct {
	db     *gorm.DB
	events events.Publisher
}

func NewService(db *gorm.DB, pub events.Publisher) *Service {
	return &Service{db: db, events: pub}
}

// Create создает активную очередь для существующего бизнеса.
func (s *Service) Create(ctx context.Context, title, businessID string) (*models.Queue, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if _, err := uuid.Parse(businessID); err != nil {
		return nil, ErrBusinessNotFound
	}

	db := s.db.WithContext(ctx)

	var business models.Business
	if err := db.Select("id").First(&business, "id = ?", businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	q := models.Queue{
		Title:      title,
		BusinessID: businessID,
		Status:     models.QueueActive,
	}
	if err := db.Create(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// Join добавляет участника в активную очередь.
// Порядок проверок фиксированный: очередь активна -> имя свободно -> вставка.
// Гонку одновременных join с одинаковым именем решает уникальный индекс
// (queue_id, name): побеждает ровно одна вставка, остальные получают ErrNameTaken.
func (s *Service) Join(ctx context.Context, queueID, name, notifyEmail string) (*models.QueueUser, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := uuid.Parse(queueID); err != nil {
		return nil, ErrQueueNotFound
	}

	db := s.db.WithContext(ctx)

	var q models.Queue
	if err := db.Where("id = ? AND status = ?", queueID, models.QueueActive).First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQueueNotFound
		}
		return nil, err
	}

	var existing models.QueueUser
	err := db.Select("id").Where("queue_id = ? AND name = ?", queueID, name).First(&existing).Error
	if err == nil {
		return nil, ErrNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.QueueUser{
		Name:     name,
		QueueID:  queueID,
		Status:   models.StatusWaiting,
		JoinedAt: time.Now(),
	}
	if contact := strings.TrimSpace(notifyEmail); contact != "" {
		user.NotifyEmail = &contact
	}

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	// Событие уходит только после успешной вставки.
	s.events.Publish(queueID, events.UserJoined(user))

	return &user, nil
}

// SetStatus меняет статус участника. Любой из трех статусов может перейти
// в любой другой: оператор имеет право исправить ошибочную отметку.
// Живое событие при смене статуса не рассылается.
func (s *Service) SetStatus(ctx context.Context, queueID, userID, status string) (*models.QueueUser, error) {
	if !models.ValidUserStatus(status) {
		return nil, ErrInvalidStatus
	}
	if _, err := uuid.Parse(queueID); err != nil {
		return nil, ErrUserNotFound
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrUserNotFound
	}

	db := s.db.WithContext(ctx)

	res := db.Model(&models.QueueUser{}).
		Where("id = ? AND queue_id = ?", userID, queueID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	var user models.QueueUser
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// MemberView — публичное представление участника очереди.
type MemberView struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joined_at"`
}

// List возвращает очередь и ее участников в порядке прихода.
// Порядок определяется временем вступления, при равенстве — идентификатором,
// и не меняется от смены статусов.
func (s *Service) List(ctx context.Context, queueID string) (*models.Queue, []MemberView, error) {
	if _, err := uuid.Parse(queueID); err != nil {
		return nil, nil, ErrQueueNotFound
	}

	db := s.db.WithContext(ctx)

	var q models.Queue
	if err := db.First(&q, "id = ?", queueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrQueueNotFound
		}
		return nil, nil, err
	}

	var users []models.QueueUser
	if err := db.Where("queue_id = ?", queueID).
		Order("joined_at ASC, id ASC").
		Find(&users).Error; err != nil {
		return nil, nil, err
	}

	members := make([]MemberView, 0, len(users))
	for _, u := range users {
		members = append(members, MemberView{
			ID:       u.ID,
			Name:     u.Name,
			Status:   u.Status,
			JoinedAt: u.JoinedAt,
		})
	}
	return &q, members, nil
}
