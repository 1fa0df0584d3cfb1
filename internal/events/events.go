package events

import (
	"time"

	"queuely/internal/models"
)

// Publisher — контракт моста живых уведомлений. Ядро вызывает Publish
// синхронно после успешной мутации; управление подписками целиком
// остается на стороне реализации.
type Publisher interface {
	Publish(queueID string, event Event)
}

// Типы событий. Сегодня рассылается только вступление в очередь.
const EventUserJoined = "user_joined"

// Event — событие очереди в том виде, в котором оно уходит подписчикам.
type Event struct {
	Event   string      `json:"event"`
	QueueID string      `json:"queue_id"`
	User    UserPayload `json:"user"`
}

// UserPayload содержит только публичные поля участника.
type UserPayload struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joined_at"`
}

// UserJoined формирует событие о вступлении участника в очередь.
func UserJoined(user models.QueueUser) Event {
	return Event{
		Event:   EventUserJoined,
		QueueID: user.QueueID,
		User: UserPayload{
			ID:       user.ID,
			Name:     user.Name,
			Status:   user.Status,
			JoinedAt: user.JoinedAt,
		},
	}
}
