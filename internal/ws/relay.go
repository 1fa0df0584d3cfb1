package ws

import (
	"context"
	"encoding/json"
	"log"

	"queuely/internal/events"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const channelPrefix = "queuely:queue:"

// Relay зеркалирует события очередей в Redis Pub/Sub и транслирует события
// других экземпляров сервиса в локальный хаб. Так живые обновления доходят
// до подписчиков независимо от того, какой экземпляр обработал запрос.
type Relay struct {
	hub      *Hub
	rdb      *redis.Client
	instance string
}

// envelope оборачивает событие идентификатором экземпляра-отправителя,
// чтобы не рассылать собственные события повторно.
type envelope struct {
	Origin  string          `json:"origin"`
	QueueID string          `json:"queue_id"`
	Payload json.RawMessage `json:"payload"`
}

func NewRelay(hub *Hub, rdb *redis.Client) *Relay {
	return &Relay{
		hub:      hub,
		rdb:      rdb,
		instance: uuid.NewString(),
	}
}

// Publish реализует events.Publisher: локальная рассылка плюс публикация
// в канал очереди в Redis.
func (r *Relay) Publish(queueID string, event events.Event) {
	r.hub.Publish(queueID, event)

	payload, err := json.Marshal(event)
	if err != nil {
		log.Println("Ошибка сериализации события для Redis:", err)
		return
	}
	env, err := json.Marshal(envelope{
		Origin:  r.instance,
		QueueID: queueID,
		Payload: payload,
	})
	if err != nil {
		log.Println("Ошибка сериализации конверта события:", err)
		return
	}
	if err := r.rdb.Publish(context.Background(), channelPrefix+queueID, env).Err(); err != nil {
		log.Println("Ошибка публикации события в Redis:", err)
	}
}

// Run подписывается на каналы всех очередей и пересылает чужие события
// в локальный хаб. Блокирует до отмены контекста.
func (r *Relay) Run(ctx context.Context) {
	pubsub := r.rdb.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var env envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			log.Println("Ошибка разбора события из Redis:", err)
			continue
		}
		if env.Origin == r.instance {
			continue
		}
		r.hub.Broadcast(BroadcastMessage{QueueID: env.QueueID, Message: env.Payload})
	}
}
