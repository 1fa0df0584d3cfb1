package events

import (
	"encoding/json"
	"testing"
	"time"

	"queuely/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUserJoinedShape(t *testing.T) {
	contact := "sam@example.com"
	user := models.QueueUser{
		ID:          "9a0dca26-5f83-4c66-bb29-6fb1ae06b0ce",
		Name:        "Сэм",
		QueueID:     "c7d1cd37-12aa-44ec-9f0a-1e0fca9383cc",
		NotifyEmail: &contact,
		Status:      models.StatusWaiting,
		JoinedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	ev := UserJoined(user)
	assert.Equal(t, EventUserJoined, ev.Event)
	assert.Equal(t, user.QueueID, ev.QueueID)
	assert.Equal(t, user.ID, ev.User.ID)

	data, err := json.Marshal(ev)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "user_joined", decoded["event"])
	assert.Equal(t, user.QueueID, decoded["queue_id"])

	payload := decoded["user"].(map[string]interface{})
	assert.Equal(t, "Сэм", payload["name"])
	assert.Equal(t, "waiting", payload["status"])
	assert.Contains(t, payload, "joined_at")

	// В событии только публичные поля, контакт наружу не уходит.
	assert.NotContains(t, string(data), contact)
}
