package queue

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"queuely/internal/events"
	"queuely/internal/models"
	"queuely/internal/storage"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakePublisher записывает опубликованные события вместо рассылки.
type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakePublisher) Publish(queueID string, ev events.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func setupService(t *testing.T) (*Service, *gorm.DB, *fakePublisher) {
	t.Helper()

	_ = godotenv.Load("../../.env")
	if os.Getenv("TEST_DB_HOST") == "" && os.Getenv("DB_HOST") == "" {
		t.Skip("TEST_DB_HOST не задан, пропускаем тесты с базой")
	}

	db, err := storage.ConnectTesting()
	if err != nil {
		t.Fatal("Ошибка подключения к тестовой базе:", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatal("Ошибка при миграции:", err)
	}
	db.Exec("TRUNCATE TABLE businesses, queues, queue_users RESTART IDENTITY CASCADE;")

	pub := &fakePublisher{}
	return NewService(db, pub), db, pub
}

func createTestQueue(t *testing.T, svc *Service, db *gorm.DB, status string) *models.Queue {
	t.Helper()

	business := models.Business{Name: "Кофейня", Email: "cafe@example.com"}
	err := db.Create(&business).Error
	assert.NoError(t, err, "Ошибка создания тестового бизнеса")

	q, err := svc.Create(context.Background(), "Утренняя очередь", business.ID)
	assert.NoError(t, err, "Ошибка создания тестовой очереди")

	if status != models.QueueActive {
		err = db.Model(q).Update("status", status).Error
		assert.NoError(t, err, "Ошибка смены статуса тестовой очереди")
	}
	return q
}

func TestCreateQueue(t *testing.T) {
	svc, db, _ := setupService(t)

	q := createTestQueue(t, svc, db, models.QueueActive)
	assert.Equal(t, models.QueueActive, q.Status, "Новая очередь должна быть активной")
	assert.NotEmpty(t, q.ID)

	_, err := svc.Create(context.Background(), "Очередь без хозяина", uuid.NewString())
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = svc.Create(context.Background(), "   ", q.BusinessID)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestJoinValidation(t *testing.T) {
	svc, db, pub := setupService(t)
	q := createTestQueue(t, svc, db, models.QueueActive)

	_, err := svc.Join(context.Background(), q.ID, "   ", "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.Join(context.Background(), "не-uuid", "Сэм", "")
	assert.ErrorIs(t, err, ErrQueueNotFound)

	_, err = svc.Join(context.Background(), uuid.NewString(), "Сэм", "")
	assert.ErrorIs(t, err, ErrQueueNotFound)

	assert.Equal(t, 0, pub.count(), "При неудачном вступлении событий быть не должно")
}

func TestJoinInactiveQueue(t *testing.T) {
	svc, db, pub := setupService(t)
	q := createTestQueue(t, svc, db, models.QueueClosed)

	_, err := svc.Join(context.Background(), q.ID, "Сэм", "")
	assert.ErrorIs(t, err, ErrQueueNotFound, "Закрытая очередь должна выглядеть как не найденная")

	var count int64
	db.Model(&models.QueueUser{}).Where("queue_id = ?", q.ID).Count(&count)
	assert.Equal(t, int64(0), count, "Запись не должна создаваться")
	assert.Equal(t, 0, pub.count(), "Событие не должно публиковаться")
}

func TestJoinDuplicateName(t *testing.T) {
	svc, db, pub := setupService(t)
	q := createTestQueue(t, svc, db, models.QueueActive)

	user, err := svc.Join(context.Background(), q.ID, "Сэм", "sam@example.com")
	assert.NoError(t, err, "Первое вступление должно пройти")
	assert.Equal(t, models.StatusWaiting, user.Status)

	// Имя сравнивается после обрезки пробелов.
	_, err = svc.Join(context.Background(), q.ID, "  Сэм  ", "")
	assert.ErrorIs(t, err, ErrNameTaken)

	assert.Equal(t, 1, pub.count(), "Событие уходит только за успешное вступление")
}

func TestJoinEventWithoutContact(t *testing.T) {
	svc, db, pub := setupService(t)
	q := createTestQueue(t, svc, db, models.QueueActive)

	_, err := svc.Join(context.Background(), q.ID, "Сэм", "sam@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, pub.count())

	data, err := json.Marshal(pub.events[0])
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "sam@example.com", "Контакт не должен попадать в рассылку")
	assert.Contains(t, string(data), `"event":"user_joined"`)
	assert.Contains(t, string(data), q.ID)
}

func TestSetStatus(t *testing.T) {
	svc, db, pub := setupService(t)
	q := createTestQueue(t, svc, db, models.QueueActive)

	user, err := svc.Join(context.Background(), q.ID, "Сэм", "")
	assert.NoError(t, err)

	// Недопустимое значение отклоняется до обращения к базе.
	_, err = svc.SetStatus(context.Background(), q.ID, user.ID, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	var unchanged models.QueueUser
	db.First(&unchanged, "id = ?", user.ID)
	assert.Equal(t, models.StatusWaiting, unchanged.Status, "Запись не должна меняться")

	_, err = svc.SetStatus(context.Background(), uuid.NewString(), user.ID, models.StatusServed)
	assert.ErrorIs(t, err, ErrUserNotFound, "Участник ищется только в своей очереди")

	updated, err := svc.SetStatus(context.Background(), q.ID, user.ID, models.StatusServed)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusServed, updated.Status)

	// Оператор может вернуть участника обратно в ожидание.
	updated, err = svc.SetStatus(context.Background(), q.ID, user.ID, models.StatusWaiting)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, updated.Status)

	// Смена статуса живое событие не рассылает: уведомляется только вступление.
	assert.Equal(t, 0, pub.count(), "Смена статуса не должна публиковать событий")
}

func TestListOrdering(t *testing.T) {
	svc, db, _ := setupService(t)
	q := createTestQueue(t, svc, db, models.QueueActive)

	names := []string{"Анна", "Борис", "Вера"}
	ids := make([]string, 0, len(names))
	for i, name := range names {
		user, err := svc.Join(context.Background(), q.ID, name, "")
		assert.NoError(t, err, "Ошибка вступления:", name)
		ids = append(ids, user.ID)
		// Разводим времена вступления, чтобы порядок был однозначным.
		joined := time.Date(2026, 8, 1, 10, 0, i, 0, time.UTC)
		db.Model(&models.QueueUser{}).Where("id = ?", user.ID).Update("joined_at", joined)
	}

	_, members, err := svc.List(context.Background(), q.ID)
	assert.NoError(t, err)
	assert.Len(t, members, len(names))
	for i, m := range members {
		assert.Equal(t, names[i], m.Name, "Порядок определяется временем вступления")
	}

	// Смена статуса не двигает участника в списке.
	_, err = svc.SetStatus(context.Background(), q.ID, ids[0], models.StatusServed)
	assert.NoError(t, err)

	_, members, err = svc.List(context.Background(), q.ID)
	assert.NoError(t, err)
	assert.Equal(t, names[0], members[0].Name, "Обслуженный участник остается на своем месте")
	assert.Equal(t, models.StatusServed, members[0].Status)
}

func TestExportDeterministic(t *testing.T) {
	svc, db, _ := setupService(t)
	q := createTestQueue(t, svc, db, models.QueueActive)

	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 8, 1, 10, 5, 0, 0, time.UTC)

	alice, err := svc.Join(context.Background(), q.ID, "Alice", "")
	assert.NoError(t, err)
	bob, err := svc.Join(context.Background(), q.ID, "Bob", "")
	assert.NoError(t, err)

	db.Model(&models.QueueUser{}).Where("id = ?", alice.ID).Update("joined_at", t1)
	db.Model(&models.QueueUser{}).Where("id = ?", bob.ID).Update("joined_at", t2)
	_, err = svc.SetStatus(context.Background(), q.ID, bob.ID, models.StatusServed)
	assert.NoError(t, err)

	filename, data, err := svc.Export(context.Background(), q.ID)
	assert.NoError(t, err)
	assert.Equal(t, "queuely-queue-report-"+q.ID+".csv", filename)

	expected := "name,status,joined_at\n" +
		"Alice,waiting,2026-08-01T10:00:00Z\n" +
		"Bob,served,2026-08-01T10:05:00Z\n"
	assert.Equal(t, expected, string(data))

	// Повторная выгрузка без изменений совпадает байт в байт.
	_, again, err := svc.Export(context.Background(), q.ID)
	assert.NoError(t, err)
	assert.Equal(t, data, again)

	_, _, err = svc.Export(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrQueueNotFound)
}

func TestErrorsDistinct(t *testing.T) {
	// Ошибки ядра различимы для транспортного слоя.
	assert.False(t, errors.Is(ErrNameTaken, ErrQueueNotFound))
	assert.False(t, errors.Is(ErrInvalidStatus, ErrUserNotFound))
}
