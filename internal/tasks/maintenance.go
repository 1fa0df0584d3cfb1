package tasks

import (
	"log"
	"time"

	"queuely/internal/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Maintenance выполняет фоновое обслуживание хранилища.
type Maintenance struct {
	db         *gorm.DB
	retiredTTL time.Duration
	queueTTL   time.Duration
}

func NewMaintenance(db *gorm.DB, retiredTTL, queueTTL time.Duration) *Maintenance {
	return &Maintenance{db: db, retiredTTL: retiredTTL, queueTTL: queueTTL}
}

// InitScheduler инициализирует планировщик cron-задач.
func (m *Maintenance) InitScheduler() *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Чистка отработанных участников каждые 10 минут.
	_, err := c.AddFunc("0 */10 * * * *", m.PruneRetiredUsers)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи PruneRetiredUsers:", err)
	}

	// Закрытие заброшенных очередей каждый день в 04:00.
	_, err = c.AddFunc("0 0 4 * * *", m.CloseStaleQueues)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи CloseStaleQueues:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}

// PruneRetiredUsers удаляет участников, давно покинувших статус waiting.
// Обслуженные и пропущенные записи остаются в выборках и выгрузках,
// пока не истечет срок хранения.
func (m *Maintenance) PruneRetiredUsers() {
	threshold := time.Now().Add(-m.retiredTTL)
	res := m.db.
		Where("status <> ? AND updated_at < ?", models.StatusWaiting, threshold).
		Delete(&models.QueueUser{})
	if res.Error != nil {
		log.Println("Ошибка при удалении отработанных участников:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Удалено отработанных участников: %d\n", res.RowsAffected)
	}
}

// CloseStaleQueues закрывает старые активные очереди без ожидающих участников.
func (m *Maintenance) CloseStaleQueues() {
	threshold := time.Now().Add(-m.queueTTL)
	res := m.db.Model(&models.Queue{}).
		Where("status = ? AND created_at < ?", models.QueueActive, threshold).
		Where("NOT EXISTS (SELECT 1 FROM queue_users WHERE queue_users.queue_id = queues.id AND queue_users.status = ?)",
			models.StatusWaiting).
		Update("status", models.QueueClosed)
	if res.Error != nil {
		log.Println("Ошибка при закрытии заброшенных очередей:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Закрыто заброшенных очередей: %d\n", res.RowsAffected)
	}
}
