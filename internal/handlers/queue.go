package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"queuely/internal/queue"
	"queuely/internal/response"

	"github.com/gin-gonic/gin"
)

// QueueHandler переводит HTTP-запросы в вызовы ядра очередей
// и ошибки ядра — в коды ответов.
type QueueHandler struct {
	svc *queue.Service
}

func NewQueueHandler(svc *queue.Service) *QueueHandler {
	return &QueueHandler{svc: svc}
}

type CreateQueueRequest struct {
	Title      string `json:"title" binding:"required"`
	BusinessID string `json:"business_id" binding:"required"`
}

type JoinQueueRequest struct {
	Name        string `json:"name" binding:"required"`
	NotifyEmail string `json:"notify_email"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// JoinedUser — публичные поля участника в ответе на вступление.
// Контакт для уведомлений и время вступления сюда не входят.
type JoinedUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// QueueInfo — краткое описание очереди в ответе со списком участников.
type QueueInfo struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Create обрабатывает создание очереди
// @Summary		Создание очереди
// @Description	Создает активную очередь для существующего бизнеса
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			queue	body		CreateQueueRequest	true	"Данные очереди"
// @Success		201	{object}	map[string]interface{}	"Очередь создана"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		404	{object}	response.ErrorResponse	"Бизнес не найден (BUSINESS_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/queue/create [post]
func (h *QueueHandler) Create(c *gin.Context) {
	var req CreateQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Не заполнены обязательные поля",
			Details: err.Error(),
		})
		return
	}

	q, err := h.svc.Create(c.Request.Context(), req.Title, req.BusinessID)
	if err != nil {
		switch {
		case errors.Is(err, queue.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "Название очереди пустое",
			})
		case errors.Is(err, queue.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "BUSINESS_NOT_FOUND",
				Message: "Бизнес не найден",
			})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Ошибка при создании очереди",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Очередь создана",
		"queue":   q,
	})
}

// Join обрабатывает вступление в очередь
// @Summary		Вступление в очередь
// @Description	Добавляет участника в активную очередь и уведомляет подписчиков комнаты
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id		path		string				true	"ID очереди"
// @Param			user	body		JoinQueueRequest	true	"Имя и необязательный контакт"
// @Success		201	{object}	map[string]interface{}	"Участник добавлен"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		404	{object}	response.ErrorResponse	"Очередь не найдена или не активна (QUEUE_NOT_FOUND)"
// @Failure		409	{object}	response.ErrorResponse	"Имя уже занято (ALREADY_IN_QUEUE)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/queue/{id}/join [post]
func (h *QueueHandler) Join(c *gin.Context) {
	var req JoinQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Не указано имя участника",
			Details: err.Error(),
		})
		return
	}

	user, err := h.svc.Join(c.Request.Context(), c.Param("id"), req.Name, req.NotifyEmail)
	if err != nil {
		switch {
		case errors.Is(err, queue.ErrEmptyName):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "Имя участника пустое",
			})
		case errors.Is(err, queue.ErrQueueNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "QUEUE_NOT_FOUND",
				Message: "Очередь не найдена или не активна",
			})
		case errors.Is(err, queue.ErrNameTaken):
			c.JSON(http.StatusConflict, response.ErrorResponse{
				Code:    "ALREADY_IN_QUEUE",
				Message: "Участник с таким именем уже в очереди",
			})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Ошибка добавления в очередь",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Вы встали в очередь",
		"user": JoinedUser{
			ID:     user.ID,
			Name:   user.Name,
			Status: user.Status,
		},
	})
}

// Get обрабатывает запрос состояния очереди
// @Summary		Состояние очереди
// @Description	Возвращает очередь и участников в порядке вступления
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID очереди"
// @Success		200	{object}	map[string]interface{}	"Очередь и участники"
// @Failure		404	{object}	response.ErrorResponse	"Очередь не найдена (QUEUE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/queue/{id} [get]
func (h *QueueHandler) Get(c *gin.Context) {
	q, members, err := h.svc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queue.ErrQueueNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "QUEUE_NOT_FOUND",
				Message: "Очередь не найдена",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки участников очереди",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"queue": QueueInfo{
			ID:     q.ID,
			Title:  q.Title,
			Status: q.Status,
		},
		"users": members,
	})
}

// UpdateUserStatus обрабатывает смену статуса участника
// @Summary		Смена статуса участника
// @Description	Переводит участника в статус waiting, served или skipped
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id		path		string				true	"ID очереди"
// @Param			userId	path		string				true	"ID участника"
// @Param			status	body		UpdateStatusRequest	true	"Новый статус"
// @Success		200	{object}	map[string]interface{}	"Статус обновлен"
// @Failure		400	{object}	response.ErrorResponse	"Недопустимый статус (INVALID_STATUS)"
// @Failure		404	{object}	response.ErrorResponse	"Участник не найден (USER_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/queue/{id}/user/{userId} [patch]
func (h *QueueHandler) UpdateUserStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_STATUS",
			Message: "Не указан статус",
			Details: err.Error(),
		})
		return
	}

	user, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), c.Param("userId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, queue.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "INVALID_STATUS",
				Message: "Статус должен быть waiting, served или skipped",
			})
		case errors.Is(err, queue.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "USER_NOT_FOUND",
				Message: "Участник не найден в этой очереди",
			})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Ошибка обновления статуса",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Статус участника обновлен на %s", user.Status),
		"user":    user,
	})
}

// Export обрабатывает выгрузку очереди в CSV
// @Summary		Выгрузка очереди в CSV
// @Description	Отдает участников очереди файлом в порядке вступления
// @Tags			queue
// @Produce		text/csv
// @Param			id	path		string	true	"ID очереди"
// @Success		200	{string}	string	"CSV-файл"
// @Failure		404	{object}	response.ErrorResponse	"Очередь не найдена (QUEUE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/queue/{id}/export [get]
func (h *QueueHandler) Export(c *gin.Context) {
	filename, data, err := h.svc.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queue.ErrQueueNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "QUEUE_NOT_FOUND",
				Message: "Очередь не найдена",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка выгрузки очереди",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", data)
}
