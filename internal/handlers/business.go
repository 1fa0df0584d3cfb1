package handlers

import (
	"errors"
	"net/http"
	"strings"

	"queuely/internal/models"
	"queuely/internal/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BusinessHandler обслуживает регистрацию бизнеса: поиск по email или создание.
type BusinessHandler struct {
	db *gorm.DB
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{db: db}
}

type RegisterBusinessRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type VerifyBusinessRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// Register обрабатывает полную регистрацию бизнеса
// @Summary		Регистрация бизнеса
// @Description	Находит бизнес по email или создает новый. Email нормализуется к нижнему регистру
// @Tags			business
// @Accept			json
// @Produce		json
// @Param			business	body		RegisterBusinessRequest	true	"Данные бизнеса"
// @Success		200	{object}	map[string]interface{}	"Бизнес уже зарегистрирован"
// @Success		201	{object}	map[string]interface{}	"Бизнес зарегистрирован"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/business/register [post]
func (h *BusinessHandler) Register(c *gin.Context) {
	var req RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Не заполнены обязательные поля или email невалиден",
			Details: err.Error(),
		})
		return
	}
	h.lookupOrCreate(c, req.Name, req.Email)
}

// Verify обрабатывает упрощенную регистрацию бизнеса
// @Summary		Проверка или создание бизнеса
// @Description	Находит бизнес по email или создает новый, формат email не проверяется
// @Tags			business
// @Accept			json
// @Produce		json
// @Param			business	body		VerifyBusinessRequest	true	"Данные бизнеса"
// @Success		200	{object}	map[string]interface{}	"Бизнес уже существует"
// @Success		201	{object}	map[string]interface{}	"Бизнес зарегистрирован"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/business/verify [post]
func (h *BusinessHandler) Verify(c *gin.Context) {
	var req VerifyBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Не указаны имя или email",
			Details: err.Error(),
		})
		return
	}
	h.lookupOrCreate(c, req.Name, req.Email)
}

// lookupOrCreate ищет бизнес по нормализованному email и создает его,
// если записи нет. Гонка одновременных регистраций разрешается уникальным
// индексом на email: проигравший запрос возвращает уже созданную запись.
func (h *BusinessHandler) lookupOrCreate(c *gin.Context, name, email string) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.Business
	if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Бизнес уже зарегистрирован",
			"business": existing,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка поиска бизнеса",
		})
		return
	}

	business := models.Business{
		Name:  strings.TrimSpace(name),
		Email: email,
	}
	if err := h.db.Create(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
				c.JSON(http.StatusOK, gin.H{
					"message":  "Бизнес уже зарегистрирован",
					"business": existing,
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании бизнеса",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Бизнес зарегистрирован",
		"business": business,
	})
}
