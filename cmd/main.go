package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	_ "queuely/docs"
	"queuely/internal/config"
	"queuely/internal/events"
	"queuely/internal/handlers"
	"queuely/internal/queue"
	"queuely/internal/response"
	"queuely/internal/storage"
	"queuely/internal/tasks"
	"queuely/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Queuely — живые очереди для бизнеса
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		if err := godotenv.Load(); err != nil {
			log.Println(".env не найден, используем переменные окружения")
		}
	}

	cfg := config.Load()

	db, err := storage.Connect(cfg)
	if err != nil {
		log.Fatal("Ошибка подключения к базе данных... ", err.Error())
	}

	if err := storage.Migrate(db); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	hub := ws.NewHub()
	go hub.Run()

	// Без Redis события расходятся только внутри этого экземпляра.
	var publisher events.Publisher = hub
	if cfg.RedisAddr != "" {
		relay := ws.NewRelay(hub, storage.NewRedisClient(cfg))
		go relay.Run(context.Background())
		publisher = relay
	}

	svc := queue.NewService(db, publisher)

	maintenance := tasks.NewMaintenance(db, cfg.RetiredTTL, cfg.QueueTTL)
	maintenance.InitScheduler()

	business := handlers.NewBusinessHandler(db)
	queues := handlers.NewQueueHandler(svc)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		businessGroup := api.Group("/business")
		{
			businessGroup.POST("/register", business.Register)
			businessGroup.POST("/verify", business.Verify)
		}

		queueGroup := api.Group("/queue")
		{
			queueGroup.POST("/create", queues.Create)
			queueGroup.POST("/:id/join", queues.Join)
			queueGroup.GET("/:id", queues.Get)
			queueGroup.PATCH("/:id/user/:userId", queues.UpdateUserStatus)
			queueGroup.GET("/:id/export", queues.Export)
			queueGroup.GET("/:id/ws", hub.HandleWS)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Маршрут не найден",
		})
	})

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
