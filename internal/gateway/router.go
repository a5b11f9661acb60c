package gateway

import (
	"github.com/orderdesk/internal/config"
	"github.com/orderdesk/internal/dialogue"
	"github.com/orderdesk/internal/logger"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP surface: health probe plus the token-guarded
// bot webhook.
func SetupRouter(cfg *config.Config, engine *dialogue.Engine) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))

	handler := NewHandler(engine)

	r.GET("/healthz", handler.HandleHealthz)

	apiV1 := r.Group("/api/v1")
	{
		bot := apiV1.Group("/bot")
		bot.Use(BotTokenMiddleware(cfg.Bot.Token))
		{
			bot.POST("/webhook", handler.HandleWebhook)
		}
	}

	return r
}
