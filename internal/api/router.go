package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "socialmedia/docs"
	"socialmedia/internal/metrics"
)

func NewRouter(handler *Handler, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log), metrics.Middleware())

	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)

	r.POST("/messages", handler.CreateMessage)
	r.GET("/messages", handler.ListMessages)
	r.GET("/messages/:messageId", handler.GetMessage)
	r.DELETE("/messages/:messageId", handler.DeleteMessage)
	r.PATCH("/messages/:messageId", handler.PatchMessage)

	r.GET("/accounts/:accountId/messages", handler.ListAccountMessages)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}
