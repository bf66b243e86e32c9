package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *HTTPServer) setupRoutes() {
	h.router.Use(h.httpMetrics.Middleware())

	h.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "server is running",
		})
	})
	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := h.router.Group("/api/v1.0")

	tokens := v1.Group("/device-tokens")
	tokens.POST("", h.deviceTokenHandler.RegisterHandler)
	tokens.GET("/user/:userId", h.deviceTokenHandler.ListHandler)
	tokens.DELETE("/user/:userId", h.deviceTokenHandler.DeleteByUserHandler)
	tokens.DELETE("/token/:token", h.deviceTokenHandler.DeleteTokenHandler)

	v1.POST("/users/:userId/notify", h.notificationHandler.NotifyUserHandler)
	v1.POST("/appointments/:event/notify", h.notificationHandler.NotifyAppointmentHandler)
}
