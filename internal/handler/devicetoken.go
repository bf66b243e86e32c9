package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koungkub/appointment-notification-service/internal/service"
	"go.uber.org/fx"
)

type DeviceToken struct {
	services service.DeviceTokenProvider
}

type DeviceTokenParams struct {
	fx.In

	Services service.DeviceTokenProvider
}

func NewDeviceTokenHandler(params DeviceTokenParams) *DeviceToken {
	return &DeviceToken{
		services: params.Services,
	}
}

func (d *DeviceToken) RegisterHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var req RegisterTokenRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	token, err := d.services.Register(ctx, req.UserID, req.Token, req.DeviceType)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "device token registered",
		"data":    token,
	})
}

func (d *DeviceToken) ListHandler(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := userIDParam(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	tokens, err := d.services.ListByUser(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": tokens,
	})
}

func (d *DeviceToken) DeleteTokenHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if err := d.services.Remove(ctx, c.Param("token")); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "device token deleted",
	})
}

func (d *DeviceToken) DeleteByUserHandler(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := userIDParam(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	removed, err := d.services.RemoveByUser(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "device tokens deleted",
		"removed": removed,
	})
}
