package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/koungkub/appointment-notification-service/internal/service"
	"go.uber.org/fx"
)

var Module = fx.Module("handler",
	fx.Provide(
		NewNotificationHandler,
		NewDeviceTokenHandler,
	),
)

const (
	EventBooked    = "booked"
	EventConfirmed = "confirmed"
	EventReminder  = "reminder"
)

type Notification struct {
	services service.NotificationProvider
}

type NotificationParams struct {
	fx.In

	Services service.NotificationProvider
}

func NewNotificationHandler(params NotificationParams) *Notification {
	return &Notification{
		services: params.Services,
	}
}

func (n *Notification) NotifyUserHandler(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := userIDParam(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	var req NotifyUserRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	summary, err := n.services.SendToUser(ctx, userID, req.Content())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notification sent",
		"summary": summary,
	})
}

func (n *Notification) NotifyAppointmentHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var req AppointmentRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	details := req.Details()
	summary, err := func() (service.Summary, error) {
		switch c.Param("event") {
		case EventBooked:
			return n.services.NotifyDoctorOnBooking(ctx, details)
		case EventConfirmed:
			return n.services.NotifyPatientOnConfirmation(ctx, details)
		case EventReminder:
			return n.services.SendReminder(ctx, details)
		default:
			return service.Summary{}, fmt.Errorf("%w: not supported appointment event", service.ErrInvalidArgument)
		}
	}()
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notification sent",
		"summary": summary,
	})
}

func userIDParam(c *gin.Context) (int64, error) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, errors.New("user id must be a positive integer")
	}
	return userID, nil
}
