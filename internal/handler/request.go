package handler

import (
	"github.com/koungkub/appointment-notification-service/internal/appointment"
	"github.com/koungkub/appointment-notification-service/internal/message"
)

type RegisterTokenRequest struct {
	UserID     int64  `json:"user_id" binding:"required,gt=0"`
	Token      string `json:"token" binding:"required"`
	DeviceType string `json:"device_type" binding:"omitempty,oneof=android ios web"`
}

type NotifyUserRequest struct {
	Title string         `json:"title" binding:"required"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data"`
}

func (r NotifyUserRequest) Content() message.Content {
	return message.Content{
		Title:    r.Title,
		Body:     r.Body,
		Metadata: message.MetadataFromMap(r.Data),
	}
}

type AppointmentRequest struct {
	AppointmentID int64  `json:"appointment_id" binding:"required"`
	DoctorID      int64  `json:"doctor_id"`
	PatientID     int64  `json:"patient_id"`
	DoctorUserID  int64  `json:"doctor_user_id"`
	PatientUserID int64  `json:"patient_user_id"`
	DoctorName    string `json:"doctor_name"`
	PatientName   string `json:"patient_name"`
	Date          string `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	Time          string `json:"appointment_time" binding:"required,datetime=15:04"`
}

func (r AppointmentRequest) Details() appointment.Details {
	return appointment.Details{
		AppointmentID: r.AppointmentID,
		DoctorID:      r.DoctorID,
		PatientID:     r.PatientID,
		DoctorUserID:  r.DoctorUserID,
		PatientUserID: r.PatientUserID,
		DoctorName:    r.DoctorName,
		PatientName:   r.PatientName,
		Date:          r.Date,
		Time:          r.Time,
	}
}
