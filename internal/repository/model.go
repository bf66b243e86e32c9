package repository

import "time"

const DefaultDeviceType = "android"

type DeviceToken struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	Token      string    `gorm:"not null;uniqueIndex" json:"token"`
	DeviceType string    `gorm:"not null" json:"device_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ScheduledConsultation is a consultation joined with the users behind its
// doctor and patient. The consultation tables are owned by the main
// backend and only read here.
type ScheduledConsultation struct {
	ConsultationID   int64
	DoctorID         int64
	PatientID        int64
	DoctorUserID     int64
	PatientUserID    int64
	DoctorFirstname  string
	DoctorLastname   string
	PatientFirstname string
	PatientLastname  string
	ConsultationDate string
	StartTime        string
	CreatedAt        time.Time
}
