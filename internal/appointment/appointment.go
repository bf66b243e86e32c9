// Package appointment builds the push notifications sent around an
// appointment's lifecycle. Callers supply the appointment details; nothing
// here reads from storage.
package appointment

import (
	"fmt"

	"github.com/koungkub/appointment-notification-service/internal/message"
)

const (
	TypeNewBooking       = "new_booking"
	TypeBookingConfirmed = "booking_confirmed"
	TypeReminder         = "consultation_reminder"
)

const (
	fallbackPatientName  = "A patient"
	fallbackDoctorName   = "Your doctor"
	fallbackOtherPatient = "Your patient"
)

type Details struct {
	AppointmentID int64
	DoctorID      int64
	PatientID     int64
	DoctorUserID  int64
	PatientUserID int64
	DoctorName    string
	PatientName   string
	Date          string
	Time          string
}

func (d Details) patientName(fallback string) string {
	if d.PatientName == "" {
		return fallback
	}
	return d.PatientName
}

func (d Details) doctorName() string {
	if d.DoctorName == "" {
		return fallbackDoctorName
	}
	return d.DoctorName
}

// NewBooking is sent to the doctor when a patient books.
func NewBooking(d Details) message.Content {
	patient := d.patientName(fallbackPatientName)

	return message.Content{
		Title: "New Appointment",
		Body:  fmt.Sprintf("%s booked an appointment", patient),
		Metadata: message.Metadata{
			"type":            message.String(TypeNewBooking),
			"appointmentId":   message.Int(d.AppointmentID),
			"doctorId":        message.Int(d.DoctorID),
			"patientName":     message.String(patient),
			"appointmentDate": message.String(d.Date),
			"appointmentTime": message.String(d.Time),
		},
	}
}

// Confirmed is sent to the patient when the doctor accepts.
func Confirmed(d Details) message.Content {
	doctor := d.doctorName()

	return message.Content{
		Title: "Appointment Confirmed",
		Body:  fmt.Sprintf("%s confirmed your appointment", doctor),
		Metadata: message.Metadata{
			"type":            message.String(TypeBookingConfirmed),
			"appointmentId":   message.Int(d.AppointmentID),
			"patientId":       message.Int(d.PatientID),
			"doctorName":      message.String(doctor),
			"appointmentDate": message.String(d.Date),
			"appointmentTime": message.String(d.Time),
		},
	}
}

func PatientReminder(d Details) message.Content {
	return reminder(d, d.doctorName())
}

func DoctorReminder(d Details) message.Content {
	return reminder(d, d.patientName(fallbackOtherPatient))
}

func reminder(d Details, with string) message.Content {
	return message.Content{
		Title: "Consultation Reminder",
		Body:  fmt.Sprintf("You have a consultation with %s today at %s", with, d.Time),
		Metadata: message.Metadata{
			"type":            message.String(TypeReminder),
			"appointmentId":   message.Int(d.AppointmentID),
			"doctorId":        message.Int(d.DoctorID),
			"patientId":       message.Int(d.PatientID),
			"appointmentDate": message.String(d.Date),
			"appointmentTime": message.String(d.Time),
		},
	}
}
