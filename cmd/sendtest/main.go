// Command sendtest sends the "appointment booked" and "appointment
// confirmed" notifications once, in that order, and exits non-zero as
// soon as the push provider rejects one of them.
package main

import (
	"context"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/appointment-notification-service/internal/appointment"
	"github.com/koungkub/appointment-notification-service/internal/client"
	"github.com/koungkub/appointment-notification-service/internal/dispatcher"
	"github.com/koungkub/appointment-notification-service/internal/message"
	"github.com/koungkub/appointment-notification-service/internal/metrics"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	DoctorToken   string        `envconfig:"SENDTEST_DOCTOR_TOKEN" default:"REPLACE_WITH_DOCTOR_TOKEN"`
	PatientToken  string        `envconfig:"SENDTEST_PATIENT_TOKEN" default:"REPLACE_WITH_PATIENT_TOKEN"`
	AppointmentID int64         `envconfig:"SENDTEST_APPOINTMENT_ID" default:"1"`
	DoctorID      int64         `envconfig:"SENDTEST_DOCTOR_ID" default:"1"`
	PatientID     int64         `envconfig:"SENDTEST_PATIENT_ID" default:"1"`
	PatientName   string        `envconfig:"SENDTEST_PATIENT_NAME" default:"ridah houssin"`
	DoctorName    string        `envconfig:"SENDTEST_DOCTOR_NAME" default:"Dr. ahmed mahmoud"`
	Date          string        `envconfig:"SENDTEST_APPOINTMENT_DATE" default:"2025-12-15"`
	Time          string        `envconfig:"SENDTEST_APPOINTMENT_TIME" default:"15:00"`
	Timeout       time.Duration `envconfig:"SENDTEST_TIMEOUT" default:"30s"`
}

func NewConfig() Config {
	var cfg Config
	envconfig.MustProcess("", &cfg)

	return cfg
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := NewConfig()

	var d *dispatcher.Dispatcher
	app := fx.New(
		fx.Provide(func() *zap.Logger { return logger }),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
		metrics.Module,
		dispatcher.Module,
		client.Module,
		fx.Populate(&d),
	)
	if err := app.Err(); err != nil {
		logger.Fatal("failed to initialize push provider", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}
	defer app.Stop(context.Background())

	if _, err := d.DispatchAll(ctx, notifications(cfg)...); err != nil {
		logger.Fatal("test notifications aborted", zap.Error(err))
	}
}

// notifications returns the booking notification for the doctor followed
// by the confirmation for the patient.
func notifications(cfg Config) []message.Request {
	details := appointment.Details{
		AppointmentID: cfg.AppointmentID,
		DoctorID:      cfg.DoctorID,
		PatientID:     cfg.PatientID,
		DoctorName:    cfg.DoctorName,
		PatientName:   cfg.PatientName,
		Date:          cfg.Date,
		Time:          cfg.Time,
	}

	return []message.Request{
		appointment.NewBooking(details).To(cfg.DoctorToken),
		appointment.Confirmed(details).To(cfg.PatientToken),
	}
}
