package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const StatusScheduled = "scheduled"

//go:generate mockgen -package mockrepository -destination ./mock/mockpersistent.go . TokenPersistentProvider,ConsultationPersistentProvider
type TokenPersistentProvider interface {
	UpsertToken(ctx context.Context, token *DeviceToken) error
	FindByToken(ctx context.Context, token string) (DeviceToken, error)
	FindByUser(ctx context.Context, userID int64) ([]DeviceToken, error)
	DeleteByToken(ctx context.Context, token string) (int64, error)
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
	DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) ([]DeviceToken, error)
}

type ConsultationPersistentProvider interface {
	FindScheduled(ctx context.Context, dates []string) ([]ScheduledConsultation, error)
}

var (
	_ TokenPersistentProvider        = (*Persistent)(nil)
	_ ConsultationPersistentProvider = (*Persistent)(nil)
)

type Persistent struct {
	conn *gorm.DB
}

type PersistentParams struct {
	fx.In

	Config PersistentConfig
	Logger *zap.Logger
}

func NewPersistent(lc fx.Lifecycle, params PersistentParams) (*Persistent, error) {
	if params.Config.AutoMigrate {
		if err := Migrate(params.Config, params.Logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	p, err := newPersistent(postgres.Open(params.Config.DSN()))
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := p.conn.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return p, nil
}

func newPersistent(dialector gorm.Dialector) (*Persistent, error) {
	conn, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	return &Persistent{
		conn: conn,
	}, nil
}

type PersistentConfig struct {
	Host        string `envconfig:"DB_HOST" required:"true"`
	Port        string `envconfig:"DB_PORT" required:"true"`
	Name        string `envconfig:"DB_NAME" required:"true"`
	Username    string `envconfig:"DB_USERNAME" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

func NewPersistentConfig() PersistentConfig {
	var cfg PersistentConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (c PersistentConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host,
		c.Username,
		c.Password,
		c.Name,
		c.Port,
		c.SSLMode,
	)
}

// UpsertToken inserts token or, when the token string is already known,
// moves it to token.UserID and refreshes its device type and updated_at.
func (p *Persistent) UpsertToken(ctx context.Context, token *DeviceToken) error {
	return p.conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "device_type", "updated_at"}),
		}).
		Create(token).Error
}

func (p *Persistent) FindByToken(ctx context.Context, token string) (DeviceToken, error) {
	return gorm.
		G[DeviceToken](p.conn).
		Where("token = ?", token).
		First(ctx)
}

func (p *Persistent) FindByUser(ctx context.Context, userID int64) ([]DeviceToken, error) {
	tokens, err := gorm.
		G[DeviceToken](p.conn).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(ctx)
	if err != nil {
		return []DeviceToken{}, err
	}

	return tokens, nil
}

func (p *Persistent) DeleteByToken(ctx context.Context, token string) (int64, error) {
	result := p.conn.WithContext(ctx).
		Where("token = ?", token).
		Delete(&DeviceToken{})

	return result.RowsAffected, result.Error
}

func (p *Persistent) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	result := p.conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&DeviceToken{})

	return result.RowsAffected, result.Error
}

// DeleteUpdatedBefore removes tokens not refreshed since cutoff and returns
// the removed rows.
func (p *Persistent) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) ([]DeviceToken, error) {
	var removed []DeviceToken
	err := p.conn.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("updated_at < ?", cutoff).
		Delete(&removed).Error
	if err != nil {
		return []DeviceToken{}, err
	}

	return removed, nil
}

// FindScheduled returns the scheduled consultations on the given
// YYYY-MM-DD dates, ordered by date and start time.
func (p *Persistent) FindScheduled(ctx context.Context, dates []string) ([]ScheduledConsultation, error) {
	var consultations []ScheduledConsultation
	err := p.conn.WithContext(ctx).
		Table("consultations AS c").
		Select(`c.consultation_id,
			c.doctor_id,
			c.patient_id,
			COALESCE(d.user_id, 0) AS doctor_user_id,
			c.patient_id AS patient_user_id,
			COALESCE(du.firstname, '') AS doctor_firstname,
			COALESCE(du.lastname, '') AS doctor_lastname,
			COALESCE(pu.firstname, '') AS patient_firstname,
			COALESCE(pu.lastname, '') AS patient_lastname,
			to_char(c.consultation_date, 'YYYY-MM-DD') AS consultation_date,
			to_char(c.start_time, 'HH24:MI') AS start_time,
			c.created_at`).
		Joins("LEFT JOIN doctors AS d ON d.doctor_id = c.doctor_id").
		Joins("LEFT JOIN users AS du ON du.user_id = d.user_id").
		Joins("LEFT JOIN users AS pu ON pu.user_id = c.patient_id").
		Where("c.status = ?", StatusScheduled).
		Where("c.consultation_date IN ?", dates).
		Order("c.consultation_date").
		Order("c.start_time").
		Scan(&consultations).Error
	if err != nil {
		return []ScheduledConsultation{}, err
	}

	return consultations, nil
}
