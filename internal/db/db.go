package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/slot-booker/internal/config"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

// constraints gorm tags cannot express. Each statement is safe to rerun.
var constraints = []string{
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'reservations_valid_range') THEN
			ALTER TABLE reservations
				ADD CONSTRAINT reservations_valid_range CHECK (start_time < end_time);
		END IF;
	END $$`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'reservations_valid_status') THEN
			ALTER TABLE reservations
				ADD CONSTRAINT reservations_valid_status CHECK (status IN ('confirmed', 'cancelled'));
		END IF;
	END $$`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'reservations_no_overlap') THEN
			ALTER TABLE reservations
				ADD CONSTRAINT reservations_no_overlap
				EXCLUDE USING gist (tstzrange(start_time, end_time, '[)') WITH &&)
				WHERE (status = 'confirmed');
		END IF;
	END $$`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_range
		ON reservations USING gist (tstzrange(start_time, end_time, '[)'))`,
}

func NewDB(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// DO blocks cannot go through the prepared statement cache
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	for _, stmt := range constraints {
		if _, err := sqlDB.Exec(stmt); err != nil {
			return fmt.Errorf("apply constraint: %w", err)
		}
	}
	return nil
}
