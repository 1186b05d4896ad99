package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"reisemlak_backend/pkg/logger"
)

var DB *gorm.DB

func InitDB(dsn string) (*gorm.DB, error) {
	// PostgreSQL spesifik konfigürasyon
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Prepared statement sorununu çözmek için
	}

	gormConfig := &gorm.Config{
		Logger:      gormlogger.Default.LogMode(gormlogger.Error),
		PrepareStmt: false,
	}

	db, err := gorm.Open(postgres.New(pgConfig), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Tek tablo, az bağlantı yeterli
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)

	DB = db
	logger.Infof("Database connected successfully!")
	return db, nil
}

func GetDB() *gorm.DB {
	return DB
}

func MigrateDatabase(db *gorm.DB, models ...interface{}) error {
	for _, model := range models {
		if !db.Migrator().HasTable(model) {
			if err := db.Migrator().CreateTable(model); err != nil {
				return err
			}
			logger.Infof("Created table for %T", model)
			continue
		}
		if err := db.Migrator().AutoMigrate(model); err != nil {
			return err
		}
		logger.Debugf("Updated table for %T", model)
	}
	return nil
}
