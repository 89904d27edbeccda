package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func ConnectDataBase(ctx context.Context, dsn string, log gormlogger.Interface, pingTimeout time.Duration) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         log,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no banco: %w", err)
	}

	if err := Ping(ctx, database, pingTimeout); err != nil {
		return nil, err
	}

	return database, nil
}

func Ping(ctx context.Context, database *gorm.DB, timeout time.Duration) error {
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("erro ao obter sql.DB do gorm: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("erro ao pingar o banco: %w", err)
	}
	return nil
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
