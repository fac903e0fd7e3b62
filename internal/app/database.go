package app

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/markshop/markshop/config"
)

func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	if cfg.Debug {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	switch cfg.Type {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)
		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			zap.S().Panicf("failed to connect postgres database: %v", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			zap.S().Panicf("failed to get database handle: %v", err)
		}
		sqlDB.SetMaxIdleConns(8)
		sqlDB.SetMaxOpenConns(64)
		sqlDB.SetConnMaxLifetime(time.Hour)
		return db
	default:
		dbfile := filepath.Join(workdir, cfg.Name+".db")
		db, err := gorm.Open(sqlite.Open(dbfile), gormConfig)
		if err != nil {
			zap.S().Panicf("failed to open sqlite database %s: %v", dbfile, err)
		}
		return db
	}
}
