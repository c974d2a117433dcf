package db

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"newsquiz/internal/config"
	"newsquiz/internal/quiz"
)

// Init opens the Postgres connection and migrates the quiz table.
func Init(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(&quiz.Record{}); err != nil {
		return nil, err
	}

	log.Info("[DB] database connected and migrated")
	return gdb, nil
}
