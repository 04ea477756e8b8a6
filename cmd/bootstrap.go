package cmd

import (
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	config "github.com/AMSkillPower/TaskMngrCommenti/internal/configs"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/logging"
)

// bootstrap loads the environment, configures logging and opens the
// migrated database shared by every command.
func bootstrap() (config.Config, *gorm.DB, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	if err := logging.Init(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	}); err != nil {
		return config.Config{}, nil, err
	}
	if envErr != nil {
		logging.Logger.Debug(".env file not found, using environment variables")
	}

	db, err := config.NewDatabase(cfg.DatabaseDSN)
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := config.Migrate(db); err != nil {
		return config.Config{}, nil, err
	}

	return cfg, db, nil
}
