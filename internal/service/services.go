package service

import (
	"github.com/xolan/daylog/internal/config"
	"github.com/xolan/daylog/internal/session"
	"github.com/xolan/daylog/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Entry  *EntryService
	Log    *LogService
	Config *ConfigService
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	sessionPath, err := session.GetSessionPath()
	if err != nil {
		return nil, err
	}

	storagePath, err := storage.GetStoragePath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(sessionPath, storagePath, configPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(sessionPath, storagePath, configPath string, cfg config.Config) *Services {
	entryService := NewEntryService(sessionPath)
	logService := NewLogService(sessionPath, storagePath)
	configService := NewConfigService(configPath, cfg)

	return &Services{
		Entry:  entryService,
		Log:    logService,
		Config: configService,
	}
}
