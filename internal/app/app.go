package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/awesomegic/teller/internal/config"
	"github.com/awesomegic/teller/internal/constants"
	"github.com/awesomegic/teller/internal/service"
	"github.com/awesomegic/teller/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp initializes config, database and the service layer, then returns
// the App entity plus a cleanup func.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := getAppDataDir()
		dbPathRaw = filepath.Join(appDir, constants.AppName+".db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore, cfg)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}
