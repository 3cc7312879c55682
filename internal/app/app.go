// Package app provides application initialization and dependency injection.
package app

import (
	"os"

	"github.com/azurecafe/cafe-service/config"
	"github.com/azurecafe/cafe-service/internal/console"
	"github.com/azurecafe/cafe-service/internal/domain/model"
	"github.com/azurecafe/cafe-service/internal/logger"
	"github.com/azurecafe/cafe-service/internal/repository"
	"github.com/azurecafe/cafe-service/internal/service"
)

// InitializeApp creates and wires all application dependencies and returns
// the console ready to run.
func InitializeApp(cfg config.Config) (*console.Console, error) {
	logger.Init(cfg.Logging.Level, cfg.Logging.Pretty)

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return nil, model.WrapPersistence(err, "cannot create data directory")
	}

	repos := NewFileRepositories(cfg.Storage.DataDir)
	cafe, err := service.NewCafe(cfg, repos)
	if err != nil {
		return nil, err
	}

	tokens := service.NewTokenService(cfg.Auth)
	receipts := service.NewReceiptService(cfg.Receipts)
	return console.New(cfg.Cafe.Name, os.Stdin, os.Stdout, cafe, tokens, receipts), nil
}

// NewFileRepositories builds the flat-file repository set rooted at dataDir.
func NewFileRepositories(dataDir string) service.Repositories {
	return service.Repositories{
		Inventory: repository.NewFileInventoryRepository(dataDir),
		Menu:      repository.NewFileMenuRepository(dataDir),
		Users:     repository.NewFileUserRepository(dataDir),
		Orders:    repository.NewFileOrderRepository(dataDir),
		Budget:    repository.NewFileBudgetRepository(dataDir),
		Stats:     repository.NewFileStatsRepository(dataDir),
	}
}
