// Package app wires configuration, storage, clients, and services into the
// shared core used by cmd/advisor-server and cmd/advisor-demo.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/advisor/internal/clients/yahoo"
	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/services/advisor"
	"github.com/bobmcallan/advisor/internal/services/market"
	"github.com/bobmcallan/advisor/internal/services/report"
	"github.com/bobmcallan/advisor/internal/storage"
)

// App holds all initialized services, clients, and storage.
type App struct {
	Config         *common.Config
	Logger         *common.Logger
	Storage        interfaces.StorageManager
	QuoteClient    interfaces.QuoteClient
	MarketService  interfaces.MarketService
	AdvisorService interfaces.AdvisorService
	ReportService  interfaces.ReportService
	StartupTime    time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, clients, and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	// Get binary directory for self-contained operation
	binDir := getBinaryDir()

	// Load configuration - check provided path, ADVISOR_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("ADVISOR_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "advisor.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/advisor.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Data.Path != "" && !filepath.IsAbs(config.Storage.Data.Path) {
		config.Storage.Data.Path = filepath.Join(binDir, config.Storage.Data.Path)
	}

	// Resolve relative log file path to binary directory
	if config.Logging.FilePath != "" && !filepath.IsAbs(config.Logging.FilePath) {
		config.Logging.FilePath = filepath.Join(binDir, config.Logging.FilePath)
	}

	// Initialize logger
	logger := common.NewLoggerFromConfig(config.Logging)

	// Initialize storage
	storageManager, err := storage.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Quote client is optional; advice composition works without market data.
	// The interface stays nil when disabled so downstream nil checks hold.
	var quoteClient interfaces.QuoteClient
	if config.Clients.Quotes.Disabled {
		logger.Warn().Msg("Quote client disabled - market snapshots will be unavailable")
	} else {
		quoteClient = yahoo.NewClient(
			yahoo.WithLogger(logger),
			yahoo.WithRateLimit(config.Clients.Quotes.RateLimit),
			yahoo.WithLookbackDays(config.Clients.Quotes.LookbackDays),
			yahoo.WithTimeout(config.Clients.Quotes.GetTimeout()),
		)
	}

	// Initialize services
	marketService := market.NewService(quoteClient, logger)
	advisorService := advisor.NewService(config, marketService, logger)
	reportService := report.NewService(logger)

	a := &App{
		Config:         config,
		Logger:         logger,
		Storage:        storageManager,
		QuoteClient:    quoteClient,
		MarketService:  marketService,
		AdvisorService: advisorService,
		ReportService:  reportService,
		StartupTime:    startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}
