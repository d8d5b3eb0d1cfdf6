package cmd

import (
	"context"
	"fmt"
	"net/http"

	"spectra-directory/api"
	"spectra-directory/api/checkout"
	"spectra-directory/api/directory"
	"spectra-directory/api/seo"
	"spectra-directory/api/submit"
	listingapp "spectra-directory/application/listing"
	"spectra-directory/config"
	"spectra-directory/infrastructure/payment/stripecheckout"
	"spectra-directory/infrastructure/persistence/sqlite"
	"spectra-directory/infrastructure/seed"
	"spectra-directory/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppBuilder wires configuration, storage, services and controllers
// into a runnable App.
type AppBuilder struct {
	cfg *config.Config
}

func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{cfg: cfg}
}

// Build initializes every component. The store is migrated and seeded
// before the server is constructed, so a fresh deployment serves the
// initial catalog from the first request.
func (b *AppBuilder) Build() (*App, error) {
	if err := logger.Init(&b.cfg.Log, b.cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	db, err := b.initDatabase()
	if err != nil {
		return nil, err
	}

	repo := sqlite.NewListingRepository(db)
	uow := sqlite.NewUnitOfWork(db)

	gateway := stripecheckout.New(stripecheckout.Config{
		SecretKey:  b.cfg.Payment.SecretKey,
		PriceID:    b.cfg.Payment.PriceID,
		SuccessURL: b.cfg.Payment.SuccessURL,
		CancelURL:  b.cfg.Payment.CancelURL,
		Timeout:    b.cfg.Payment.Timeout,
	})
	if gateway.Enabled() {
		logger.Info("Payment gateway configured, submissions require checkout")
	} else {
		logger.Info("Payment gateway not configured, submissions publish immediately")
	}

	svc := listingapp.NewService(repo, uow, gateway)

	if err := seed.NewSeeder(repo).Seed(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	router := api.NewRouter(b.cfg,
		directory.NewController(svc),
		submit.NewController(svc),
		checkout.NewController(svc),
		seo.NewController(svc, b.cfg.Server.BaseURL),
	)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config: b.cfg,
		router: router,
		server: server,
		db:     db,
	}, nil
}

func (b *AppBuilder) initDatabase() (*gorm.DB, error) {
	logger.Info("Opening SQLite store", zap.String("path", b.cfg.Database.Path))

	sqliteConfig := &sqlite.Config{
		Path:     b.cfg.Database.Path,
		LogLevel: b.cfg.Database.LogLevel,
	}

	db, err := sqliteConfig.Connect()
	if err != nil {
		return nil, err
	}
	if err := sqlite.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
