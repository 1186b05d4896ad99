package main

import (
	"context"
	"fmt"
	"time"

	"reisemlak_backend/internal/controller"
	"reisemlak_backend/internal/model"
	"reisemlak_backend/internal/repository"
	"reisemlak_backend/internal/server"
	"reisemlak_backend/pkg/config"
	"reisemlak_backend/pkg/cron"
	"reisemlak_backend/pkg/database"
	"reisemlak_backend/pkg/email"
	"reisemlak_backend/pkg/logger"
	"reisemlak_backend/pkg/seed"
	"reisemlak_backend/pkg/storage"
	"reisemlak_backend/pkg/utils/cloudflare"
	"reisemlak_backend/pkg/utils/jwt"
	"reisemlak_backend/pkg/utils/location"
)

func newStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
		db, err := database.InitDB(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.MigrateDatabase(db, &model.KVEntry{}); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return storage.NewGormStore(db), nil
	case "redis":
		client, err := storage.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client, cfg.RedisPrefix), nil
	case "memory":
		logger.Warnf("Using in-memory storage, data is lost on restart")
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Driver)
	}
}

func main() {
	cfg := config.Load()
	logger.InitLogger("reisemlak", cfg.Log.Level)

	ctx := context.Background()

	jwt.Init(cfg.JWT.Secret, cfg.JWT.TTL)
	if cfg.JWT.Secret == "your-secret-key" && cfg.Server.Environment == "production" {
		logger.Fatalf("JWT_SECRET must be set in production")
	}

	if err := location.Init(); err != nil {
		logger.Fatalf("Could not initialize location data: %v", err)
	}

	store, err := newStore(ctx, cfg.Storage)
	if err != nil {
		logger.Fatalf("Could not initialize storage: %v", err)
	}
	logger.Infof("Storage driver: %s", cfg.Storage.Driver)

	repos := repository.New(store)

	if err := seed.SeedAdminCredential(ctx, repos.Credentials, cfg.Admin.InitialPassword); err != nil {
		logger.Fatalf("Could not seed admin credential: %v", err)
	}
	if err := seed.SeedListings(ctx, repos.Listings, time.Now()); err != nil {
		logger.Warnf("Could not seed demo listings: %v", err)
	}

	var notifier controller.OfferNotifier
	if err := email.InitEmailService(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.NotifyTo); err != nil {
		logger.Warnf("Email service disabled: %v", err)
	} else {
		notifier = email.GlobalEmailService
		if _, err := cron.InitOfferDigestCron(cfg.Schedule.OfferDigest, repos.Offers, email.GlobalEmailService); err != nil {
			logger.Errorf("Could not initialize offer digest cron: %v", err)
		}
	}

	var media controller.MediaStore
	if cfg.MediaEnabled() {
		uploader, err := cloudflare.NewUploader(ctx, cfg.R2)
		if err != nil {
			logger.Fatalf("Could not initialize R2 uploader: %v", err)
		}
		media = uploader
	} else {
		logger.Warnf("R2 credentials missing, image uploads disabled")
	}

	app := server.NewApp(controller.New(repos, notifier, media), true)

	logger.Infof("Server is running on port %s", cfg.Server.Port)
	logger.Fatalf("Server stopped: %v", app.Listen(":"+cfg.Server.Port))
}
