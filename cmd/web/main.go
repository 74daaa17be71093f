package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"tarimvitrin.com/app/internal/config"
	apphttp "tarimvitrin.com/app/internal/http"
	"tarimvitrin.com/app/internal/http/flash"
	"tarimvitrin.com/app/internal/http/sessioncookie"
	"tarimvitrin.com/app/internal/metrics"
	"tarimvitrin.com/app/internal/modules/products"
	"tarimvitrin.com/app/internal/modules/storefront"
	"tarimvitrin.com/app/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	collector := metrics.New("vitrin")

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("record store: %v", err)
	}
	store = products.NewInstrumented(store, collector)

	states, err := storage.New(context.Background(), storage.Config{
		Driver:        cfg.StateDriver,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		TTL:           cfg.StateTTL,
	})
	if err != nil {
		log.Fatalf("view state storage: %v", err)
	}
	defer states.Close()

	logger.Info("starting",
		slog.String("addr", cfg.HTTPAddr),
		slog.String("store_driver", cfg.StoreDriver),
		slog.String("state_driver", states.Driver),
	)

	r := apphttp.NewRouter(logger, apphttp.Deps{
		Runtime:  storefront.NewRuntime(store, logger).WithObserver(collector),
		States:   states.Store,
		Flash:    flash.NewCodec(cfg.CookieSecret, "flash", cfg.CookieSecure),
		Sessions: sessioncookie.New(cfg.CookieSecret, "vitrin_session", cfg.CookieSecure, cfg.StateTTL),
		Metrics:  collector,
	})
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Error("server stopped", slog.Any("err", err))
	}
}

func openStore(cfg config.Config) (products.Store, error) {
	switch cfg.StoreDriver {
	case "sql":
		db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return products.NewRepo(db), nil
	case "rest":
		return products.NewRESTStore(products.RESTConfig{
			BaseURL: cfg.StoreURL,
			APIKey:  cfg.StoreKey,
			Table:   cfg.StoreTable,
			Timeout: cfg.StoreTimeout,
		}, nil), nil
	default:
		return products.NewMemoryStore(), nil
	}
}
