package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tienda-storefront/internal/backend"
	"tienda-storefront/internal/config"
	"tienda-storefront/internal/db"
	"tienda-storefront/internal/httpserver"
	"tienda-storefront/internal/migrate"
	"tienda-storefront/internal/repository/cartblob"
	"tienda-storefront/internal/service/adminauth"
	cartsvc "tienda-storefront/internal/service/cart"
	"tienda-storefront/internal/service/catalog"
	"tienda-storefront/internal/service/checkout"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var storage cartblob.Storage
	if cfg.CartDBConnStr != "" {
		pool, err := db.Connect(ctx, cfg.CartDBConnStr)
		if err != nil {
			logger.Fatalf("connect cart db: %v", err)
		}
		defer pool.Close()
		if err := migrate.Apply(ctx, pool); err != nil {
			logger.Fatalf("apply cart migrations: %v", err)
		}
		storage = cartblob.NewPostgres(pool)
		logger.Printf("cart storage: postgres")
	} else {
		var err error
		storage, err = cartblob.NewFile(cfg.CartDataDir)
		if err != nil {
			logger.Fatalf("init cart file storage: %v", err)
		}
		logger.Printf("cart storage: files in %s", cfg.CartDataDir)
	}

	client := backend.New(cfg.BackendURL, cfg.BackendTimeout)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, storage, httpserver.Deps{
		Carts:    cartsvc.NewManager(storage, logger),
		Catalog:  catalog.New(client),
		Checkout: checkout.New(client),
		Auth:     adminauth.New(cfg.AdminPassword),
		Admin:    client,
		Orders:   client,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (backend %s)", cfg.HTTPAddr, cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
