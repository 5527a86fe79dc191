package main

import (
	"context"
	"log"
	"os"

	"tienda-storefront/internal/backend"
	"tienda-storefront/internal/config"
	"tienda-storefront/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	client := backend.New(cfg.BackendURL, cfg.BackendTimeout)

	if err := seed.Apply(context.Background(), client, logger); err != nil {
		logger.Fatalf("seed backend: %v", err)
	}
}
