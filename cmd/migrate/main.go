package main

import (
	"context"
	"log"
	"os"

	"tienda-storefront/internal/config"
	"tienda-storefront/internal/db"
	"tienda-storefront/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.CartDBConnStr == "" {
		logger.Fatalf("CART_DB_DSN is required; the file cart store needs no migrations")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.CartDBConnStr)
	if err != nil {
		logger.Fatalf("connect cart db: %v", err)
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
