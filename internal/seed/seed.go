package seed

import (
	"context"
	"fmt"
	"log"

	"tienda-storefront/internal/domain"
)

type backendClient interface {
	Products(ctx context.Context, search string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}

type productSeed struct {
	Name        string
	Description string
	Price       int64
	Stock       int
	Category    string
	ImageURL    string
}

// Apply pushes demo products through the backend admin API for manual
// testing. Products whose name already exists are skipped, so reruns are
// idempotent.
func Apply(ctx context.Context, client backendClient, logger *log.Logger) error {
	existing, err := client.Products(ctx, "")
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	byName := make(map[string]bool, len(existing))
	for _, p := range existing {
		byName[p.Name] = true
	}

	products := []productSeed{
		{
			Name:        "Mochila Artesanal",
			Description: "Mochila tejida a mano",
			Price:       120000,
			Stock:       8,
			Category:    "accesorios",
		},
		{
			Name:        "Sombrero Vueltiao",
			Description: "Sombrero tradicional de caña flecha",
			Price:       95000,
			Stock:       15,
			Category:    "accesorios",
		},
		{
			Name:        "Hamaca de Algodón",
			Description: "Hamaca doble tejida en telar",
			Price:       180000,
			Stock:       5,
			Category:    "hogar",
		},
		{
			Name:        "Camisa Guayabera",
			Description: "Camisa de lino manga corta",
			Price:       75000,
			Stock:       20,
			Category:    "ropa",
		},
	}

	created := 0
	for _, p := range products {
		if byName[p.Name] {
			continue
		}
		in := domain.ProductInput{
			Name:        strPtr(p.Name),
			Description: strPtr(p.Description),
			Price:       int64Ptr(p.Price),
			Stock:       intPtr(p.Stock),
			Category:    strPtr(p.Category),
		}
		if p.ImageURL != "" {
			in.ImageURL = strPtr(p.ImageURL)
		}
		if _, err := client.CreateProduct(ctx, in); err != nil {
			return fmt.Errorf("create product %q: %w", p.Name, err)
		}
		created++
	}

	logger.Printf("seeded %d products (%d already present)", created, len(products)-created)
	return nil
}

func strPtr(v string) *string { return &v }
func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
