// Package catalog serves product listings. The backend owns the catalog;
// this service forwards the search term and applies the storefront-side
// refinements (stock, price range, category, sort) to the fetched slice.
package catalog

import (
	"context"
	"sort"
	"strings"

	"tienda-storefront/internal/domain"
)

type Service struct {
	backend backendClient
}

type backendClient interface {
	Products(ctx context.Context, search string) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
}

func New(backend backendClient) *Service {
	return &Service{backend: backend}
}

// Query are the listing refinements. Zero values mean "no constraint";
// MaxPrice of zero leaves the upper bound open.
type Query struct {
	Search   string
	Category string
	MinPrice int64
	MaxPrice int64
	InStock  bool
	Sort     string
}

// Sort keys accepted by List. Unknown keys fall back to name-asc.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortNewest    = "newest"
)

func (s *Service) List(ctx context.Context, q Query) ([]domain.Product, error) {
	products, err := s.backend.Products(ctx, strings.TrimSpace(q.Search))
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.InStock && p.Stock <= 0 {
			continue
		}
		if p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.Sort)
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.backend.Product(ctx, id)
}

func sortProducts(products []domain.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool { return nameLess(products[j], products[i]) })
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	default: // SortNameAsc
		sort.SliceStable(products, func(i, j int) bool { return nameLess(products[i], products[j]) })
	}
}

func nameLess(a, b domain.Product) bool {
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}
