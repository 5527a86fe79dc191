// Package checkout converts the current cart into an order-creation request
// against the backend. The backend validates stock and pricing; this service
// only shapes the payload and clears the cart once the order exists.
package checkout

import (
	"context"
	"errors"
	"strings"

	"tienda-storefront/internal/domain"
	cartsvc "tienda-storefront/internal/service/cart"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNameRequired = errors.New("customer name required")
)

type Service struct {
	backend backendClient
}

type backendClient interface {
	CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error)
}

func New(backend backendClient) *Service {
	return &Service{backend: backend}
}

// CustomerInput are the checkout form fields. Only the name is mandatory;
// the backend may enforce more.
type CustomerInput struct {
	Name    string `json:"customerName"`
	Email   string `json:"customerEmail"`
	Phone   string `json:"customerPhone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes"`
}

// Submit places an order built from the store's current lines. The cart is
// cleared only after the backend confirms the order; on any error the cart
// is left untouched so the visitor can retry.
func (s *Service) Submit(ctx context.Context, store *cartsvc.Store, in CustomerInput) (*domain.Order, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}

	lines := store.Items(ctx)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]domain.OrderItemInput, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	order, err := s.backend.CreateOrder(ctx, domain.OrderInput{
		CustomerName:  strings.TrimSpace(in.Name),
		CustomerEmail: strings.TrimSpace(in.Email),
		CustomerPhone: strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		City:          strings.TrimSpace(in.City),
		Notes:         strings.TrimSpace(in.Notes),
		Items:         items,
	})
	if err != nil {
		return nil, err
	}

	store.Clear(ctx)
	return order, nil
}
