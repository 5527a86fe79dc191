package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"tienda-storefront/internal/domain"
	"tienda-storefront/internal/repository/cartblob"
	cartsvc "tienda-storefront/internal/service/cart"
)

type stubBackend struct {
	order     *domain.Order
	err       error
	lastInput domain.OrderInput
	calls     int
}

func (s *stubBackend) CreateOrder(_ context.Context, in domain.OrderInput) (*domain.Order, error) {
	s.calls++
	s.lastInput = in
	return s.order, s.err
}

func newTestStore() *cartsvc.Store {
	return cartsvc.NewStore("cart:v1:test", cartblob.NewMemory(), log.New(io.Discard, "", 0))
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	svc := New(&stubBackend{})

	_, err := svc.Submit(context.Background(), newTestStore(), CustomerInput{Name: "Ana"})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmitRejectsBlankName(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	store.Add(ctx, cartsvc.Item{ProductID: 1, UnitPrice: 100}, 1)
	svc := New(&stubBackend{})

	_, err := svc.Submit(ctx, store, CustomerInput{Name: "   "})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if len(store.Items(ctx)) != 1 {
		t.Fatalf("cart must be untouched after validation failure")
	}
}

func TestSubmitBuildsItemsAndClearsCart(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	store.Add(ctx, cartsvc.Item{ProductID: 1, UnitPrice: 50000}, 2)
	store.Add(ctx, cartsvc.Item{ProductID: 2, UnitPrice: 75000}, 1)

	backend := &stubBackend{order: &domain.Order{ID: 10, Status: domain.OrderPending, Total: 175000}}
	svc := New(backend)

	order, err := svc.Submit(ctx, store, CustomerInput{
		Name:  "  Ana Gómez ",
		Email: "ana@example.com",
		City:  "Bogotá",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 10 {
		t.Fatalf("unexpected order %+v", order)
	}

	in := backend.lastInput
	if in.CustomerName != "Ana Gómez" || in.City != "Bogotá" {
		t.Fatalf("unexpected customer fields %+v", in)
	}
	if len(in.Items) != 2 || in.Items[0].ProductID != 1 || in.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", in.Items)
	}

	if len(store.Items(ctx)) != 0 {
		t.Fatalf("cart must be cleared after successful checkout")
	}
}

func TestSubmitKeepsCartOnBackendFailure(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	store.Add(ctx, cartsvc.Item{ProductID: 1, UnitPrice: 100}, 1)

	svc := New(&stubBackend{err: errors.New("stock insuficiente")})

	if _, err := svc.Submit(ctx, store, CustomerInput{Name: "Ana"}); err == nil {
		t.Fatalf("expected error")
	}
	if len(store.Items(ctx)) != 1 {
		t.Fatalf("cart must survive a failed checkout")
	}
}
