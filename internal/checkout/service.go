package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"deliciae/internal/cart"
	"deliciae/internal/catalog"
	"deliciae/internal/logging"
	"deliciae/internal/order"

	"github.com/google/uuid"
)

// Mode is how the order will be fulfilled.
type Mode string

const (
	ModeDelivery Mode = "delivery"
	ModePickup   Mode = "pickup"
	ModeDining   Mode = "dining"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeDelivery, ModePickup, ModeDining:
		return true
	}
	return false
}

var ErrEmptyCart = errors.New("cart is empty")

type Service struct {
	store   *cart.Store
	catalog *catalog.Client
	orders  *order.Client
	log     *slog.Logger
}

func NewService(store *cart.Store, catalogClient *catalog.Client, orders *order.Client) *Service {
	return &Service{
		store:   store,
		catalog: catalogClient,
		orders:  orders,
		log:     logging.New("checkout"),
	}
}

// PlaceOrder submits the current cart as one dining order. The restaurant
// is resolved by re-fetching the first line item from the catalog, since
// the cart only keeps the restaurant's display name. On success the cart
// is cleared; any submission failure leaves it untouched so the user can
// retry.
func (s *Service) PlaceOrder(ctx context.Context, mode Mode) (*order.Order, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown checkout mode %q", mode)
	}

	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	first, err := s.catalog.GetFoodItem(ctx, snap.Items[0].ID)
	if err != nil {
		return nil, fmt.Errorf("resolve restaurant: %w", err)
	}

	// The order model has no per-item quantity: a line with quantity n is
	// sent as n copies of the id.
	var ids []int64
	for _, item := range snap.Items {
		for i := 0; i < item.Quantity; i++ {
			ids = append(ids, item.ID)
		}
	}

	placed, err := s.orders.Create(ctx, order.CreateRequest{
		Restaurant:  first.Restaurant.ID,
		Items:       ids,
		TotalAmount: snap.Bill.Total.InexactFloat64(),
		Status:      order.StatusOrdered,
	}, uuid.New().String())
	if err != nil {
		return nil, err
	}

	if err := s.store.Clear(ctx); err != nil {
		// The order went through; a stuck cart must not read as a failed
		// checkout. The next mutation will rewrite the state anyway.
		s.log.Error("cart clear after checkout failed", "order_id", placed.ID, "error", err)
	}

	return placed, nil
}
