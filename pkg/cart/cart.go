// Package cart manages a user's transient cart state: created on first add,
// mutated by increment/decrement, cleared on logout or order confirmation.
package cart

import (
	"context"
	"errors"

	"github.com/example/foodcourt/pkg/models"
)

var ErrItemNotInCart = errors.New("item not in cart")

// Store holds the per-user transient cart state.
type Store interface {
	GetCart(ctx context.Context, userID string) ([]models.CartItem, error)
	SaveCart(ctx context.Context, userID string, items []models.CartItem) error
	ClearCart(ctx context.Context, userID string) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.store.GetCart(ctx, userID)
}

// Add puts an item in the cart; adding an item already present bumps its
// quantity instead of duplicating the line.
func (s *Service) Add(ctx context.Context, userID string, item models.CartItem) ([]models.CartItem, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	items, err := s.store.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].MenuID == item.MenuID {
			items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, item)
	}

	if err := s.store.SaveCart(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Increment(ctx context.Context, userID, menuID string) ([]models.CartItem, error) {
	return s.adjust(ctx, userID, menuID, 1)
}

// Decrement lowers a line's quantity by one; decrementing a quantity-1 line
// removes it from the cart.
func (s *Service) Decrement(ctx context.Context, userID, menuID string) ([]models.CartItem, error) {
	return s.adjust(ctx, userID, menuID, -1)
}

func (s *Service) adjust(ctx context.Context, userID, menuID string, delta int64) ([]models.CartItem, error) {
	items, err := s.store.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].MenuID == menuID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotInCart
	}

	items[idx].Quantity += delta
	if items[idx].Quantity < 1 {
		items = append(items[:idx], items[idx+1:]...)
	}

	if err := s.store.SaveCart(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.store.ClearCart(ctx, userID)
}
