// Package cart keeps per-user shopping carts until checkout turns them into an order.
package cart

import (
	"slices"
	"sync"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	carts map[string][]entities.CartItem
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]entities.CartItem)}
}

// Items returns a copy of the user's cart.
func (s *Store) Items(userID string) []entities.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.carts[userID])
}

// Add puts item into the cart. An item for the same product, size and color
// increases the quantity of the existing line instead.
func (s *Store) Add(userID string, item entities.CartItem) entities.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(userID, item)
}

func (s *Store) add(userID string, item entities.CartItem) entities.CartItem {
	items := s.carts[userID]
	for i := range items {
		if items[i].SameLine(item) {
			items[i].Quantity += item.Quantity
			items[i].Product = item.Product
			return items[i]
		}
	}

	item.ID = uuid.NewString()
	s.carts[userID] = append(items, item)
	return item
}

// Merge adds every item of other into the user's cart, e.g. a cart built before sign in.
func (s *Store) Merge(userID string, other []entities.CartItem) []entities.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range other {
		if it.Quantity < 1 {
			continue
		}
		s.add(userID, it)
	}
	return slices.Clone(s.carts[userID])
}

// SetQuantity changes the quantity of a line. Zero or less removes it.
func (s *Store) SetQuantity(userID, itemID string, quantity int) error {
	if quantity < 1 {
		return s.Remove(userID, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	i := slices.IndexFunc(items, func(it entities.CartItem) bool { return it.ID == itemID })
	if i < 0 {
		return entities.ErrCartItemMissing
	}
	items[i].Quantity = quantity
	return nil
}

func (s *Store) Remove(userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	i := slices.IndexFunc(items, func(it entities.CartItem) bool { return it.ID == itemID })
	if i < 0 {
		return entities.ErrCartItemMissing
	}
	s.carts[userID] = slices.Delete(items, i, i+1)
	return nil
}

// RemoveOrdered takes the ordered quantities out of the cart. Lines added or
// increased after the order was placed stay in the cart.
func (s *Store) RemoveOrdered(userID string, ordered []entities.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for _, o := range ordered {
		i := slices.IndexFunc(items, func(it entities.CartItem) bool {
			return it.Product.ID == o.ProductID && it.Size == o.Size && it.Color == o.Color
		})
		if i < 0 {
			continue
		}
		items[i].Quantity -= o.Quantity
		if items[i].Quantity < 1 {
			items = slices.Delete(items, i, i+1)
		}
	}

	if len(items) == 0 {
		delete(s.carts, userID)
		return
	}
	s.carts[userID] = items
}

func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
