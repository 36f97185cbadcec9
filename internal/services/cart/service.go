// Package cart implements the session-scoped shopping cart. Carts are
// explicit objects owned by a Manager, never package-level state, so tests
// can build isolated instances.
package cart

import (
	"errors"
	"sync"

	"zentro/internal/models"
)

// ErrNotInCart is returned when an operation targets a product the cart
// does not hold.
var ErrNotInCart = errors.New("product not in cart")

// Cart holds one user's line items.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts qty units of product in the cart, merging with an existing line.
func (c *Cart) Add(product models.Product, qty int) {
	if qty <= 0 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, models.CartItem{Product: product, Quantity: qty})
}

// SetQuantity replaces the quantity of a line; zero or less removes it.
func (c *Cart) SetQuantity(productID string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			if qty <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity = qty
			}
			return nil
		}
	}
	return ErrNotInCart
}

// Remove deletes a line from the cart.
func (c *Cart) Remove(productID string) error {
	return c.SetQuantity(productID, 0)
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems returns the summed quantity across lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the summed line prices.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Clear empties the cart. Called exactly once after a successful payment.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Manager hands out one cart per user.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewManager creates an empty cart manager.
func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// For returns the cart for userID, creating it on first use.
func (m *Manager) For(userID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	if !ok {
		c = New()
		m.carts[userID] = c
	}
	return c
}
