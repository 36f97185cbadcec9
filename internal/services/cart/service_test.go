package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zentro/internal/models"
)

func product(id string, price float64) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: price, InStock: true}
}

func TestCart_AddAndTotals(t *testing.T) {
	c := New()
	c.Add(product("1", 10.00), 2)
	c.Add(product("2", 5.50), 1)
	c.Add(product("1", 10.00), 1) // merges with existing line

	assert.Equal(t, 4, c.TotalItems())
	assert.InDelta(t, 35.50, c.TotalPrice(), 0.001)
	require.Len(t, c.Items(), 2)
	assert.Equal(t, 3, c.Items()[0].Quantity)
}

func TestCart_SetQuantity(t *testing.T) {
	c := New()
	c.Add(product("1", 10.00), 2)

	require.NoError(t, c.SetQuantity("1", 5))
	assert.Equal(t, 5, c.TotalItems())

	require.NoError(t, c.SetQuantity("1", 0))
	assert.Empty(t, c.Items())

	assert.ErrorIs(t, c.SetQuantity("missing", 1), ErrNotInCart)
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(product("1", 10.00), 2)
	c.Clear()

	assert.Zero(t, c.TotalItems())
	assert.Zero(t, c.TotalPrice())
	assert.Empty(t, c.Items())
}

func TestManager_IsolatesUsers(t *testing.T) {
	m := NewManager()
	m.For("alice").Add(product("1", 10.00), 1)

	assert.Equal(t, 1, m.For("alice").TotalItems())
	assert.Zero(t, m.For("bob").TotalItems())
	assert.Same(t, m.For("alice"), m.For("alice"))
}
