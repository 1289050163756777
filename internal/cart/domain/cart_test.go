package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_NewItem(t *testing.T) {
	cart := New("s1")
	cart.Add(LineItem{ProductID: "p1", Name: "Headphones", Price: 129.99, Image: "img"}, 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 129.99, cart.Items[0].Price)
}

func TestAdd_SameProduct_MergesQuantities(t *testing.T) {
	cart := New("s1")
	cart.Add(LineItem{ProductID: "p1", Price: 10}, 1)
	cart.Add(LineItem{ProductID: "p1", Price: 10}, 3)
	cart.Add(LineItem{ProductID: "p1", Price: 10}, 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 6, cart.Items[0].Quantity)
}

func TestAdd_DefaultsQuantityToOne(t *testing.T) {
	cart := New("s1")
	cart.Add(LineItem{ProductID: "p1"}, 0)
	cart.Add(LineItem{ProductID: "p2"}, -5)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	cart := New("s1")
	cart.Add(LineItem{ProductID: "p1"}, 1)
	cart.Add(LineItem{ProductID: "p2"}, 1)
	cart.Add(LineItem{ProductID: "p3"}, 1)
	cart.Add(LineItem{ProductID: "p2"}, 1) // merges, order unchanged

	require.Len(t, cart.Items, 3)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, "p2", cart.Items[1].ProductID)
	assert.Equal(t, "p3", cart.Items[2].ProductID)
}

func TestRemove_ExistingItem(t *testing.T) {
	cart := New("s1")
	cart.Add(LineItem{ProductID: "p1"}, 1)
	cart.Add(LineItem{ProductID: "p2"}, 1)

	cart.Remove("p1")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestRemove_MissingItem_LeavesCartUnchanged(t *testing.T) {
	cart := New("s1")
	cart.Add(LineItem{ProductID: "p1"}, 2)
	cart.Add(LineItem{ProductID: "p2"}, 1)
	before := make([]LineItem, len(cart.Items))
	copy(before, cart.Items)

	cart.Remove("nope")

	assert.Equal(t, before, cart.Items)
}

func TestSetQuantity_InPlace(t *testing.T) {
	cart := New("s1")
	cart.Add(LineItem{ProductID: "p1"}, 1)

	cart.SetQuantity("p1", 7)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestSetQuantity_ZeroOrNegative_Removes(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		cart := New("s1")
		cart.Add(LineItem{ProductID: "p1"}, 3)

		cart.SetQuantity("p1", quantity)

		assert.Empty(t, cart.Items)
	}
}

func TestSetQuantity_MissingItem_NoOp(t *testing.T) {
	cart := New("s1")
	cart.Add(LineItem{ProductID: "p1"}, 2)

	cart.SetQuantity("nope", 5)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestInvariants_AfterMixedOperations(t *testing.T) {
	cart := New("s1")
	cart.Add(LineItem{ProductID: "p1"}, 2)
	cart.Add(LineItem{ProductID: "p2"}, 1)
	cart.Add(LineItem{ProductID: "p1"}, 1)
	cart.SetQuantity("p2", 0)
	cart.Add(LineItem{ProductID: "p3"}, 4)
	cart.Remove("missing")

	seen := map[string]bool{}
	for _, item := range cart.Items {
		assert.False(t, seen[item.ProductID], "duplicate line for %s", item.ProductID)
		seen[item.ProductID] = true
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
	assert.Equal(t, 7, cart.TotalQuantity())
}

func TestIsEmpty(t *testing.T) {
	cart := New("s1")
	assert.True(t, cart.IsEmpty())

	cart.Add(LineItem{ProductID: "p1"}, 1)
	assert.False(t, cart.IsEmpty())

	cart.Remove("p1")
	assert.True(t, cart.IsEmpty())
}
