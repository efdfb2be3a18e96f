package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd(t *testing.T) {
	cart := NewCart()

	require.NoError(t, cart.Add("shirt-1", "M"))
	require.NoError(t, cart.Add("shirt-1", "M"))
	require.NoError(t, cart.Add("shirt-1", "L"))

	assert.Equal(t, 2, cart["shirt-1"]["M"])
	assert.Equal(t, 1, cart["shirt-1"]["L"])
	assert.Equal(t, 3, cart.Count())
}

func TestCartAddValidation(t *testing.T) {
	cart := NewCart()

	err := cart.Add("shirt-1", "")
	assert.ErrorIs(t, err, ErrSizeRequired)

	err = cart.Add("", "M")
	assert.ErrorIs(t, err, ErrMissingCartKey)

	assert.Empty(t, cart)
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart()

	require.NoError(t, cart.SetQuantity("shirt-1", "M", 5))
	assert.Equal(t, 5, cart["shirt-1"]["M"])

	require.NoError(t, cart.SetQuantity("shirt-1", "M", 2))
	assert.Equal(t, 2, cart["shirt-1"]["M"])
}

func TestCartSetQuantityZeroRemovesEntry(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add("shirt-1", "M"))
	require.NoError(t, cart.Add("shirt-1", "L"))

	require.NoError(t, cart.SetQuantity("shirt-1", "M", 0))

	_, ok := cart["shirt-1"]["M"]
	assert.False(t, ok)
	assert.Equal(t, 1, cart["shirt-1"]["L"])
}

func TestCartSetQuantityPrunesEmptyProduct(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add("shirt-1", "M"))

	require.NoError(t, cart.SetQuantity("shirt-1", "M", -3))

	_, ok := cart["shirt-1"]
	assert.False(t, ok, "product with no sizes left must be removed entirely")
	assert.Empty(t, cart)
}

func TestCartSetQuantityZeroOnMissingEntry(t *testing.T) {
	cart := NewCart()

	require.NoError(t, cart.SetQuantity("ghost", "M", 0))
	assert.Empty(t, cart)
}

func TestCartCountEmpty(t *testing.T) {
	assert.Equal(t, 0, NewCart().Count())
}

func TestCartAmount(t *testing.T) {
	cart := Cart{"shirt-1": {"M": 2}}
	prices := map[string]float64{"shirt-1": 20}

	assert.Equal(t, 40.0, cart.Amount(prices))
}

func TestCartAmountSkipsDeletedProducts(t *testing.T) {
	cart := Cart{
		"shirt-1": {"M": 2},
		"gone-1":  {"S": 10},
	}
	prices := map[string]float64{"shirt-1": 20}

	assert.Equal(t, 40.0, cart.Amount(prices))
}

func TestCartClone(t *testing.T) {
	cart := Cart{"shirt-1": {"M": 2}}
	clone := cart.Clone()

	require.NoError(t, clone.Add("shirt-1", "M"))
	require.NoError(t, clone.Add("pants-1", "L"))

	assert.Equal(t, 2, cart["shirt-1"]["M"])
	_, ok := cart["pants-1"]
	assert.False(t, ok)
}
