package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	items := []CartItem{
		{Product: Product{ID: "a", Price: 150000}, Quantity: 2},
		{Product: Product{ID: "b", Price: 99000}, Quantity: 1},
	}
	assert.Equal(t, 399000, Subtotal(items))
	assert.Equal(t, 0, Subtotal(nil))
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod("gopay"))
	assert.True(t, ValidPaymentMethod("bank-transfer"))
	assert.False(t, ValidPaymentMethod("cash"))
	assert.False(t, ValidPaymentMethod(""))
}
