package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillRequestBindsFullyDiscountedBill(t *testing.T) {
	body := []byte(`{
		"subtotal": 100,
		"discount_amount": 100,
		"total_amount": 0,
		"payment_mode": "cash",
		"items": [{"item_name": "Parle-G Biscuits", "quantity": 10, "unit_price": 10, "total_price": 100}]
	}`)

	var req BillRequest
	require.NoError(t, binding.JSON.BindBody(body, &req))

	in := req.ToCreateBillInput("")
	assert.Equal(t, 0.0, in.TotalAmount)
	assert.Equal(t, 100.0, in.DiscountAmount)
}

func TestBillRequestStillRequiresItemsAndMode(t *testing.T) {
	var req BillRequest
	err := binding.JSON.BindBody([]byte(`{"total_amount": 50, "payment_mode": "cash"}`), &req)
	assert.Error(t, err)

	err = binding.JSON.BindBody([]byte(`{
		"total_amount": 50,
		"items": [{"item_name": "Tata Salt 1kg", "quantity": 1, "unit_price": 50, "total_price": 50}]
	}`), &req)
	assert.Error(t, err)
}
