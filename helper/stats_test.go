package helper

import (
	"capsule_store/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AggregateOrders_Empty(t *testing.T) {
	assert.Equal(t, model.TodayStats{}, AggregateOrders(nil))
}

func Test_AggregateOrders_Mixed(t *testing.T) {
	orders := []model.Order{
		{Total: 960, PaymentMethod: "cod", PaymentStatus: "unpaid", Status: "pending"},
		{Total: 860, PaymentMethod: "bkash", PaymentStatus: "unpaid", Status: "pending"},
		{Total: 1560, PaymentMethod: "bkash", PaymentStatus: "paid", Status: "confirmed"},
		{Total: 360, PaymentMethod: "cod", PaymentStatus: "unpaid", Status: "cancelled"},
	}

	stats := AggregateOrders(orders)
	assert.Equal(t, int64(4), stats.TotalOrders)
	assert.Equal(t, int64(3740), stats.TotalRevenue)
	assert.Equal(t, int64(2), stats.BkashOrders)
	assert.Equal(t, int64(2), stats.CodOrders)
	assert.Equal(t, int64(2), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.UnpaidBkash)
}

func Test_AggregateOrders_UnpaidBkashOnly(t *testing.T) {
	orders := []model.Order{
		{Total: 100, PaymentMethod: "bkash", PaymentStatus: "paid", Status: "delivered"},
		{Total: 100, PaymentMethod: "cod", PaymentStatus: "unpaid", Status: "delivered"},
	}

	stats := AggregateOrders(orders)
	assert.Equal(t, int64(0), stats.UnpaidBkash)
	assert.Equal(t, int64(0), stats.PendingOrders)
}
