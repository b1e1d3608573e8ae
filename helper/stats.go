package helper

import (
	"capsule_store/constants"
	"capsule_store/database"
	"capsule_store/model"
	"context"
	"encoding/json"
	"log"
	"time"
)

const statsCacheKey = "stats:today"
const statsCacheTTL = 5 * time.Minute

// AggregateOrders folds a slice of orders into dashboard stats. Pure, so it
// is testable without a database.
func AggregateOrders(orders []model.Order) model.TodayStats {
	var stats model.TodayStats
	for _, o := range orders {
		stats.TotalOrders++
		stats.TotalRevenue += int64(o.Total)
		switch o.PaymentMethod {
		case constants.PAYMENT_METHOD_BKASH:
			stats.BkashOrders++
			if o.PaymentStatus == constants.PAYMENT_STATUS_UNPAID {
				stats.UnpaidBkash++
			}
		case constants.PAYMENT_METHOD_COD:
			stats.CodOrders++
		}
		if o.Status == constants.ORDER_STATUS_PENDING {
			stats.PendingOrders++
		}
	}
	return stats
}

// FetchTodayStats aggregates orders created since local midnight. Backend
// failures degrade to an all-zero result; the dashboard must never break on
// a stats read.
func FetchTodayStats() model.TodayStats {
	now := time.Now().In(time.Local)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var orders []model.Order
	if err := database.DB.Where("created_at >= ?", todayStart).Find(&orders).Error; err != nil {
		log.Printf("Today stats query failed: %v", err)
		return model.TodayStats{}
	}

	return AggregateOrders(orders)
}

// GetTodayStats serves the cached snapshot when available, falling back to
// a direct query
func GetTodayStats() model.TodayStats {
	if database.Redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if raw, err := database.Redis.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var stats model.TodayStats
			if err := json.Unmarshal(raw, &stats); err == nil {
				return stats
			}
		}
	}
	return RefreshTodayStatsCache()
}

// RefreshTodayStatsCache recomputes the snapshot and stores it in redis
func RefreshTodayStatsCache() model.TodayStats {
	stats := FetchTodayStats()

	if database.Redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if raw, err := json.Marshal(stats); err == nil {
			if err := database.Redis.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache today stats: %v", err)
			}
		}
	}
	return stats
}
