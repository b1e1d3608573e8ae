package helper

import (
	"capsule_store/database"
	"capsule_store/model"
	"capsule_store/utils"
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"
)

const phoneCountCacheTTL = 5 * time.Minute

// CountOrdersByPhone counts prior orders for a normalized phone number.
// This feeds repeat-customer detection only, so every failure degrades to 0
// (treat as new customer) instead of propagating.
func CountOrdersByPhone(normalizedPhone string) int64 {
	if cached, ok := cachedPhoneCount(normalizedPhone); ok {
		return cached
	}

	var count int64
	if err := database.DB.Model(&model.Order{}).Where("phone = ?", normalizedPhone).Count(&count).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Phone count lookup failed for %s: %v", normalizedPhone, err)
		}
		return 0
	}

	cachePhoneCount(normalizedPhone, count)
	return count
}

// IsRepeatCustomer reports whether the phone has at least one prior order.
// Numbers shorter than 10 digits are never checked.
func IsRepeatCustomer(phone string) bool {
	normalized := utils.NormalizePhone(phone)
	if len(normalized) < 10 {
		return false
	}
	return CountOrdersByPhone(normalized) > 0
}

func phoneCountKey(phone string) string {
	return "phone_orders:" + phone
}

func cachedPhoneCount(phone string) (int64, bool) {
	if database.Redis == nil {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	val, err := database.Redis.Get(ctx, phoneCountKey(phone)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func cachePhoneCount(phone string, count int64) {
	if database.Redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := database.Redis.Set(ctx, phoneCountKey(phone), count, phoneCountCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache phone count for %s: %v", phone, err)
	}
}

// InvalidatePhoneCount drops the cached count after a new order so a second
// purchase in the same session is seen as repeat
func InvalidatePhoneCount(phone string) {
	if database.Redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	database.Redis.Del(ctx, phoneCountKey(phone))
}
