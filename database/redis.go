package database

import (
	"capsule_store/config"
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis wires the shared client. Redis is an accelerator here
// (phone-count cache, live order feed, stats snapshot); callers must keep
// working when it is down.
func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Redis = redis.NewClient(&redis.Options{Addr: addr})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unavailable at %s: %v", addr, err)
	}
}
