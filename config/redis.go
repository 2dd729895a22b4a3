package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the client used for wishlist persistence and rate
// limiting. Wishlist data is non-critical, so an unreachable Redis is a
// warning, not a startup failure: RedisClient stays nil and callers fall
// back to in-memory storage.
func ConnectRedis() {
	// read Redis URL
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(fmt.Sprintf("❌ invalid REDIS_URL: %v", err))
	}

	client := redis.NewClient(opt)

	// test connection
	res, err := client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("⚠️  Redis unavailable, wishlists will live in memory only: %v", err)
		return
	}

	RedisClient = client
	fmt.Println("✅ Connected to Redis:", res)
}
