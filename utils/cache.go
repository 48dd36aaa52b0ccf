// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client, also holding booking sessions.
	CacheClient *redis.Client
	// LockoutCacheClient is the dedicated client for PIN lockout counters.
	LockoutCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitLockoutCache initializes the Redis client for PIN lockout counters.
func InitLockoutCache() {
	LockoutCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockoutDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := LockoutCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Lockout): %v", err)
	}
}

// GetLockoutCacheClient returns the Redis client for PIN lockout counters.
func GetLockoutCacheClient() *redis.Client {
	if LockoutCacheClient == nil {
		InitLockoutCache()
	}
	return LockoutCacheClient
}

// InitRedis eagerly connects every Redis client used by the app.
func InitRedis() {
	InitCache()
	InitLockoutCache()
}
