// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/pr4shxnt/ecobin-backend/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces admin auth-token hashes in Redis.
const AuthCachePrefix = "authcache:admin:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Redis (Auth Cache) unreachable: %v. Auth falls back to JWT-only validation.", err)
		AuthCacheClient = nil
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching,
// or nil when the cache is unavailable.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}
