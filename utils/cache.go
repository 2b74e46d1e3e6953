// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"evently/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient holds booking wizard sessions when SESSION_STORE=redis.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for wizard sessions and pings it.
func InitSessionCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (Sessions): %w", err)
	}
	SessionCacheClient = client
	return nil
}

// GetSessionCacheClient returns the session cache client, or nil if it was never initialized.
func GetSessionCacheClient() *redis.Client {
	return SessionCacheClient
}

// CloseSessionCache closes the session cache client if one is open.
func CloseSessionCache() error {
	if SessionCacheClient == nil {
		return nil
	}
	err := SessionCacheClient.Close()
	SessionCacheClient = nil
	return err
}
