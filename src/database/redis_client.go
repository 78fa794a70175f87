package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisURI string

// InitRedis connects the shared client used for sessions and the job queue.
func InitRedis(addr string) error {
	client := redis.NewClient(&redis.Options{
		Addr:     addr, // เช่น localhost:6379
		Password: "",   // ถ้าไม่มีรหัสผ่าน
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("failed to connect Redis: %w", err)
	}

	RedisClient = client
	RedisURI = addr
	return nil
}
