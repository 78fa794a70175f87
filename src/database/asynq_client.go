package database

import (
	"fmt"
	"log"

	"github.com/hibiken/asynq"
)

// AsynqClient ส่งงาน bill:generate เข้าคิว ใช้ Redis ตัวเดียวกับ session
var AsynqClient *asynq.Client

// InitAsynq opens the queue client on the Redis connected by InitRedis.
func InitAsynq() error {
	if RedisClient == nil || RedisURI == "" {
		return fmt.Errorf("asynq needs Redis: call InitRedis first")
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	if err := AsynqClient.Ping(); err != nil {
		return fmt.Errorf("asynq ping failed: %w", err)
	}
	log.Println("✅ Asynq client ready, bill refreshes will be queued")
	return nil
}
