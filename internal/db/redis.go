package db

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens a client from REDIS_ADDR / REDIS_PASSWORD and pings it.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}
