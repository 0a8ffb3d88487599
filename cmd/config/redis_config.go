package config

import (
	"Recipe-Book-API/internal/utils"
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", utils.GetConfig("REDIS_HOST"), utils.GetConfig("REDIS_PORT")),
		Password: utils.GetConfig("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis connection failed: %v", err)
		return nil, err
	}
	return client, nil
}
