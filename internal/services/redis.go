package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/davidkiptoo/safarigo-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis initializes the Redis client. Callers may skip it entirely when
// REDIS_URL is unset; every helper below degrades to a no-op without a client.
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		RedisClient = nil
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// CacheHotelList stores a filtered hotel listing under its filter key.
func CacheHotelList(ctx context.Context, key string, hotels []models.Hotel) error {
	if RedisClient == nil {
		return nil
	}
	data, err := json.Marshal(hotels)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, hotelListKey(key), data, 5*time.Minute).Err()
}

// GetCachedHotelList retrieves a cached hotel listing. The boolean reports
// whether the key was present.
func GetCachedHotelList(ctx context.Context, key string) ([]models.Hotel, bool) {
	if RedisClient == nil {
		return nil, false
	}
	data, err := RedisClient.Get(ctx, hotelListKey(key)).Result()
	if err != nil {
		return nil, false
	}
	var hotels []models.Hotel
	if err := json.Unmarshal([]byte(data), &hotels); err != nil {
		return nil, false
	}
	return hotels, true
}

// InvalidateHotelCache drops every cached hotel listing. Called after any
// write that changes the catalog or room counts.
func InvalidateHotelCache(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}
	iter := RedisClient.Scan(ctx, 0, "hotels:list:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func hotelListKey(key string) string {
	return "hotels:list:" + key
}

// SetDriverAvailability mirrors driver availability for quick lookups.
func SetDriverAvailability(ctx context.Context, driverID uint, status string) error {
	if RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("driver:availability:%d", driverID)
	return RedisClient.Set(ctx, key, status, time.Hour).Err()
}

// GetDriverAvailability retrieves the mirrored driver status.
func GetDriverAvailability(ctx context.Context, driverID uint) (string, error) {
	if RedisClient == nil {
		return "", redis.Nil
	}
	key := fmt.Sprintf("driver:availability:%d", driverID)
	return RedisClient.Get(ctx, key).Result()
}

// PublishRideUpdate publishes a ride status change to the ride:updates
// channel. Every instance runs SubscribeRideUpdates against that channel,
// so the change reaches WebSocket clients connected to any instance.
func PublishRideUpdate(ctx context.Context, rideID uint, status string) error {
	if RedisClient == nil {
		return nil
	}
	payload, err := json.Marshal(WebSocketMessage{
		Type: "ride_update",
		Data: map[string]interface{}{
			"rideId":    rideID,
			"status":    status,
			"timestamp": time.Now().Unix(),
		},
	})
	if err != nil {
		return err
	}
	return RedisClient.Publish(ctx, rideUpdatesChannel, payload).Err()
}

const rideUpdatesChannel = "ride:updates"

// SubscribeRideUpdates invokes fn for every message published on the
// ride:updates channel until ctx is cancelled. Callers run it in a
// goroutine, typically with the hub's BroadcastToAll as fn. A no-op when
// Redis is disabled.
func SubscribeRideUpdates(ctx context.Context, fn func(payload []byte)) error {
	if RedisClient == nil {
		return nil
	}
	sub := RedisClient.Subscribe(ctx, rideUpdatesChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			fn([]byte(msg.Payload))
		}
	}
}
