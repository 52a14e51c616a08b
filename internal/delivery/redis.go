package delivery

import (
	"context"
	"fmt"
	"time"

	"team-lifecycle-backend/internal/service"

	redis "github.com/redis/go-redis/v9"
)

// Publisher is the slice of the redis client the sink needs
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink publishes notifications on a per-user channel for the chat bot worker
// to render as direct messages. Delivered means at least one worker was listening.
type RedisSink struct {
	client  Publisher
	prefix  string
	timeout time.Duration
}

var _ service.NotificationSink = (*RedisSink)(nil)

// NewRedisSink wraps an existing publisher
func NewRedisSink(client Publisher, prefix string) *RedisSink {
	if prefix == "" {
		prefix = "teams:notify"
	}
	return &RedisSink{client: client, prefix: prefix, timeout: 2 * time.Second}
}

// DialRedis connects and pings a redis server
func DialRedis(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

// Channel returns the channel a user's notifications are published on
func (s *RedisSink) Channel(userID string) string {
	return s.prefix + ":" + userID
}

// Notify implements service.NotificationSink.
func (s *RedisSink) Notify(ctx context.Context, n service.Notification) (service.Delivery, error) {
	ref, payload, err := encode(n)
	if err != nil {
		return service.Delivery{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	receivers, err := s.client.Publish(ctx, s.Channel(n.UserID), payload).Result()
	if err != nil {
		return service.Delivery{}, fmt.Errorf("publish to %s: %w", s.Channel(n.UserID), err)
	}
	if receivers == 0 {
		return service.Delivery{}, nil
	}
	return service.Delivery{Delivered: true, Ref: ref}, nil
}
