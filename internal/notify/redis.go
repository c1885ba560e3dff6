package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"study-group-service/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DefaultChannel канал Redis по умолчанию для событий членства.
const DefaultChannel = "study-groups:events"

// Message конверт события, публикуемый в Redis.
type Message struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	GroupID   string    `json:"group_id"`
	ActorID   string    `json:"actor_id"`
	TargetID  string    `json:"target_id"`
	At        time.Time `json:"at"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisNotifier публикует события в канал Redis pub/sub.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	logger  *logrus.Logger
}

// NewRedisClient создает клиент Redis и проверяет соединение.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

// NewRedisNotifier создает новый экземпляр RedisNotifier.
func NewRedisNotifier(client *redis.Client, channel string, logger *logrus.Logger) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Notify публикует событие. Возвращенная ошибка не влияет на уже зафиксированный переход.
func (n *RedisNotifier) Notify(ctx context.Context, event domain.Event) error {
	msg := NewMessage(event)

	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	receivers, err := n.client.Publish(ctx, n.channel, raw).Result()
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	n.logger.WithFields(logrus.Fields{
		"event_id":  msg.ID,
		"event":     msg.Type,
		"channel":   n.channel,
		"receivers": receivers,
	}).Debug("Notification published")

	return nil
}

// NewMessage строит конверт события с новым идентификатором.
func NewMessage(event domain.Event) Message {
	return Message{
		ID:        uuid.New().String(),
		Type:      string(event.Type),
		GroupID:   event.GroupID,
		ActorID:   event.ActorID,
		TargetID:  event.TargetID,
		At:        event.At,
		CreatedAt: time.Now().UTC(),
	}
}
