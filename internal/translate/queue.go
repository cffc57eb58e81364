package translate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=queue.go -destination=mocks/mock_queue.go -package=mocks

const translateQueueKey = "translate_jobs"

// Job - задание на фоновый перевод одного поля
type Job struct {
	Field      string `json:"field"`
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
}

// Publisher - интерфейс для постановки заданий перевода в очередь
type Publisher interface {
	Publish(ctx context.Context, job Job) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует задание перевода в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal translate job: %w", err)
	}

	// Используем LPUSH для добавления задания в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, translateQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish translate job to Redis: %w", err)
	}
	return nil
}
