package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Ключи повторяют контракт браузерного хранилища виджета переводов
const storeKeyPrefix = "incident_translations_"

// Store - долговременное хранилище переводов: поле -> (язык -> текст)
type Store interface {
	Get(ctx context.Context, field string) (map[string]string, error)
	Set(ctx context.Context, field string, translations map[string]string) error
	Clear(ctx context.Context, field string) error
}

// RedisStore - реализация Store поверх Redis
type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{redisClient: redisClient}
}

// Get возвращает сохраненные переводы поля; пустая карта, если их нет
func (s *RedisStore) Get(ctx context.Context, field string) (map[string]string, error) {
	val, err := s.redisClient.Get(ctx, storeKeyPrefix+field).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to get translations from store: %w", err)
	}

	translations := make(map[string]string)
	if err := json.Unmarshal(val, &translations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal translations: %w", err)
	}
	return translations, nil
}

// Set заменяет сохраненные переводы поля. Записи не истекают
func (s *RedisStore) Set(ctx context.Context, field string, translations map[string]string) error {
	val, err := json.Marshal(translations)
	if err != nil {
		return fmt.Errorf("failed to marshal translations: %w", err)
	}
	if err := s.redisClient.Set(ctx, storeKeyPrefix+field, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to set translations in store: %w", err)
	}
	return nil
}

// Clear удаляет все сохраненные переводы поля
func (s *RedisStore) Clear(ctx context.Context, field string) error {
	if err := s.redisClient.Del(ctx, storeKeyPrefix+field).Err(); err != nil {
		return fmt.Errorf("failed to clear translations in store: %w", err)
	}
	return nil
}

// MemoryStore - реализация Store в памяти для тестов
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, field string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	translations := make(map[string]string, len(s.data[field]))
	for lang, text := range s.data[field] {
		translations[lang] = text
	}
	return translations, nil
}

func (s *MemoryStore) Set(ctx context.Context, field string, translations map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(map[string]string, len(translations))
	for lang, text := range translations {
		copied[lang] = text
	}
	s.data[field] = copied
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, field)
	return nil
}
