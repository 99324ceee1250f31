package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

var (
	// ErrCacheMiss возвращается, когда на дату нет закешированных слотов
	ErrCacheMiss = errors.New("slots.cache: cache miss")
)

// SlotsCache redis-кеш результата резолвера доступных слотов
// Кеш - чисто витринные данные: резолвер по контракту может отдавать
// устаревший результат, источником истины при записи остаётся констрейнт БД
type SlotsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш слотов поверх redis
func New(client *redis.Client, ttl time.Duration) *SlotsCache {
	return &SlotsCache{client: client, ttl: ttl}
}

func slotsKey(date time.Time) string {
	return fmt.Sprintf("available-slots:%s", date.Format(domain.DateFormat))
}

// Get возвращает закешированные слоты на дату
func (c *SlotsCache) Get(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	data, err := c.client.Get(ctx, slotsKey(date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("slots.cache: get: %w", err)
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("slots.cache: unmarshal: %w", err)
	}

	return slots, nil
}

// Set сохраняет слоты на дату с TTL
func (c *SlotsCache) Set(ctx context.Context, date time.Time, slots []domain.TimeSlot) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("slots.cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, slotsKey(date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("slots.cache: set: %w", err)
	}

	return nil
}

// Invalidate сбрасывает кеш на дату
// Вызывается после успешного создания записи
func (c *SlotsCache) Invalidate(ctx context.Context, date time.Time) error {
	if err := c.client.Del(ctx, slotsKey(date)).Err(); err != nil {
		return fmt.Errorf("slots.cache: invalidate: %w", err)
	}
	return nil
}
