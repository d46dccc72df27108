package intelligence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"fitapp/models"

	"github.com/redis/go-redis/v9"
)

const chatContextPrefix = "chat:ctx:"

// ContextStore keeps per-session conversation transcripts.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.ChatContext, error)
	Set(ctx context.Context, sessionID string, chatCtx *models.ChatContext) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisContextStore caches transcripts in Redis with a TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.ChatContext, error) {
	data, err := s.client.Get(ctx, chatContextPrefix+sessionID).Result()
	if err == redis.Nil {
		return &models.ChatContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chatCtx models.ChatContext
	if err := json.Unmarshal([]byte(data), &chatCtx); err != nil {
		return nil, err
	}
	return &chatCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, chatCtx *models.ChatContext) error {
	b, err := json.Marshal(chatCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatContextPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, chatContextPrefix+sessionID).Err()
}

// MemoryContextStore is the in-process fallback when no Redis is configured.
type MemoryContextStore struct {
	mu       sync.Mutex
	contexts map[string]models.ChatContext
}

func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{contexts: make(map[string]models.ChatContext)}
}

func (s *MemoryContextStore) Get(_ context.Context, sessionID string) (*models.ChatContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chatCtx := s.contexts[sessionID]
	return &chatCtx, nil
}

func (s *MemoryContextStore) Set(_ context.Context, sessionID string, chatCtx *models.ChatContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contexts[sessionID] = *chatCtx
	return nil
}

func (s *MemoryContextStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contexts, sessionID)
	return nil
}
