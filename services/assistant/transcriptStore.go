// File: services/assistant/transcriptStore.go
package assistant

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"luxdrive/models"

	"github.com/go-redis/redis/v8"
)

const transcriptPrefix = "chat:transcript:"

// TranscriptTTL bounds how long an idle conversation transcript survives.
const TranscriptTTL = 30 * time.Minute

// TranscriptStore keeps the ordered, append-only message sequence of each
// conversation.
type TranscriptStore interface {
	Append(ctx context.Context, conversationID string, msg models.ChatMessage) error
	Get(ctx context.Context, conversationID string) ([]models.ChatMessage, error)
	Clear(ctx context.Context, conversationID string) error
}

// RedisTranscriptStore stores each message as a JSON list entry with a
// rolling TTL on the conversation key.
type RedisTranscriptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTranscriptStore(client *redis.Client, ttl time.Duration) *RedisTranscriptStore {
	return &RedisTranscriptStore{client: client, ttl: ttl}
}

func (s *RedisTranscriptStore) Append(ctx context.Context, conversationID string, msg models.ChatMessage) error {
	key := transcriptPrefix + conversationID
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := s.client.RPush(ctx, key, b).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, s.ttl).Err()
}

func (s *RedisTranscriptStore) Get(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	key := transcriptPrefix + conversationID
	entries, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	msgs := make([]models.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (s *RedisTranscriptStore) Clear(ctx context.Context, conversationID string) error {
	return s.client.Del(ctx, transcriptPrefix+conversationID).Err()
}

// MemoryTranscriptStore is a process-local store used in tests.
type MemoryTranscriptStore struct {
	mu          sync.Mutex
	transcripts map[string][]models.ChatMessage
}

func NewMemoryTranscriptStore() *MemoryTranscriptStore {
	return &MemoryTranscriptStore{transcripts: make(map[string][]models.ChatMessage)}
}

func (s *MemoryTranscriptStore) Append(ctx context.Context, conversationID string, msg models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[conversationID] = append(s.transcripts[conversationID], msg)
	return nil
}

func (s *MemoryTranscriptStore) Get(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.transcripts[conversationID]))
	copy(out, s.transcripts[conversationID])
	return out, nil
}

func (s *MemoryTranscriptStore) Clear(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, conversationID)
	return nil
}
