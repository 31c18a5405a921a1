package assessment

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/personality-cat/backend/internal/models"
)

// SessionStore persists session state between requests. Implementations must
// be safe for concurrent use; the service layer serializes mutations per
// session on top of this.
type SessionStore interface {
	Put(ctx context.Context, sess *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

const memoryShards = 16

// MemoryStore keeps sessions in sharded in-process maps. It is the default
// backend when no database is configured and the backend for tests.
type MemoryStore struct {
	shards [memoryShards]memoryShard
}

type memoryShard struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	for i := range s.shards {
		s.shards[i].sessions = make(map[string]*models.Session)
	}
	return s
}

func (s *MemoryStore) shard(id string) *memoryShard {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.shards[h.Sum32()%memoryShards]
}

func (s *MemoryStore) Put(_ context.Context, sess *models.Session) error {
	sh := s.shard(sess.ID)
	sh.mu.Lock()
	sh.sessions[sess.ID] = sess
	sh.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	sh := s.shard(id)
	sh.mu.RLock()
	sess, ok := sh.sessions[id]
	sh.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	sh := s.shard(id)
	sh.mu.Lock()
	delete(sh.sessions, id)
	sh.mu.Unlock()
	return nil
}
