package sessionstore

import (
	"context"
	"sync"

	"github.com/ogurasousui/learning-dashboard/internal/core/session"
)

// MemoryStore はプロセス内だけでセッションを保持します。再起動すると失われます。
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore は MemoryStore を生成します。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load は保存済みのセッションを返します。
func (s *MemoryStore) Load(context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, session.ErrNotPersisted
	}
	return append([]byte(nil), s.data...), nil
}

// Save はセッションを保持します。
func (s *MemoryStore) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = append([]byte{}, data...)
	return nil
}

// Delete は保持しているセッションを破棄します。
func (s *MemoryStore) Delete(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	return nil
}
