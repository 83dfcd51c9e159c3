package repository

import (
	"context"
	"sync"
)

// Blob - именованное значение в key-value хранилище
type Blob struct {
	Key   string
	Value []byte
}

// BlobStore - локальное key-value хранилище, в котором коллекции
// сериализованы целиком под фиксированными ключами.
type BlobStore interface {
	// Get возвращает значение и признак его наличия
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put записывает все значения атомарно: читатель видит либо все, либо ни одного
	Put(ctx context.Context, entries ...Blob) error
}

// MemoryBlobStore - хранилище в памяти процесса
type MemoryBlobStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{data: make(map[string][]byte)}
}

func (m *MemoryBlobStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), val...), true, nil
}

func (m *MemoryBlobStore) Put(_ context.Context, entries ...Blob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.data[e.Key] = append([]byte(nil), e.Value...)
	}
	return nil
}
