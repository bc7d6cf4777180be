package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Object is a stored body plus its write-time attributes.
type Object struct {
	Body        []byte
	ContentType string
	Metadata    map[string]string
}

// MemoryStore is a thread-safe in-memory ObjectStore used by tests and local
// runs.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]Object // "bucket/key"
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]Object)}
}

func (m *MemoryStore) List(_ context.Context, bucket, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for full := range m.objects {
		b, key, _ := strings.Cut(full, "/")
		if b == bucket && strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Get(_ context.Context, bucket, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[bucket+"/"+key]
	if !ok {
		return nil, fmt.Errorf("no such object %s/%s", bucket, key)
	}
	return obj.Body, nil
}

func (m *MemoryStore) Put(_ context.Context, bucket, key string, body []byte, contentType string, metadata map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[bucket+"/"+key] = Object{Body: body, ContentType: contentType, Metadata: metadata}
	return nil
}

// Lookup returns the stored object and whether it exists, for assertions in
// tests.
func (m *MemoryStore) Lookup(bucket, key string) (Object, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[bucket+"/"+key]
	return obj, ok
}

// Len reports the number of stored objects.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
