package conversation

import (
	"encoding/json"
	"sync"
)

// DefaultKey is the storage key the deployed widget persists under.
const DefaultKey = "ashara-chat-messages"

// Storage is the key-value surface the transcript is persisted to. It is
// shaped like browser local storage so a real client binding drops in
// without changing the store.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Store persists one conversation under a single key.
type Store struct {
	storage Storage
	key     string
}

func NewStore(storage Storage, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{storage: storage, key: key}
}

// Load returns the stored transcript. Absent or unparseable data yields an
// empty conversation; corruption is discarded, never surfaced, so widget
// initialization can't be blocked by a bad stored value.
func (s *Store) Load() []Message {
	raw, ok := s.storage.Get(s.key)
	if !ok {
		return nil
	}

	var messages []Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil
	}
	return messages
}

// Save overwrites the stored transcript with the given messages.
func (s *Store) Save(messages []Message) {
	raw, err := json.Marshal(messages)
	if err != nil {
		// Message is plain strings; marshal cannot fail in practice
		return
	}
	s.storage.Set(s.key, string(raw))
}

// Clear wipes the persisted transcript. Idempotent.
func (s *Store) Clear() {
	s.storage.Delete(s.key)
}

// MemoryStorage is an in-process Storage, used in tests and anywhere a
// browser isn't. Safe for concurrent use.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *MemoryStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}
