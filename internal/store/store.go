package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Fixed keys of the persisted state layout. Every entity collection lives
// under its own key as a single JSON document.
const (
	KeyTasks         = "tasks"
	KeySections      = "sections"
	KeyJobPositions  = "jobPositions"
	KeyProjects      = "projects"
	KeyUsers         = "users"
	KeyNotifications = "notifications"
	KeySeeded        = "seeded"
)

// Backend is the durable tier below the store. Implementations must treat
// values as opaque text.
type Backend interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key string, value string) error
}

// Store is a typed key/value layer over a Backend. Reads fall back to the
// caller-provided default when the key is absent or its stored text cannot
// be parsed; parse failures are logged, never surfaced. Writes from another
// context are mirrored via ApplyExternal with last-write-wins semantics.
type Store struct {
	backend Backend
	logger  *slog.Logger

	mu    sync.RWMutex
	cache map[string]string
	subs  map[string][]func()
}

// New creates a store over the given backend.
func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		backend: backend,
		logger:  logger,
		cache:   make(map[string]string),
		subs:    make(map[string][]func()),
	}
}

// Get reads the value stored under key into dest. It returns false and
// leaves dest untouched (the caller's default) when the key is absent or
// the stored text is corrupted. Backend I/O failures are returned.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok, err := s.raw(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Error("corrupt value in store, falling back to default",
			slog.String("key", key), slog.Any("error", err))
		return false, nil
	}
	return true, nil
}

// Set serializes value as JSON, writes it through to the backend, updates
// the in-memory mirror and notifies subscribers of the key.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.backend.Save(ctx, key, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[key] = string(raw)
	subs := append([]func(){}, s.subs[key]...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return nil
}

// Subscribe registers fn to run after every write to key, whether local
// (Set) or mirrored from another context (ApplyExternal).
func (s *Store) Subscribe(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[key] = append(s.subs[key], fn)
}

// ApplyExternal mirrors a same-key write made by another context. The raw
// text replaces local state wholesale (last writer wins, no merge). Text
// that fails to parse is logged and evicts the local mirror so subsequent
// reads fall back to defaults. Subscribers are notified either way: an
// eviction is still a state change under the key.
func (s *Store) ApplyExternal(key string, raw string) {
	s.mu.Lock()
	if json.Valid([]byte(raw)) {
		s.cache[key] = raw
	} else {
		s.logger.Error("external write is not valid JSON, evicting local state",
			slog.String("key", key))
		delete(s.cache, key)
	}
	subs := append([]func(){}, s.subs[key]...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (s *Store) raw(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	raw, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return raw, true, nil
	}

	raw, ok, err := s.backend.Load(ctx, key)
	if err != nil || !ok {
		return "", false, err
	}

	s.mu.Lock()
	s.cache[key] = raw
	s.mu.Unlock()
	return raw, true, nil
}
