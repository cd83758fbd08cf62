package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local tooling. It
// keeps the same JSON round-trip semantics as the Postgres store so decoded
// documents behave identically.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte

	// FailWrites makes every mutating call return ErrUnavailable, for
	// exercising retry paths.
	FailWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Data: append([]byte(nil), data...)}, nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, value interface{}) error {
	if s.FailWrites {
		return ErrUnavailable
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("set %s/%s: encode: %w", collection, id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string][]byte)
	}
	s.collections[collection][id] = data
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, partial map[string]interface{}) error {
	if s.FailWrites {
		return ErrUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("update %s/%s: decode: %w", collection, id, err)
	}
	for k, v := range partial {
		// Round-trip through JSON so stored values match what the
		// Postgres merge would produce.
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("update %s/%s: encode %s: %w", collection, id, k, err)
		}
		var jv interface{}
		if err := json.Unmarshal(b, &jv); err != nil {
			return fmt.Errorf("update %s/%s: decode %s: %w", collection, id, k, err)
		}
		doc[k] = jv
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("update %s/%s: encode: %w", collection, id, err)
	}
	s.collections[collection][id] = merged
	return nil
}

func (s *MemoryStore) Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for id, data := range s.collections[collection] {
		var doc map[string]interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("query %s: decode %s: %w", collection, id, err)
		}
		if matchesAll(doc, filters) {
			docs = append(docs, Document{ID: id, Data: append([]byte(nil), data...)})
		}
	}
	return docs, nil
}

func (s *MemoryStore) ArrayUnion(ctx context.Context, collection, id, field, element string) error {
	if s.FailWrites {
		return ErrUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("array union %s/%s: decode: %w", collection, id, err)
	}

	var list []interface{}
	if existing, ok := doc[field].([]interface{}); ok {
		list = existing
	}
	for _, item := range list {
		if str, ok := item.(string); ok && str == element {
			return nil
		}
	}
	doc[field] = append(list, element)

	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("array union %s/%s: encode: %w", collection, id, err)
	}
	s.collections[collection][id] = merged
	return nil
}

func matchesAll(doc map[string]interface{}, filters []Filter) bool {
	for _, f := range filters {
		got, ok := doc[f.Field]
		if !ok {
			return false
		}
		// Normalize both sides through JSON: stored numbers come back as
		// float64, filter values may be int or decimal.
		if jsonValue(got) != jsonValue(f.Value) {
			return false
		}
	}
	return true
}

func jsonValue(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
