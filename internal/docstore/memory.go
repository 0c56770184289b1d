package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory keeps documents in process memory. It backs the handler tests and
// the server's no-database mode; nothing survives a restart.
type Memory struct {
	mu    sync.RWMutex
	docs  map[string]map[string]map[string]any // collection -> id -> document
	order map[string][]string                  // collection -> ids in insertion order
}

func NewMemory() *Memory {
	return &Memory{
		docs:  make(map[string]map[string]map[string]any),
		order: make(map[string][]string),
	}
}

func (s *Memory) List(ctx context.Context, collection string, limit int) ([]json.RawMessage, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := []json.RawMessage{}
	for _, id := range s.order[collection] {
		if len(docs) == limit {
			break
		}
		body, err := json.Marshal(s.docs[collection][id])
		if err != nil {
			return nil, fmt.Errorf("marshal %s/%s: %w", collection, id, err)
		}
		docs = append(docs, body)
	}
	return docs, nil
}

func (s *Memory) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal %s/%s: %w", collection, id, err)
	}
	return body, nil
}

func (s *Memory) Insert(ctx context.Context, collection, id string, doc any) error {
	fields, err := normalize(doc)
	if err != nil {
		return fmt.Errorf("insert %s/%s: %w", collection, id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]map[string]any)
	}
	if _, exists := s.docs[collection][id]; !exists {
		s.order[collection] = append(s.order[collection], id)
	}
	s.docs[collection][id] = fields
	return nil
}

func (s *Memory) Patch(ctx context.Context, collection, id string, patch map[string]any) error {
	fields, err := normalize(patch)
	if err != nil {
		return fmt.Errorf("patch %s/%s: %w", collection, id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[collection][id]
	if !ok {
		return ErrNotFound
	}
	for key, value := range fields {
		doc[key] = value
	}
	return nil
}

func (s *Memory) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[collection][id]; !ok {
		return ErrNotFound
	}
	delete(s.docs[collection], id)
	ids := s.order[collection]
	for i, candidate := range ids {
		if candidate == id {
			s.order[collection] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// normalize round-trips a value through JSON so stored documents hold plain
// JSON types regardless of what the caller passed in.
func normalize(doc any) (map[string]any, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
