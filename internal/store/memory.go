package store

import (
	"context"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/cargoshop/cargoshop/internal/domain"
)

var memjson = jsoniter.ConfigCompatibleWithStandardLibrary

// MemoryStore keeps every collection in process memory, documents stored as
// raw JSON so typed values round-trip the same way they do through a real
// document store. Used for tests and the `database.type: memory` mode.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]map[string]jsoniter.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string]map[string]jsoniter.RawMessage)}
}

func (s *MemoryStore) table(name string) map[string]jsoniter.RawMessage {
	t, ok := s.tables[name]
	if !ok {
		t = make(map[string]jsoniter.RawMessage)
		s.tables[name] = t
	}
	return t
}

func (s *MemoryStore) Scan(_ context.Context, table string, out interface{}) error {
	s.mu.RLock()
	docs := make([]jsoniter.RawMessage, 0, len(s.tables[table]))
	for _, raw := range s.tables[table] {
		docs = append(docs, raw)
	}
	s.mu.RUnlock()

	data, err := memjson.Marshal(docs)
	if err != nil {
		return errors.Wrapf(err, "scan %s", table)
	}
	return errors.Wrapf(memjson.Unmarshal(data, out), "scan %s", table)
}

func (s *MemoryStore) Get(_ context.Context, table, key string, out interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.tables[table][key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, errors.Wrapf(memjson.Unmarshal(raw, out), "get %s/%s", table, key)
}

func (s *MemoryStore) Put(_ context.Context, table, key string, item interface{}) error {
	raw, err := memjson.Marshal(item)
	if err != nil {
		return errors.Wrapf(err, "put %s/%s", table, key)
	}
	s.mu.Lock()
	s.table(table)[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Update(_ context.Context, table, key string, attrs map[string]interface{}, out interface{}) error {
	s.mu.Lock()
	doc := map[string]interface{}{}
	if raw, ok := s.tables[table][key]; ok {
		if err := memjson.Unmarshal(raw, &doc); err != nil {
			s.mu.Unlock()
			return errors.Wrapf(err, "update %s/%s", table, key)
		}
	}
	for k, v := range attrs {
		doc[k] = v
	}
	doc[domain.KeyAttr(table)] = key

	raw, err := memjson.Marshal(doc)
	if err != nil {
		s.mu.Unlock()
		return errors.Wrapf(err, "update %s/%s", table, key)
	}
	s.table(table)[key] = raw
	s.mu.Unlock()

	if out != nil {
		return errors.Wrapf(memjson.Unmarshal(raw, out), "update %s/%s", table, key)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, table, key string) error {
	s.mu.Lock()
	delete(s.tables[table], key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Count(_ context.Context, table string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.tables[table])), nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }
