package db

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store with the same contract as the Mongo
// adapter. Tests swap it in via SetTestStore the same way the handler
// tests exercise everything else through the package handle.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

func (s *MemoryStore) Create(_ context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}

	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", err
	}

	oid := primitive.NewObjectID()
	stored["_id"] = oid

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], stored)

	return oid.Hex(), nil
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]bson.M, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		copied := make(bson.M, len(doc))
		for k, v := range doc {
			copied[k] = v
		}
		docs = append(docs, copied)
	}
	return docs, nil
}

func (s *MemoryStore) UpdateByID(_ context.Context, collection, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if doc["_id"] == oid {
			for k, v := range fields {
				doc[k] = v
			}
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Collections(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
