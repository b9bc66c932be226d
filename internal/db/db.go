package db

import (
	"context"
	"errors"

	config "github.com/kamau-dev/butchery-backend/configs"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrUnavailable = errors.New("document store unavailable")
	ErrInvalidID   = errors.New("invalid document id")
	ErrNotFound    = errors.New("document not found")
)

// Store is the document-store boundary: generic create/list against named
// collections plus the single field-update needed by the order workflow.
type Store interface {
	Create(ctx context.Context, collection string, doc any) (string, error)
	List(ctx context.Context, collection string) ([]bson.M, error)
	UpdateByID(ctx context.Context, collection, id string, fields bson.M) error
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

// DB is nil when no connection was ever established; the service keeps
// running in degraded mode and data endpoints report ErrUnavailable.
var DB Store

// Init connects to the configured MongoDB deployment. A missing URI or a
// failed connection is returned to the caller rather than being fatal.
func Init(cfg config.DatabaseConfig) error {
	if cfg.URI == "" {
		return ErrUnavailable
	}

	store, err := newMongoStore(cfg.URI, cfg.Name)
	if err != nil {
		return err
	}

	DB = store
	return nil
}

func SetTestStore(testStore Store) {
	DB = testStore
}

// Get returns the active store, or ErrUnavailable in degraded mode.
func Get() (Store, error) {
	if DB == nil {
		return nil, ErrUnavailable
	}
	return DB, nil
}
