package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/foyerhq/foyer-client/internal/config"
	"github.com/foyerhq/foyer-client/internal/logger"
)

var (
	// bucketAuth holds the stored credential pair.
	bucketAuth = []byte("auth")
	// bucketPrefs is reserved for per-user preferences (e.g. an explicit
	// household selection keyed by user id). Nothing writes to it yet.
	bucketPrefs = []byte("prefs")
)

// Store is the bbolt-backed local database of the client. It survives
// restarts and is the only durable state the client keeps.
type Store struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// New opens (creating if necessary) the bbolt file at cfg.DB.Path and
// initialises the required buckets.
//
// Returns an error if the parent directory cannot be created, the file cannot
// be opened, or bucket initialisation fails.
func New(cfg config.ClientStorage, logger *logger.Logger) (*Store, error) {
	dir := filepath.Dir(cfg.DB.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create local storage dir: %w", err)
		}
	}

	db, err := bbolt.Open(cfg.DB.Path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the underlying database file. Safe to call on a nil-db store.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketAuth); err != nil {
			return fmt.Errorf("create auth bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(bucketPrefs); err != nil {
			return fmt.Errorf("create prefs bucket: %w", err)
		}
		return nil
	})
}
