//go:build !sqlite

package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucketPrefs = "prefs" // key: preference name -> raw value

type Bolt struct {
	db *bbolt.DB
}

func openStore(path string) (Store, error) {
	return NewBolt(path)
}

// NewBolt opens (or creates) a bbolt database at path.
func NewBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketPrefs))

		return err
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltBucketPrefs)) == nil {
			return errors.New("prefs bucket missing")
		}

		return nil
	})
}

func (b *Bolt) GetPreference(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := b.db.View(func(tx *bbolt.Tx) error {
		prefs := tx.Bucket([]byte(boltBucketPrefs))

		v := prefs.Get([]byte(key))
		if v == nil {
			return nil
		}

		// v is only valid for the lifetime of the transaction.
		value = string(v)
		found = true

		return nil
	})

	return value, found, err
}

func (b *Bolt) SetPreference(key, value string) error {
	if key == "" {
		return errors.New("preference key is required")
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		prefs := tx.Bucket([]byte(boltBucketPrefs))

		return prefs.Put([]byte(key), []byte(value))
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
