package storage

import (
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/timex/internal/model"
)

// ErrKeyNotFound is returned by Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// IsErrKeyNotFound reports whether err means the key is missing.
func IsErrKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, badger.ErrKeyNotFound)
}

// Get loads the value at key into v and sets v's key.
func (d *DB) Get(key string, v model.Model) error {
	return d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrKeyNotFound
		}
		if err != nil {
			return err
		}
		return decodeItem(item, v)
	})
}

// Set stores v as JSON under v.GetKey().
func (d *DB) Set(v model.Model) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(v.GetKey()), data)
	})
}

// DeleteKeys removes keys in one transaction.
func (d *DB) DeleteKeys(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return d.db.Update(func(txn *badger.Txn) error {
		for _, k := range keys {
			if err := txn.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByPrefix returns the keys under prefix in ascending order.
func (d *DB) ListByPrefix(prefix string) ([]string, error) {
	var keys []string
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

// GetLatestByPrefix decodes up to limit values under prefix, highest key
// first. A limit of zero or less means all of them.
func GetLatestByPrefix[T model.Model](d *DB, prefix string, limit int, newFunc func() T) ([]T, error) {
	var out []T
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past the last key under the prefix.
		for it.Seek(append([]byte(prefix), 0xFF)); it.ValidForPrefix(opts.Prefix); it.Next() {
			if limit > 0 && len(out) == limit {
				break
			}
			v := newFunc()
			if err := decodeItem(it.Item(), v); err != nil {
				return err
			}
			out = append(out, v)
		}
		return nil
	})
	return out, err
}

func decodeItem(item *badger.Item, v model.Model) error {
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, v); err != nil {
			return err
		}
		v.SetKey(string(item.KeyCopy(nil)))
		return nil
	})
}
