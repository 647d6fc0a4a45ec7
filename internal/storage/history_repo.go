package storage

import (
	"github.com/google/uuid"

	"github.com/manav03panchal/timex/internal/errors"
	"github.com/manav03panchal/timex/internal/model"
)

// HistoryRepo stores HistoryEntry records. Keys embed a UUIDv7 so key order
// is creation order.
type HistoryRepo struct {
	db *DB
}

// NewHistoryRepo creates a new history repository.
func NewHistoryRepo(db *DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func newHistoryEntry() *model.HistoryEntry {
	return &model.HistoryEntry{}
}

// Create stores entry under a freshly generated key.
func (r *HistoryRepo) Create(entry *model.HistoryEntry) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.NewSystemError("cannot generate history key", err)
	}
	entry.Key = model.GenerateHistoryKey(id.String())
	return errors.Wrapf(r.db.Set(entry), "store %s", entry.Key)
}

// Get retrieves an entry by key.
func (r *HistoryRepo) Get(key string) (*model.HistoryEntry, error) {
	entry := &model.HistoryEntry{}
	if err := r.db.Get(key, entry); err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}
	return entry, nil
}

// List returns up to limit entries, newest first. A limit of zero or less
// returns everything.
func (r *HistoryRepo) List(limit int) ([]*model.HistoryEntry, error) {
	entries, err := GetLatestByPrefix(r.db, model.PrefixHistory+":", limit, newHistoryEntry)
	return entries, errors.Wrap(err, "list history")
}

// Count returns the number of stored entries.
func (r *HistoryRepo) Count() (int, error) {
	keys, err := r.db.ListByPrefix(model.PrefixHistory + ":")
	return len(keys), err
}

// Clear deletes every entry and returns how many were removed.
func (r *HistoryRepo) Clear() (int, error) {
	keys, err := r.db.ListByPrefix(model.PrefixHistory + ":")
	if err != nil {
		return 0, errors.Wrap(err, "list history")
	}
	return len(keys), errors.Wrapf(r.db.DeleteKeys(keys), "delete %d entries", len(keys))
}

// Prune keeps the newest keep entries and deletes the rest.
func (r *HistoryRepo) Prune(keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	keys, err := r.db.ListByPrefix(model.PrefixHistory + ":")
	if err != nil {
		return 0, err
	}
	if len(keys) <= keep {
		return 0, nil
	}
	stale := keys[:len(keys)-keep]
	return len(stale), errors.Wrapf(r.db.DeleteKeys(stale), "prune %d entries", len(stale))
}
