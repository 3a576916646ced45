// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

// Package store persists per-user data in BadgerDB: hiking preferences,
// hike history and favorite trails.
//
// Key layout:
//
//	pref:<user>                     UserPreference (JSON)
//	hike:<user>:<started>:<uuid>    HikeRecord (JSON), started is UTC and sorts lexically
//	fav:<user>:<trail>              empty value
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/trailhead/internal/metrics"
	"github.com/tomtom215/trailhead/internal/recommend"
	"github.com/tomtom215/trailhead/internal/validation"
)

const (
	prefKeyPrefix = "pref:"
	hikeKeyPrefix = "hike:"
	favKeyPrefix  = "fav:"

	// hikeTimeLayout sorts lexically in chronological order.
	hikeTimeLayout = "20060102T150405.000000000Z"
)

// ErrNotFound is returned when a user has no stored preference.
var ErrNotFound = errors.New("not found")

// ErrInvalid wraps validation failures of stored values.
var ErrInvalid = errors.New("invalid value")

// Config controls how the store is opened.
type Config struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in RAM; nothing survives a restart.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// GCInterval is how often value log garbage collection runs.
	GCInterval time.Duration
}

// Store is the BadgerDB-backed user data store. It is safe for concurrent use.
type Store struct {
	db     *badger.DB
	cfg    Config
	logger zerolog.Logger
}

// Open opens (or creates) the store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Open(cfg Config, logger zerolog.Logger) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("store path is required unless in_memory is set")
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.SyncWrites = cfg.SyncWrites
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	s := &Store{
		db:     db,
		cfg:    cfg,
		logger: logger.With().Str("component", "store").Logger(),
	}
	s.logger.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", cfg.SyncWrites).
		Msg("User store opened")
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the store is usable.
func (s *Store) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return errors.New("store is closed")
	}
	return nil
}

// GetPreference returns the user's preference or ErrNotFound.
func (s *Store) GetPreference(_ context.Context, userID string) (pref *recommend.UserPreference, err error) {
	defer observe("get_preference", time.Now(), &err)

	var p recommend.UserPreference
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefKeyPrefix + userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get preference: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PutPreference validates and stores the user's preference, replacing any
// previous one.
func (s *Store) PutPreference(_ context.Context, userID string, pref *recommend.UserPreference) (err error) {
	defer observe("put_preference", time.Now(), &err)

	if err := ValidatePreference(pref); err != nil {
		return err
	}
	data, err := json.Marshal(pref)
	if err != nil {
		return fmt.Errorf("marshal preference: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefKeyPrefix+userID), data)
	})
}

// DeletePreference removes the user's preference. Missing preferences are
// not an error.
func (s *Store) DeletePreference(_ context.Context, userID string) (err error) {
	defer observe("delete_preference", time.Now(), &err)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(prefKeyPrefix + userID))
	})
}

// ValidatePreference checks enum values and that every range has min <= max.
func ValidatePreference(pref *recommend.UserPreference) error {
	if pref == nil {
		return fmt.Errorf("%w: preference is required", ErrInvalid)
	}
	// Nested ranges are validated through their own tags.
	if verr := validation.ValidateStruct(pref); verr != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, verr)
	}
	return nil
}

// AppendHike records a hike for the user.
func (s *Store) AppendHike(_ context.Context, userID string, rec *recommend.HikeRecord) (err error) {
	defer observe("append_hike", time.Now(), &err)

	if verr := validation.ValidateStruct(rec); verr != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, verr)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal hike: %w", err)
	}
	key := hikeKey(userID, rec.StartedAt)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

func hikeKey(userID string, startedAt time.Time) []byte {
	return []byte(hikeKeyPrefix + userID + ":" + startedAt.UTC().Format(hikeTimeLayout) + ":" + uuid.New().String())
}

// ListHikes returns the user's hikes ordered by start time, oldest first.
// When limit is positive only the most recent limit entries are returned.
func (s *Store) ListHikes(_ context.Context, userID string, limit int) (hikes []recommend.HikeRecord, err error) {
	defer observe("list_hikes", time.Now(), &err)

	hikes = []recommend.HikeRecord{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(hikeKeyPrefix + userID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec recommend.HikeRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return fmt.Errorf("decode hike %s: %w", it.Item().Key(), err)
			}
			hikes = append(hikes, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(hikes) > limit {
		hikes = hikes[len(hikes)-limit:]
	}
	return hikes, nil
}

// SetFavorite marks or unmarks a trail as a favorite of the user.
func (s *Store) SetFavorite(_ context.Context, userID, trailID string, favorite bool) (err error) {
	defer observe("set_favorite", time.Now(), &err)

	key := []byte(favKeyPrefix + userID + ":" + trailID)
	return s.db.Update(func(txn *badger.Txn) error {
		if favorite {
			return txn.Set(key, nil)
		}
		return txn.Delete(key)
	})
}

// Favorites returns the set of trail IDs the user has marked.
func (s *Store) Favorites(_ context.Context, userID string) (favs map[string]bool, err error) {
	defer observe("favorites", time.Now(), &err)

	favs = make(map[string]bool)
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(favKeyPrefix + userID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			favs[string(it.Item().Key()[len(prefix):])] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return favs, nil
}

// Serve runs value log garbage collection on GCInterval until ctx is done.
// It implements suture.Service. In-memory stores have no value log and
// simply wait.
func (s *Store) Serve(ctx context.Context) error {
	if s.cfg.InMemory || s.cfg.GCInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.cfg.GCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runGC()
		}
	}
}

func (s *Store) runGC() {
	collected := 0
	for {
		err := s.db.RunValueLogGC(0.5)
		if err != nil {
			if !errors.Is(err, badger.ErrNoRewrite) {
				s.logger.Warn().Err(err).Msg("Value log GC failed")
			}
			break
		}
		collected++
	}
	if collected > 0 {
		s.logger.Debug().Int("files", collected).Msg("Value log GC completed")
	}
}

// String implements fmt.Stringer for supervisor logging.
func (s *Store) String() string {
	return "store-gc"
}

func observe(op string, start time.Time, err *error) {
	var e error
	if err != nil && !errors.Is(*err, ErrNotFound) && !errors.Is(*err, ErrInvalid) {
		e = *err
	}
	metrics.RecordStoreOperation(op, time.Since(start), e)
}
