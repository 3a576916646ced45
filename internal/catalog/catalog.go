// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

// Package catalog holds the trail catalog: the static trail metadata the
// recommendation engine ranks. The catalog is loaded from a JSON file or,
// when no path is configured, from the copy compiled into the binary.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"
	"github.com/knadh/koanf/providers/file"
	"github.com/rs/zerolog"

	"github.com/tomtom215/trailhead/internal/metrics"
	"github.com/tomtom215/trailhead/internal/recommend"
	"github.com/tomtom215/trailhead/internal/validation"
)

//go:embed trails.json
var defaultTrails []byte

// ErrTrailNotFound is returned by Get for unknown IDs.
var ErrTrailNotFound = errors.New("trail not found")

// Catalog is a thread-safe, reloadable set of trails.
// Readers always see a complete snapshot; a failed reload keeps the
// previous one.
type Catalog struct {
	path   string
	logger zerolog.Logger

	mu     sync.RWMutex
	trails []recommend.Trail
	index  map[string]int
}

// New loads the catalog from path, or the embedded default when path is empty.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(path string, logger zerolog.Logger) (*Catalog, error) {
	c := &Catalog{
		path:   path,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromTrails builds a catalog from an in-memory list. The list is
// validated and copied.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewFromTrails(trails []recommend.Trail, logger zerolog.Logger) (*Catalog, error) {
	if err := Validate(trails); err != nil {
		return nil, err
	}
	c := &Catalog{logger: logger.With().Str("component", "catalog").Logger()}
	c.swap(trails)
	return c, nil
}

// Path returns the backing file, or "" for the embedded catalog.
func (c *Catalog) Path() string {
	return c.path
}

// Reload re-reads the catalog source.
func (c *Catalog) Reload() error {
	data := defaultTrails
	source := "embedded"
	if c.path != "" {
		b, err := os.ReadFile(c.path)
		if err != nil {
			metrics.RecordCatalogLoad(0, err)
			return fmt.Errorf("read catalog %s: %w", c.path, err)
		}
		data = b
		source = c.path
	}

	trails, err := Parse(data)
	if err != nil {
		metrics.RecordCatalogLoad(0, err)
		return fmt.Errorf("load catalog %s: %w", source, err)
	}

	c.swap(trails)
	metrics.RecordCatalogLoad(len(trails), nil)
	c.logger.Info().Str("source", source).Int("trails", len(trails)).Msg("Catalog loaded")
	return nil
}

func (c *Catalog) swap(trails []recommend.Trail) {
	cp := make([]recommend.Trail, len(trails))
	copy(cp, trails)
	index := make(map[string]int, len(cp))
	for i := range cp {
		// Favorite is user-scoped and never part of the catalog itself.
		cp[i].Favorite = false
		index[cp[i].ID] = i
	}

	c.mu.Lock()
	c.trails = cp
	c.index = index
	c.mu.Unlock()
}

// All returns a copy of every trail in catalog order.
func (c *Catalog) All() []recommend.Trail {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]recommend.Trail, len(c.trails))
	copy(out, c.trails)
	return out
}

// Get returns a single trail by ID.
func (c *Catalog) Get(id string) (recommend.Trail, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return recommend.Trail{}, fmt.Errorf("%w: %s", ErrTrailNotFound, id)
	}
	return c.trails[i], nil
}

// Len returns the number of trails.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.trails)
}

// Parse decodes and validates a JSON trail list.
func Parse(data []byte) ([]recommend.Trail, error) {
	var trails []recommend.Trail
	if err := json.Unmarshal(data, &trails); err != nil {
		return nil, fmt.Errorf("decode trails: %w", err)
	}
	if err := Validate(trails); err != nil {
		return nil, err
	}
	return trails, nil
}

// Validate checks every trail and rejects duplicate IDs.
func Validate(trails []recommend.Trail) error {
	seen := make(map[string]struct{}, len(trails))
	for i := range trails {
		if verr := validation.ValidateStruct(&trails[i]); verr != nil {
			return fmt.Errorf("trail %d (%q): %w", i, trails[i].ID, verr)
		}
		if _, dup := seen[trails[i].ID]; dup {
			return fmt.Errorf("trail %d: duplicate id %q", i, trails[i].ID)
		}
		seen[trails[i].ID] = struct{}{}
	}
	return nil
}

// Serve watches the catalog file and reloads it on change until ctx is
// done. With the embedded catalog it simply waits. It implements
// suture.Service.
func (c *Catalog) Serve(ctx context.Context) error {
	if c.path == "" {
		<-ctx.Done()
		return ctx.Err()
	}

	provider := file.Provider(c.path)
	err := provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			c.logger.Warn().Err(err).Msg("Catalog watch error")
			return
		}
		if err := c.Reload(); err != nil {
			c.logger.Error().Err(err).Msg("Catalog reload failed, keeping previous trails")
		}
	})
	if err != nil {
		return fmt.Errorf("watch catalog %s: %w", c.path, err)
	}

	<-ctx.Done()
	if err := provider.Unwatch(); err != nil {
		c.logger.Debug().Err(err).Msg("Catalog unwatch")
	}
	return ctx.Err()
}

// String implements fmt.Stringer for supervisor logging.
func (c *Catalog) String() string {
	return "catalog-watcher"
}
