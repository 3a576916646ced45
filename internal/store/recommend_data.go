// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

package store

import (
	"context"
	"errors"

	"github.com/tomtom215/trailhead/internal/recommend"
)

// TrailSource supplies the trail catalog. *catalog.Catalog implements it.
type TrailSource interface {
	All() []recommend.Trail
}

// RecommendationDataProvider implements recommend.DataProvider on top of
// the trail catalog and the user store.
type RecommendationDataProvider struct {
	trails       TrailSource
	store        *Store
	historyLimit int
}

// NewRecommendationDataProvider creates a provider. historyLimit caps how
// many recent hikes feed the history factors; zero means all.
func NewRecommendationDataProvider(trails TrailSource, store *Store, historyLimit int) *RecommendationDataProvider {
	return &RecommendationDataProvider{
		trails:       trails,
		store:        store,
		historyLimit: historyLimit,
	}
}

// GetTrails implements recommend.DataProvider.
func (p *RecommendationDataProvider) GetTrails(_ context.Context) ([]recommend.Trail, error) {
	return p.trails.All(), nil
}

// GetPreference implements recommend.DataProvider.
func (p *RecommendationDataProvider) GetPreference(ctx context.Context, userID string) (*recommend.UserPreference, error) {
	pref, err := p.store.GetPreference(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil //nolint:nilnil // no stored preference is not an error
	}
	return pref, err
}

// GetHistory implements recommend.DataProvider.
func (p *RecommendationDataProvider) GetHistory(ctx context.Context, userID string) ([]recommend.HikeRecord, error) {
	return p.store.ListHikes(ctx, userID, p.historyLimit)
}

// GetFavorites implements recommend.DataProvider.
func (p *RecommendationDataProvider) GetFavorites(ctx context.Context, userID string) (map[string]bool, error) {
	return p.store.Favorites(ctx, userID)
}

// Verify interface compliance at compile time.
var _ recommend.DataProvider = (*RecommendationDataProvider)(nil)
