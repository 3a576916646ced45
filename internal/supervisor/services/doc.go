// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

// Package services adapts blocking server lifecycles to suture's
// context-aware Serve pattern.
//
// Components that already implement Serve(ctx) error (weather.Service,
// catalog.Catalog, store.Store) are added to the tree directly; only the
// HTTP server needs a wrapper.
package services
