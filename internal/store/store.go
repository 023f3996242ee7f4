// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package store implements the record store: per-kind create/get/list/
// update/delete over the database models, with validation performed
// before any write so rejected input is never persisted.
package store

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/neurodock/neurodock/internal/config"
)

// Store provides access to all entity kinds backed by a single database.
type Store struct {
	db     *gorm.DB
	limits config.LimitsConfig

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a store over an already-connected, migrated database.
func New(db *gorm.DB, limits config.LimitsConfig) *Store {
	return &Store{
		db:      db,
		limits:  limits,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// DB exposes the underlying connection for health checks.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// newID assigns a ULID string id. Monotonic entropy keeps ids strictly
// increasing even within a millisecond, so lexicographic id order always
// agrees with creation order.
func (s *Store) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}
