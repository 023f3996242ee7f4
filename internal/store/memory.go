// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/neurodock/neurodock/internal/database"
	"github.com/neurodock/neurodock/internal/errs"
)

// CreateMemoryInput holds caller-supplied fields for a new memory.
type CreateMemoryInput struct {
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
	Source  string `json:"source,omitempty"`
}

// CreateMemory validates, assigns id and timestamp, and inserts a memory.
// Memories are immutable after creation.
func (s *Store) CreateMemory(ctx context.Context, in CreateMemoryInput) (*database.NeuroMemory, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, errs.Validation("content", "content must not be empty")
	}

	memType := in.Type
	if memType == "" {
		memType = database.MemoryTypeNormal
	}
	if !database.IsValidMemoryType(memType) {
		return nil, errs.Validation("type", "type must be one of %s, got '%s'",
			strings.Join(database.ValidMemoryTypes(), ", "), in.Type)
	}

	mem := &database.NeuroMemory{
		ID:        s.newID(),
		Content:   in.Content,
		Type:      memType,
		Source:    in.Source,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(mem).Error; err != nil {
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}

	return mem, nil
}

// GetMemory retrieves a memory by id.
func (s *Store) GetMemory(ctx context.Context, id string) (*database.NeuroMemory, error) {
	var mem database.NeuroMemory
	err := s.db.WithContext(ctx).First(&mem, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("memory", id)
		}
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}
	return &mem, nil
}

// ListMemories returns all memories in creation order.
func (s *Store) ListMemories(ctx context.Context) ([]database.NeuroMemory, error) {
	var memories []database.NeuroMemory
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&memories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	return memories, nil
}

// DeleteMemory removes a memory permanently. Deleting an absent id is a
// NotFound, not a silent success.
func (s *Store) DeleteMemory(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&database.NeuroMemory{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete memory: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("memory", id)
	}
	return nil
}
