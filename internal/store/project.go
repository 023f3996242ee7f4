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

// CreateProjectInput holds caller-supplied fields for a new project.
type CreateProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProjectInput holds a partial set of project fields.
type UpdateProjectInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateProject validates, assigns id and timestamps, and inserts a project.
func (s *Store) CreateProject(ctx context.Context, in CreateProjectInput) (*database.NeuroProject, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errs.Validation("name", "name must not be empty")
	}

	now := time.Now().UTC()
	project := &database.NeuroProject{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetProject retrieves a project by id.
func (s *Store) GetProject(ctx context.Context, id string) (*database.NeuroProject, error) {
	var project database.NeuroProject
	err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("project", id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// ListProjects returns all projects in creation order.
func (s *Store) ListProjects(ctx context.Context) ([]database.NeuroProject, error) {
	var projects []database.NeuroProject
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject merges the provided fields into an existing project.
func (s *Store) UpdateProject(ctx context.Context, id string, in UpdateProjectInput) (*database.NeuroProject, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, errs.Validation("name", "name must not be empty")
	}

	var project database.NeuroProject
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			return err
		}

		if in.Name != nil {
			project.Name = *in.Name
		}
		if in.Description != nil {
			project.Description = *in.Description
		}
		project.UpdatedAt = time.Now().UTC()

		return tx.Save(&project).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("project", id)
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &project, nil
}

// DeleteProject removes a project permanently. Tasks referencing it keep
// their project_id; the dangling reference resolves to NotFound on read.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&database.NeuroProject{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("project", id)
	}
	return nil
}
