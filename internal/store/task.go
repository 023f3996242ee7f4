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

// CreateTaskInput holds caller-supplied fields for a new task.
// ProjectID is a free-form reference; its existence is deliberately not
// checked at write time (projects do not cascade-delete their tasks).
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
	ProjectID   string `json:"project_id,omitempty"`
	Status      string `json:"status,omitempty"`
}

// UpdateTaskInput holds a partial set of task fields; nil means "leave
// unchanged".
type UpdateTaskInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	ProjectID   *string `json:"project_id,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// CreateTask validates, assigns id and timestamps, and inserts a task.
func (s *Store) CreateTask(ctx context.Context, in CreateTaskInput) (*database.NeuroTask, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errs.Validation("title", "title must not be empty")
	}

	priority := database.TaskPriorityDefault
	if in.Priority != nil {
		priority = *in.Priority
	}
	if err := s.validatePriority(priority); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = database.TaskStatusOpen
	}
	if !database.IsValidTaskStatus(status) {
		return nil, errs.Validation("status", "status must be one of %s, got '%s'",
			strings.Join(database.ValidTaskStatuses(), ", "), in.Status)
	}

	now := time.Now().UTC()
	task := &database.NeuroTask{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		ProjectID:   in.ProjectID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask retrieves a task by id.
func (s *Store) GetTask(ctx context.Context, id string) (*database.NeuroTask, error) {
	var task database.NeuroTask
	err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("task", id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// ListTasks returns all tasks in creation order, optionally restricted to
// a project. An empty projectID means no filtering.
func (s *Store) ListTasks(ctx context.Context, projectID string) ([]database.NeuroTask, error) {
	query := s.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	var tasks []database.NeuroTask
	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask merges the provided fields into an existing task and bumps
// UpdatedAt. Validation failures reject the whole update.
func (s *Store) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (*database.NeuroTask, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, errs.Validation("title", "title must not be empty")
	}
	if in.Priority != nil {
		if err := s.validatePriority(*in.Priority); err != nil {
			return nil, err
		}
	}
	if in.Status != nil && !database.IsValidTaskStatus(*in.Status) {
		return nil, errs.Validation("status", "status must be one of %s, got '%s'",
			strings.Join(database.ValidTaskStatuses(), ", "), *in.Status)
	}

	var task database.NeuroTask
	// Single transaction so a concurrent update of the same id cannot
	// interleave between read and write.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			return err
		}

		if in.Title != nil {
			task.Title = *in.Title
		}
		if in.Description != nil {
			task.Description = *in.Description
		}
		if in.Priority != nil {
			task.Priority = *in.Priority
		}
		if in.ProjectID != nil {
			task.ProjectID = *in.ProjectID
		}
		if in.Status != nil {
			task.Status = *in.Status
		}
		task.UpdatedAt = time.Now().UTC()

		return tx.Save(&task).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("task", id)
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &task, nil
}

// DeleteTask removes a task permanently.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&database.NeuroTask{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("task", id)
	}
	return nil
}

// validatePriority enforces the documented 0..MaxTaskPriority scale,
// where 0 is most urgent. Out-of-range values are rejected, never clamped.
func (s *Store) validatePriority(priority int) error {
	if priority < 0 || priority > s.limits.MaxTaskPriority {
		return errs.Validation("priority", "priority must be between 0 and %d, got %d",
			s.limits.MaxTaskPriority, priority)
	}
	return nil
}
