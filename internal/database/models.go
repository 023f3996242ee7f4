// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package database

import (
	"time"
)

// NeuroMemory represents an immutable stored fact or note.
// Memories are never updated after creation; they are only created,
// read and hard-deleted.
type NeuroMemory struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Type      string    `gorm:"not null;default:normal;index" json:"type"`
	Source    string    `json:"source"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for NeuroMemory
func (NeuroMemory) TableName() string {
	return "neuro_memories"
}

// NeuroTask represents a unit of work, optionally attached to a project
type NeuroTask struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Priority    int       `gorm:"not null;default:2" json:"priority"`
	ProjectID   string    `gorm:"index" json:"project_id,omitempty"`
	Status      string    `gorm:"not null;default:open" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for NeuroTask
func (NeuroTask) TableName() string {
	return "neuro_tasks"
}

// NeuroProject groups tasks. Deleting a project does not cascade to its
// tasks; a dangling project_id resolves to "project not found" on read.
type NeuroProject struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for NeuroProject
func (NeuroProject) TableName() string {
	return "neuro_projects"
}

// MemoryType constants for stored memories
const (
	MemoryTypeNormal   = "normal"
	MemoryTypeInsight  = "insight"
	MemoryTypeDecision = "decision"
	MemoryTypeContext  = "context"
)

// ValidMemoryTypes returns all valid memory types
func ValidMemoryTypes() []string {
	return []string{
		MemoryTypeNormal,
		MemoryTypeInsight,
		MemoryTypeDecision,
		MemoryTypeContext,
	}
}

// IsValidMemoryType checks if a memory type is valid
func IsValidMemoryType(mType string) bool {
	for _, valid := range ValidMemoryTypes() {
		if mType == valid {
			return true
		}
	}
	return false
}

// TaskStatus constants for task lifecycle states
const (
	TaskStatusOpen       = "open"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// ValidTaskStatuses returns all valid task statuses
func ValidTaskStatuses() []string {
	return []string{
		TaskStatusOpen,
		TaskStatusInProgress,
		TaskStatusDone,
	}
}

// IsValidTaskStatus checks if a task status is valid
func IsValidTaskStatus(status string) bool {
	for _, valid := range ValidTaskStatuses() {
		if status == valid {
			return true
		}
	}
	return false
}

// Task priority scale: 0 is most urgent, MaxTaskPriority (configured,
// default 4) is least urgent. Values outside the range are rejected at
// creation rather than clamped.
const (
	TaskPriorityUrgent  = 0
	TaskPriorityDefault = 2
)
