package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusBlocked    TaskStatus = "BLOCKED"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// TaskStatuses lists every status in workflow order.
var TaskStatuses = []TaskStatus{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusInReview,
	TaskStatusBlocked,
	TaskStatusDone,
	TaskStatusCancelled,
}

// ParseTaskStatus matches a status name case-insensitively.
func ParseTaskStatus(raw string) (TaskStatus, bool) {
	candidate := TaskStatus(strings.ToUpper(strings.TrimSpace(raw)))
	for _, s := range TaskStatuses {
		if s == candidate {
			return s, true
		}
	}
	return "", false
}

type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "LOW"
	TaskPriorityMedium   TaskPriority = "MEDIUM"
	TaskPriorityHigh     TaskPriority = "HIGH"
	TaskPriorityCritical TaskPriority = "CRITICAL"
)

// TaskPriorities lists every priority from lowest to highest.
var TaskPriorities = []TaskPriority{
	TaskPriorityLow,
	TaskPriorityMedium,
	TaskPriorityHigh,
	TaskPriorityCritical,
}

// ParseTaskPriority matches a priority name case-insensitively.
func ParseTaskPriority(raw string) (TaskPriority, bool) {
	candidate := TaskPriority(strings.ToUpper(strings.TrimSpace(raw)))
	for _, p := range TaskPriorities {
		if p == candidate {
			return p, true
		}
	}
	return "", false
}

// Task references projects and users by id only; there are no cascades.
type Task struct {
	ID            uuid.UUID    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title         string       `gorm:"type:varchar(255);not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description"`
	Status        TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority      TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	ProjectID     *uuid.UUID   `gorm:"type:varchar(36)" json:"project_id"`
	AssigneeID    *uuid.UUID   `gorm:"type:varchar(36)" json:"assignee_id"`
	Deadline      *time.Time   `json:"deadline"`
	EstimateHours *int         `json:"estimate_hours"`
	// Labels and Checklist hold serialized JSON documents.
	Labels    *string   `gorm:"type:text" json:"labels"`
	Checklist *string   `gorm:"type:text" json:"checklist"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
