package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/flowboard/flowboard-api/internal/models"
	"github.com/flowboard/flowboard-api/internal/sorting"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List retrieves all users in the given order
	List(ctx context.Context, order *sorting.Order) ([]models.User, error)

	// Update saves every column of the user
	Update(ctx context.Context, user *models.User) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	List(ctx context.Context, order *sorting.Order) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project. Deleting a missing project is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	List(ctx context.Context, order *sorting.Order) ([]models.Task, error)

	// Filter retrieves tasks matching the filter
	Filter(ctx context.Context, filter TaskFilter) ([]models.Task, error)

	Update(ctx context.Context, task *models.Task) error

	// Delete removes a task. Deleting a missing task is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskFilter holds filtering options for the task filter query.
// When both AssigneeID and ProjectID are set only AssigneeID is applied.
type TaskFilter struct {
	AssigneeID *uuid.UUID
	ProjectID  *uuid.UUID
	Status     *models.TaskStatus
	Order      *sorting.Order
	// Limit keeps the first Limit rows after ordering; zero or less means no limit.
	Limit int
}

// ChatMessageRepository defines the interface for chat history access
type ChatMessageRepository interface {
	Create(ctx context.Context, message *models.ChatMessage) error

	// ListByUser returns a user's messages, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ChatMessage, error)
}

// Sortable fields per entity.
var (
	UserSortFields = sorting.Fields{
		"email":        "email",
		"full_name":    "full_name",
		"job_role":     "job_role",
		"total_points": "total_points",
		"rank":         "rank",
		"role":         "role",
		"created_at":   "created_at",
		"updated_at":   "updated_at",
	}

	ProjectSortFields = sorting.Fields{
		"name":       "name",
		"status":     "status",
		"color":      "color",
		"created_at": "created_at",
		"updated_at": "updated_at",
	}

	TaskSortFields = sorting.Fields{
		"title":          "title",
		"status":         sorting.Rank("status", models.TaskStatuses),
		"priority":       sorting.Rank("priority", models.TaskPriorities),
		"deadline":       "deadline",
		"estimate_hours": "estimate_hours",
		"created_at":     "created_at",
		"updated_at":     "updated_at",
	}
)
