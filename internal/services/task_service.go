package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flowboard/flowboard-api/internal/models"
	"github.com/flowboard/flowboard-api/internal/repository"
	"github.com/flowboard/flowboard-api/internal/sorting"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleEmpty         = errors.New("title cannot be empty")
	ErrInvalidTaskStatus  = errors.New("invalid task status")
	ErrInvalidPriority    = errors.New("invalid task priority")
	ErrNegativeEstimation = errors.New("estimate hours cannot be negative")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title         string
	Description   string
	Status        string
	Priority      string
	ProjectID     *uuid.UUID
	AssigneeID    *uuid.UUID
	Deadline      *time.Time
	EstimateHours *int
	Labels        *string
	Checklist     *string
}

// UpdateTaskInput represents input for updating a task. Nil fields are left untouched.
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	Status        *string
	Priority      *string
	ProjectID     *uuid.UUID
	AssigneeID    *uuid.UUID
	Deadline      *time.Time
	EstimateHours *int
	Labels        *string
	Checklist     *string
}

// FilterTasksInput represents the task filter query
type FilterTasksInput struct {
	AssigneeID *uuid.UUID
	ProjectID  *uuid.UUID
	Status     string
	OrderBy    string
	Limit      int
}

// ListTasks returns every task, ordered by orderBy when given
func (s *TaskService) ListTasks(ctx context.Context, orderBy string) ([]models.Task, error) {
	order, err := sorting.Parse(orderBy, repository.TaskSortFields)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// FilterTasks narrows tasks by assignee or project and by status.
// The assignee filter takes precedence when both ids are given.
func (s *TaskService) FilterTasks(ctx context.Context, input FilterTasksInput) ([]models.Task, error) {
	order, err := sorting.Parse(input.OrderBy, repository.TaskSortFields)
	if err != nil {
		return nil, err
	}

	filter := repository.TaskFilter{
		Order: order,
		Limit: input.Limit,
	}
	if input.AssigneeID != nil {
		filter.AssigneeID = input.AssigneeID
	} else {
		filter.ProjectID = input.ProjectID
	}
	if status := strings.TrimSpace(input.Status); status != "" {
		// stored statuses are upper case, so an unknown value simply matches nothing
		normalized := models.TaskStatus(strings.ToUpper(status))
		filter.Status = &normalized
	}

	tasks, err := s.taskRepo.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a single task
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrTaskNotFound, "failed to find task")
	}
	return task, nil
}

// CreateTask creates a new task with validation
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	status := models.TaskStatusTodo
	if input.Status != "" {
		parsed, ok := models.ParseTaskStatus(input.Status)
		if !ok {
			return nil, ErrInvalidTaskStatus
		}
		status = parsed
	}

	priority := models.TaskPriorityMedium
	if input.Priority != "" {
		parsed, ok := models.ParseTaskPriority(input.Priority)
		if !ok {
			return nil, ErrInvalidPriority
		}
		priority = parsed
	}

	if input.EstimateHours != nil && *input.EstimateHours < 0 {
		return nil, ErrNegativeEstimation
	}

	task := &models.Task{
		Title:         input.Title,
		Description:   input.Description,
		Status:        status,
		Priority:      priority,
		ProjectID:     input.ProjectID,
		AssigneeID:    input.AssigneeID,
		Deadline:      input.Deadline,
		EstimateHours: input.EstimateHours,
		Labels:        input.Labels,
		Checklist:     input.Checklist,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask merges the present fields of input into the stored task
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		status, ok := models.ParseTaskStatus(*input.Status)
		if !ok {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = status
	}
	if input.Priority != nil {
		priority, ok := models.ParseTaskPriority(*input.Priority)
		if !ok {
			return nil, ErrInvalidPriority
		}
		task.Priority = priority
	}
	if input.ProjectID != nil {
		task.ProjectID = input.ProjectID
	}
	if input.AssigneeID != nil {
		task.AssigneeID = input.AssigneeID
	}
	if input.Deadline != nil {
		task.Deadline = input.Deadline
	}
	if input.EstimateHours != nil {
		if *input.EstimateHours < 0 {
			return nil, ErrNegativeEstimation
		}
		task.EstimateHours = input.EstimateHours
	}
	if input.Labels != nil {
		task.Labels = input.Labels
	}
	if input.Checklist != nil {
		task.Checklist = input.Checklist
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task. Deleting a missing task succeeds.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
