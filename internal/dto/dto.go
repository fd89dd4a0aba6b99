package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/flowboard/flowboard-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID                   uuid.UUID       `json:"id"`
	Email                string          `json:"email"`
	FullName             string          `json:"full_name"`
	JobRole              string          `json:"job_role"`
	AvatarURL            string          `json:"avatar_url"`
	Language             string          `json:"language"`
	Theme                string          `json:"theme"`
	TotalPoints          int             `json:"total_points"`
	Rank                 string          `json:"rank"`
	NotificationsEnabled bool            `json:"notifications_enabled"`
	SoundEnabled         bool            `json:"sound_enabled"`
	Role                 models.UserRole `json:"role"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID            uuid.UUID           `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Status        models.TaskStatus   `json:"status"`
	Priority      models.TaskPriority `json:"priority"`
	ProjectID     *uuid.UUID          `json:"project_id"`
	AssigneeID    *uuid.UUID          `json:"assignee_id"`
	Deadline      *time.Time          `json:"deadline"`
	EstimateHours *int                `json:"estimate_hours"`
	Labels        json.RawMessage     `json:"labels"`
	Checklist     json.RawMessage     `json:"checklist"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ChatMessageDTO represents a stored chatbot exchange
type ChatMessageDTO struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Message   string          `json:"message"`
	Response  string          `json:"response"`
	Context   json.RawMessage `json:"context"`
	CreatedAt time.Time       `json:"created_at"`
}

// ChatReplyDTO is returned by the chatbot message endpoint
type ChatReplyDTO struct {
	Response string `json:"response"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:                   user.ID,
		Email:                user.Email,
		FullName:             user.FullName,
		JobRole:              user.JobRole,
		AvatarURL:            user.AvatarURL,
		Language:             user.Language,
		Theme:                user.Theme,
		TotalPoints:          user.TotalPoints,
		Rank:                 user.Rank,
		NotificationsEnabled: user.NotificationsEnabled,
		SoundEnabled:         user.SoundEnabled,
		Role:                 user.Role,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Color:       project.Color,
		Status:      project.Status,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	out := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		out[i] = ToProjectDTO(p)
	}
	return out
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		Priority:      task.Priority,
		ProjectID:     task.ProjectID,
		AssigneeID:    task.AssigneeID,
		Deadline:      task.Deadline,
		EstimateHours: task.EstimateHours,
		Labels:        storedJSON(task.Labels),
		Checklist:     storedJSON(task.Checklist),
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskDTO(t)
	}
	return out
}

// ToChatMessageDTOs converts a slice of chat messages
func ToChatMessageDTOs(messages []models.ChatMessage) []ChatMessageDTO {
	out := make([]ChatMessageDTO, len(messages))
	for i, m := range messages {
		out[i] = ChatMessageDTO{
			ID:        m.ID,
			UserID:    m.UserID,
			Message:   m.Message,
			Response:  m.Response,
			Context:   storedJSON(m.Context),
			CreatedAt: m.CreatedAt,
		}
	}
	return out
}

// storedJSON returns a serialized document as raw JSON. Text that is not valid
// JSON is returned as a JSON string so the response still encodes.
func storedJSON(value *string) json.RawMessage {
	if value == nil {
		return json.RawMessage("null")
	}
	if json.Valid([]byte(*value)) {
		return json.RawMessage(*value)
	}
	quoted, _ := json.Marshal(*value)
	return quoted
}

// JSONText serializes a raw JSON request field for storage. Missing and null
// values yield nil.
func JSONText(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	text := string(raw)
	return &text
}
