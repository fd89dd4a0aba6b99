package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/flowboard/flowboard-api/internal/dto"
	"github.com/flowboard/flowboard-api/internal/response"
	"github.com/flowboard/flowboard-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTaskRequest carries labels and checklist as arbitrary JSON documents.
// Empty strings for ids and deadline count as absent.
type CreateTaskRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Status        string          `json:"status" binding:"omitempty,task_status"`
	Priority      string          `json:"priority" binding:"omitempty,task_priority"`
	ProjectID     LenientUUID     `json:"project_id" swaggertype:"string"`
	AssigneeID    LenientUUID     `json:"assignee_id" swaggertype:"string"`
	Deadline      LenientTime     `json:"deadline" swaggertype:"string"`
	EstimateHours *int            `json:"estimate_hours" binding:"omitempty,min=0"`
	Labels        json.RawMessage `json:"labels" swaggertype:"object"`
	Checklist     json.RawMessage `json:"checklist" swaggertype:"object"`
}

// UpdateTaskRequest only touches fields present in the body.
type UpdateTaskRequest struct {
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	Status        *string         `json:"status" binding:"omitempty,task_status"`
	Priority      *string         `json:"priority" binding:"omitempty,task_priority"`
	ProjectID     LenientUUID     `json:"project_id" swaggertype:"string"`
	AssigneeID    LenientUUID     `json:"assignee_id" swaggertype:"string"`
	Deadline      LenientTime     `json:"deadline" swaggertype:"string"`
	EstimateHours *int            `json:"estimate_hours" binding:"omitempty,min=0"`
	Labels        json.RawMessage `json:"labels" swaggertype:"object"`
	Checklist     json.RawMessage `json:"checklist" swaggertype:"object"`
}

// ListTasks returns all tasks
//
// @Summary  List tasks
// @Tags     Tasks
// @Produce  json
// @Param    orderBy  query     string  false  "Sort field, prefix with - for descending"
// @Success  200      {object}  response.Envelope{data=[]dto.TaskDTO}
// @Failure  400      {object}  response.Envelope
// @Router   /api/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context(), c.Query("orderBy"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ToTaskDTOs(tasks))
}

// FilterTasks narrows tasks by assignee or project, status and limit.
// assigneeId wins over projectId when both are given.
//
// @Summary  Filter tasks
// @Tags     Tasks
// @Produce  json
// @Param    assigneeId  query     string  false  "Assignee user ID"
// @Param    projectId   query     string  false  "Project ID"
// @Param    status      query     string  false  "Status, any case"
// @Param    orderBy     query     string  false  "Sort field, prefix with - for descending"
// @Param    limit       query     int     false  "Maximum number of tasks"
// @Success  200         {object}  response.Envelope{data=[]dto.TaskDTO}
// @Failure  400         {object}  response.Envelope
// @Router   /api/tasks/filter [get]
func (h *TaskHandler) FilterTasks(c *gin.Context) {
	assigneeID, err := parseOptionalUUID(c, "assigneeId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	projectID, err := parseOptionalUUID(c, "projectId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	limit, err := parseOptionalInt(c, "limit")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tasks, err := h.taskService.FilterTasks(c.Request.Context(), services.FilterTasksInput{
		AssigneeID: assigneeID,
		ProjectID:  projectID,
		Status:     c.Query("status"),
		OrderBy:    c.Query("orderBy"),
		Limit:      limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ToTaskDTOs(tasks))
}

// GetTask returns a specific task by ID
//
// @Summary  Get task
// @Tags     Tasks
// @Produce  json
// @Param    id   path      string  true  "Task ID"
// @Success  200  {object}  response.Envelope{data=dto.TaskDTO}
// @Failure  404  {object}  response.Envelope
// @Router   /api/tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task
//
// @Summary  Create task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    body  body      CreateTaskRequest  true  "Task"
// @Success  201   {object}  response.Envelope{data=dto.TaskDTO}
// @Failure  400   {object}  response.Envelope
// @Router   /api/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		Priority:      req.Priority,
		ProjectID:     req.ProjectID.Ptr(),
		AssigneeID:    req.AssigneeID.Ptr(),
		Deadline:      req.Deadline.Ptr(),
		EstimateHours: req.EstimateHours,
		Labels:        dto.JSONText(req.Labels),
		Checklist:     dto.JSONText(req.Checklist),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, dto.ToTaskDTO(*task))
}

// UpdateTask applies the fields present in the body
//
// @Summary  Update task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    id    path      string             true  "Task ID"
// @Param    body  body      UpdateTaskRequest  true  "Fields to change"
// @Success  200   {object}  response.Envelope{data=dto.TaskDTO}
// @Failure  400   {object}  response.Envelope
// @Failure  404   {object}  response.Envelope
// @Router   /api/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, services.UpdateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		Priority:      req.Priority,
		ProjectID:     req.ProjectID.Ptr(),
		AssigneeID:    req.AssigneeID.Ptr(),
		Deadline:      req.Deadline.Ptr(),
		EstimateHours: req.EstimateHours,
		Labels:        dto.JSONText(req.Labels),
		Checklist:     dto.JSONText(req.Checklist),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task
//
// @Summary  Delete task
// @Tags     Tasks
// @Produce  json
// @Param    id   path      string  true  "Task ID"
// @Success  200  {object}  response.Envelope
// @Router   /api/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.OKMessage(c, "Task deleted successfully")
}
