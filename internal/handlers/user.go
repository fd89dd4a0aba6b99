package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/flowboard/flowboard-api/internal/dto"
	"github.com/flowboard/flowboard-api/internal/response"
	"github.com/flowboard/flowboard-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns all users
//
// @Summary  List users
// @Tags     Users
// @Produce  json
// @Param    orderBy  query     string  false  "Sort field, prefix with - for descending"
// @Success  200      {object}  response.Envelope{data=[]dto.UserDTO}
// @Router   /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context(), c.Query("orderBy"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ToUserDTOs(users))
}

// GetUser returns a specific user by ID
//
// @Summary  Get user
// @Tags     Users
// @Produce  json
// @Param    id   path      string  true  "User ID"
// @Success  200  {object}  response.Envelope{data=dto.UserDTO}
// @Failure  404  {object}  response.Envelope
// @Router   /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ToUserDTO(*user))
}
