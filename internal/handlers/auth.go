package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/flowboard/flowboard-api/internal/dto"
	"github.com/flowboard/flowboard-api/internal/middleware"
	"github.com/flowboard/flowboard-api/internal/response"
	"github.com/flowboard/flowboard-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest covers the self-service profile fields only.
type UpdateProfileRequest struct {
	FullName             *string `json:"full_name"`
	JobRole              *string `json:"job_role"`
	Language             *string `json:"language" binding:"omitempty,max=10"`
	Theme                *string `json:"theme" binding:"omitempty,max=20"`
	AvatarURL            *string `json:"avatar_url"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	SoundEnabled         *bool   `json:"sound_enabled"`
}

// Register creates an account and returns a token for it.
//
// @Summary  Register a new user
// @Tags     Auth
// @Accept   json
// @Produce  json
// @Param    body  body      RegisterRequest  true  "Registration"
// @Success  201   {object}  response.Envelope{data=dto.AuthResponse}
// @Failure  400   {object}  response.Envelope
// @Failure  409   {object}  response.Envelope
// @Router   /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, dto.AuthResponse{
		Token: session.Token,
		User:  dto.ToUserDTO(*session.User),
	})
}

// Login authenticates a user and returns a token.
//
// @Summary  Log in
// @Tags     Auth
// @Accept   json
// @Produce  json
// @Param    body  body      LoginRequest  true  "Credentials"
// @Success  200   {object}  response.Envelope{data=dto.AuthResponse}
// @Failure  401   {object}  response.Envelope
// @Router   /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, dto.AuthResponse{
		Token: session.Token,
		User:  dto.ToUserDTO(*session.User),
	})
}

// GetCurrentUser returns the authenticated user.
//
// @Summary   Current user
// @Tags      Auth
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  response.Envelope{data=dto.UserDTO}
// @Failure   401  {object}  response.Envelope
// @Router    /api/auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, dto.ToUserDTO(*user))
}

// UpdateCurrentUser patches the authenticated user's profile.
//
// @Summary   Update own profile
// @Tags      Auth
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      UpdateProfileRequest  true  "Fields to change"
// @Success   200   {object}  response.Envelope{data=dto.UserDTO}
// @Failure   401   {object}  response.Envelope
// @Router    /api/auth/me [put]
func (h *AuthHandler) UpdateCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, services.UpdateProfileInput{
		FullName:             req.FullName,
		JobRole:              req.JobRole,
		Language:             req.Language,
		Theme:                req.Theme,
		AvatarURL:            req.AvatarURL,
		NotificationsEnabled: req.NotificationsEnabled,
		SoundEnabled:         req.SoundEnabled,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, dto.ToUserDTO(*user))
}
