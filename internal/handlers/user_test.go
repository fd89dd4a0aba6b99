package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowboard/flowboard-api/internal/auth"
	"github.com/flowboard/flowboard-api/internal/dto"
	"github.com/flowboard/flowboard-api/internal/repository"
	"github.com/flowboard/flowboard-api/internal/services"
)

func TestUserHandler(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, auth.NewTokenService("test-secret", time.Hour))
	handler := NewUserHandler(services.NewUserService(userRepo))

	r := newTestRouter()
	r.GET("/api/users", handler.ListUsers)
	r.GET("/api/users/:id", handler.GetUser)

	var ids []uuid.UUID
	for _, email := range []string{"b@example.com", "a@example.com", "c@example.com"} {
		session, err := authService.Register(context.Background(), services.RegisterInput{Email: email, Password: "supersecret"})
		require.NoError(t, err)
		ids = append(ids, session.User.ID)
	}

	t.Run("list ordered by email descending", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/users?orderBy=-email", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var users []dto.UserDTO
		decode(t, w, &users)
		require.Len(t, users, 3)
		assert.Equal(t, "c@example.com", users[0].Email)
		assert.Equal(t, "a@example.com", users[2].Email)
	})

	t.Run("get by id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/users/"+ids[1].String(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var user dto.UserDTO
		decode(t, w, &user)
		assert.Equal(t, "a@example.com", user.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/users/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
