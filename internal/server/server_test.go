package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/flowboard/flowboard-api/internal/config"
	"github.com/flowboard/flowboard-api/internal/constants"
	"github.com/flowboard/flowboard-api/internal/database"
	"github.com/flowboard/flowboard-api/internal/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: "scenario-secret", JWTExpiry: time.Hour},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	return New(cfg, db, logger.NewNop())
}

func call(t *testing.T, r http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestScenario_RegisterLoginMe(t *testing.T) {
	r := newTestServer(t)

	w, _ := call(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wonderland",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := call(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wonderland",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.Token)

	w, env = call(t, r, http.MethodGet, "/api/auth/me", "Bearer "+session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "alice@example.com", me.Email)

	for name, header := range map[string]string{
		"no token":      "",
		"garbage token": "Bearer not.a.jwt",
		"basic scheme":  "Basic " + session.Token,
	} {
		t.Run(name, func(t *testing.T) {
			w, env := call(t, r, http.MethodGet, "/api/auth/me", header, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "UNAUTHORIZED", env.Code)
		})
	}
}

func TestScenario_PublicRoutesIgnoreBadTokens(t *testing.T) {
	r := newTestServer(t)

	w, env := call(t, r, http.MethodGet, "/api/projects", "Bearer garbage", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestScenario_ChatbotPlaceholder(t *testing.T) {
	r := newTestServer(t)

	w, env := call(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "bot@example.com",
		"password": "wonderland",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var session struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))

	w, _ = call(t, r, http.MethodPost, "/api/chatbot/message", "", map[string]string{"message": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = call(t, r, http.MethodPost, "/api/chatbot/message", "Bearer "+session.Token, map[string]string{"message": "hi"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var reply struct {
		Response string `json:"response"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, constants.ChatbotMockResponse, reply.Response)

	w, env = call(t, r, http.MethodGet, "/api/chatbot/history/"+session.User.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []struct {
		Response string `json:"response"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history, 1)
	assert.Equal(t, constants.ChatbotMockResponse, history[0].Response)
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestServer(t)

	w, _ := call(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, gormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, gormLogLevel("info"))
	assert.Equal(t, gormlogger.Error, gormLogLevel("error"))
}

func TestInit_DefaultSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"},
		Auth:     config.AuthConfig{JWTSecret: config.DefaultJWTSecret, JWTExpiry: time.Hour},
	}

	core, logs := observer.New(zapcore.WarnLevel)
	srv, err := Init(cfg, &logger.Logger{Logger: zap.New(core)})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := srv.DB.DB(); err == nil {
			sqlDB.Close()
		}
	})
	assert.Equal(t, 1, logs.FilterMessageSnippet("JWT_SECRET").Len())

	cfg.Server.GinMode = "release"
	_, err = Init(cfg, logger.NewNop())
	assert.ErrorIs(t, err, config.ErrDefaultSecretInRelease)
}
