package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/flowboard/flowboard-api/internal/config"
	"github.com/flowboard/flowboard-api/internal/constants"
	"github.com/flowboard/flowboard-api/internal/logger"
	"github.com/flowboard/flowboard-api/internal/models"
	"github.com/flowboard/flowboard-api/internal/repository"
)

// Responder produces a chatbot reply for a message.
type Responder interface {
	Respond(ctx context.Context, message string, chatContext map[string]interface{}) (string, error)
}

// NewResponder picks the responder named by cfg.Provider. It returns nil when
// the provider is missing its endpoint or key.
func NewResponder(cfg config.ChatbotConfig) Responder {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil
		}
		clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
		clientConfig.HTTPClient = &http.Client{Timeout: boundedTimeout(cfg.Timeout)}
		return NewOpenAIResponderWithConfig(clientConfig, cfg.Model)
	default:
		if cfg.APIURL == "" {
			return nil
		}
		return NewHTTPResponder(cfg.APIURL, cfg.APIKey, cfg.Timeout)
	}
}

// ChatbotService relays messages to the configured responder and records every exchange.
type ChatbotService struct {
	responder Responder
	breaker   *gobreaker.CircuitBreaker
	messages  repository.ChatMessageRepository
	log       *logger.Logger
}

// NewChatbotService creates a ChatbotService. A nil responder answers every
// message with the not-configured placeholder.
func NewChatbotService(responder Responder, messages repository.ChatMessageRepository, log *logger.Logger) *ChatbotService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "chatbot",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &ChatbotService{
		responder: responder,
		breaker:   breaker,
		messages:  messages,
		log:       log,
	}
}

// SendMessage returns the reply for message and stores the exchange.
// Upstream failures are answered with an apology, never returned. The only
// error is a failure to store the exchange.
func (s *ChatbotService) SendMessage(ctx context.Context, userID uuid.UUID, message string, chatContext map[string]interface{}) (string, error) {
	reply := s.reply(ctx, message, chatContext)

	record := &models.ChatMessage{
		UserID:   userID,
		Message:  message,
		Response: reply,
	}
	if chatContext != nil {
		encoded, err := json.Marshal(chatContext)
		if err != nil {
			return "", fmt.Errorf("failed to encode chat context: %w", err)
		}
		text := string(encoded)
		record.Context = &text
	}

	if err := s.messages.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to save chat message: %w", err)
	}

	return reply, nil
}

// GetHistory returns a user's exchanges, newest first
func (s *ChatbotService) GetHistory(ctx context.Context, userID uuid.UUID) ([]models.ChatMessage, error) {
	messages, err := s.messages.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return messages, nil
}

func (s *ChatbotService) reply(ctx context.Context, message string, chatContext map[string]interface{}) string {
	if s.responder == nil {
		return constants.ChatbotMockResponse
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.responder.Respond(ctx, message, chatContext)
	})
	if err != nil {
		s.log.Warn("chatbot request failed", zap.Error(err))
		return constants.ChatbotErrorResponse
	}

	return result.(string)
}

// HTTPResponder posts messages to an external chatbot endpoint.
type HTTPResponder struct {
	url    string
	apiKey string
	client *http.Client
}

// NewHTTPResponder creates a responder for url. apiKey is optional.
func NewHTTPResponder(url, apiKey string, timeout time.Duration) *HTTPResponder {
	return &HTTPResponder{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: boundedTimeout(timeout)},
	}
}

// boundedTimeout replaces a non-positive timeout, which http.Client treats as
// no limit at all, with the default.
func boundedTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return constants.DefaultChatbotTimeout
	}
	return timeout
}

type chatbotRequest struct {
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context"`
}

type chatbotReply struct {
	Response json.RawMessage `json:"response"`
}

// Respond sends a single request; it does not retry.
func (r *HTTPResponder) Respond(ctx context.Context, message string, chatContext map[string]interface{}) (string, error) {
	body, err := json.Marshal(chatbotRequest{Message: message, Context: chatContext})
	if err != nil {
		return "", fmt.Errorf("failed to encode chatbot request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chatbot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", constants.BearerPrefix+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chatbot request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("chatbot returned status %d", resp.StatusCode)
	}

	var decoded chatbotReply
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode chatbot response: %w", err)
	}
	return replyText(decoded.Response), nil
}

// replyText renders the response field. Strings are returned as is, other JSON
// values as their encoded text.
func replyText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return constants.ChatbotEmptyResponse
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}
