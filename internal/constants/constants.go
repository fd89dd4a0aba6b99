package constants

import "time"

// Context keys
const (
	ContextKeyIdentity  = "identity"
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"
)

// Auth
const (
	MinPasswordLength = 6
	BearerPrefix      = "Bearer "
	DefaultTokenTTL   = 24 * time.Hour
)

// User defaults
const (
	DefaultLanguage = "fa"
	DefaultTheme    = "light"
	DefaultRank     = "bronze"
)

// Project defaults
const (
	DefaultProjectColor  = "#3B82F6"
	DefaultProjectStatus = "active"
)

// Chatbot
const (
	DefaultChatbotTimeout = 10 * time.Second
	ChatbotMockResponse   = "This is a mock response. Please configure CHATBOT_API_URL and CHATBOT_API_KEY environment variables."
	ChatbotErrorResponse  = "I'm sorry, there was an error processing your request. Please try again later."
	ChatbotEmptyResponse  = "I'm sorry, I couldn't process your request."
)
