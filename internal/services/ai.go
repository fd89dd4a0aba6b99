package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/flowboard/flowboard-api/internal/constants"
)

const assistantPrompt = `You are the assistant of a task and project management app.
Answer briefly and help the user plan, prioritize and track their work.`

// OpenAIResponder answers chatbot messages with an OpenAI chat completion.
type OpenAIResponder struct {
	client *openai.Client
	model  string
}

// NewOpenAIResponderWithConfig creates a responder from a client config,
// for alternative base URLs.
func NewOpenAIResponderWithConfig(cfg openai.ClientConfig, model string) *OpenAIResponder {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIResponder{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Respond sends the message, with the caller's context as a system message.
func (s *OpenAIResponder) Respond(ctx context.Context, message string, chatContext map[string]interface{}) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: assistantPrompt,
		},
	}
	if len(chatContext) > 0 {
		encoded, err := json.Marshal(chatContext)
		if err != nil {
			return "", fmt.Errorf("failed to encode chat context: %w", err)
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: "Context: " + string(encoded),
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       s.model,
			Messages:    messages,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return constants.ChatbotEmptyResponse, nil
	}

	return resp.Choices[0].Message.Content, nil
}
