// Package usecase contains the application-specific business rules.
package usecase

import "context"

// ChatMessageInput defines the accepted shape of a chatbot message.
type ChatMessageInput struct {
	Message string `json:"message" validate:"required,min=1"`
}

// ChatbotUsecase defines the interface for chatbot operations.
type ChatbotUsecase interface {
	// Converse selects the canned reply for the message, records the
	// exchange, and returns the reply.
	Converse(ctx context.Context, input *ChatMessageInput) (string, error)
}
