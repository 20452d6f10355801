// Package service defines domain service interfaces implemented by the infra layer.
package service

// ChatbotResponder selects the canned reply for a visitor message.
// Implementations are pure: same message, same reply, no state.
type ChatbotResponder interface {
	// Reply returns the response for the given visitor message.
	Reply(message string) string
}
