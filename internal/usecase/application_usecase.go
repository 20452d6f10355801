// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hypeup/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitApplicationInput defines the accepted shape of a streamer
// application submission. The validate tags are the declarative schema
// for the route: binding strips unknown fields, validation rejects
// missing or malformed ones with per-field errors.
type SubmitApplicationInput struct {
	TelegramUserID   string `json:"telegramUserId" validate:"omitempty,max=64"`
	TelegramUsername string `json:"telegramUsername" validate:"required,tg_handle"`
	TwitchChannel    string `json:"twitchChannel" validate:"omitempty,url"`
	YoutubeChannel   string `json:"youtubeChannel" validate:"omitempty,url"`
	ContentType      string `json:"contentType" validate:"required"`
	StreamSchedule   string `json:"streamSchedule" validate:"required"`
	Goals            string `json:"goals" validate:"required,min=10"`
	Challenges       string `json:"challenges" validate:"required,min=10"`
	SocialMedia      string `json:"socialMedia" validate:"omitempty"`
}

// ApplicationUsecase defines the interface for streamer application operations.
// This is the contract that the delivery layer (API handlers) depends on.
type ApplicationUsecase interface {
	// Submit validates nothing itself (the delivery layer has already run
	// the schema); it persists the application and returns the stored
	// record with its generated ID and CreatedAt.
	Submit(ctx context.Context, input *SubmitApplicationInput) (*entity.StreamerApplication, error)

	// List returns every stored application, newest first.
	List(ctx context.Context) ([]*entity.StreamerApplication, error)

	// Get returns a single application by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.StreamerApplication, error)
}
