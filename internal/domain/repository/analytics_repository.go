// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"hypeup/internal/domain/entity"
)

// AnalyticsRepository defines the operations for page view and chatbot
// interaction persistence. Both record kinds are immutable and never
// deleted; reads are pure aggregates.
type AnalyticsRepository interface {
	// CreatePageView persists a single page visit, assigning its ID and CreatedAt.
	CreatePageView(ctx context.Context, view *entity.PageView) error

	// CreateChatInteraction persists a single chatbot exchange, assigning
	// its ID and CreatedAt.
	CreateChatInteraction(ctx context.Context, interaction *entity.ChatInteraction) error

	// CountPageViews returns the exact number of stored page views.
	CountPageViews(ctx context.Context) (int64, error)

	// CountPageViewsSince counts page views with CreatedAt at or after since.
	CountPageViewsSince(ctx context.Context, since time.Time) (int64, error)

	// CountChatInteractions returns the exact number of stored chatbot exchanges.
	CountChatInteractions(ctx context.Context) (int64, error)

	// CountChatInteractionsSince counts chatbot exchanges with CreatedAt at or after since.
	CountChatInteractionsSince(ctx context.Context, since time.Time) (int64, error)
}
