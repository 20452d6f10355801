// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"hypeup/internal/domain/entity"
)

// TrackPageViewInput defines the accepted shape of a page-view event.
// Path is optional and defaults to "/"; user agent and remote address
// are filled server-side from the request, never trusted from the body.
type TrackPageViewInput struct {
	Path      string `json:"path" validate:"omitempty,max=255"`
	UserAgent string `json:"-"`
	IP        string `json:"-"`
}

// AnalyticsUsecase defines the interface for analytics operations.
type AnalyticsUsecase interface {
	// TrackPageView records a single page visit.
	TrackPageView(ctx context.Context, input *TrackPageViewInput) error

	// Summary computes the aggregate dashboard view: exact totals per
	// entity kind, the ten most recent applications, and today's counts
	// using the local-midnight boundary.
	Summary(ctx context.Context) (*entity.AnalyticsSummary, error)
}
