// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PageView records a single visit to a page of the marketing site.
// Records are immutable and never deleted.
type PageView struct {
	ID        uuid.UUID // The unique identifier assigned at creation.
	Path      string    // The visited path; defaults to "/" when the client omits it.
	UserAgent string    // Optional User-Agent header of the visitor.
	IP        string    // Optional remote address of the visitor.
	CreatedAt time.Time // Server-assigned visit timestamp.
}

// ChatInteraction records one exchange with the chatbot widget: the
// visitor's message and the canned reply that was selected for it.
type ChatInteraction struct {
	ID          uuid.UUID // The unique identifier assigned at creation.
	UserMessage string    // The raw message the visitor sent.
	BotResponse string    // The reply returned to the visitor.
	CreatedAt   time.Time // Server-assigned exchange timestamp.
}

// AnalyticsSummary is the aggregate view served to the admin dashboard.
// Counts are exact cardinalities at the time of the query; the "today"
// counts cover records created on or after local midnight.
type AnalyticsSummary struct {
	TotalApplications     int64
	TotalPageViews        int64
	TotalChatInteractions int64
	RecentApplications    []*StreamerApplication // At most ten, newest first.
	PageViewsToday        int64
	ChatInteractionsToday int64
}
