// Package response defines the JSON shapes of the public API. The
// frontend consumes these byte-for-byte, so the envelopes here are the
// wire contract rather than a generic wrapper.
package response

import (
	"net/http"
	"time"

	"hypeup/internal/delivery/http/validator"
	"hypeup/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ApplicationView is the JSON rendering of a streamer application.
type ApplicationView struct {
	ID               string    `json:"id"`
	TelegramUserID   string    `json:"telegramUserId,omitempty"`
	TelegramUsername string    `json:"telegramUsername"`
	TwitchChannel    string    `json:"twitchChannel,omitempty"`
	YoutubeChannel   string    `json:"youtubeChannel,omitempty"`
	ContentType      string    `json:"contentType"`
	StreamSchedule   string    `json:"streamSchedule"`
	Goals            string    `json:"goals"`
	Challenges       string    `json:"challenges"`
	SocialMedia      string    `json:"socialMedia,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AccountView is the JSON rendering of the logged-in account. The
// stored credential never leaves the server.
type AccountView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SummaryView is the JSON rendering of the analytics dashboard payload.
type SummaryView struct {
	TotalApplications     int64              `json:"totalApplications"`
	TotalPageViews        int64              `json:"totalPageViews"`
	TotalChatInteractions int64              `json:"totalChatInteractions"`
	RecentApplications    []*ApplicationView `json:"recentApplications"`
	PageViewsToday        int64              `json:"pageViewsToday"`
	ChatInteractionsToday int64              `json:"chatInteractionsToday"`
}

// NewApplicationView maps an application entity to its wire form.
func NewApplicationView(application *entity.StreamerApplication) *ApplicationView {
	return &ApplicationView{
		ID:               application.ID.String(),
		TelegramUserID:   application.TelegramUserID,
		TelegramUsername: application.TelegramUsername,
		TwitchChannel:    application.TwitchChannel,
		YoutubeChannel:   application.YoutubeChannel,
		ContentType:      application.ContentType,
		StreamSchedule:   application.StreamSchedule,
		Goals:            application.Goals,
		Challenges:       application.Challenges,
		SocialMedia:      application.SocialMedia,
		CreatedAt:        application.CreatedAt,
	}
}

// NewApplicationViews maps a slice of application entities, preserving order.
func NewApplicationViews(applications []*entity.StreamerApplication) []*ApplicationView {
	views := make([]*ApplicationView, 0, len(applications))
	for _, application := range applications {
		views = append(views, NewApplicationView(application))
	}

	return views
}

// NewAccountView maps an account entity to its wire form.
func NewAccountView(account *entity.Account) *AccountView {
	return &AccountView{
		ID:       account.ID.String(),
		Username: account.Username,
		Role:     account.Role.String(),
	}
}

// NewSummaryView maps the analytics summary to its wire form.
func NewSummaryView(summary *entity.AnalyticsSummary) *SummaryView {
	return &SummaryView{
		TotalApplications:     summary.TotalApplications,
		TotalPageViews:        summary.TotalPageViews,
		TotalChatInteractions: summary.TotalChatInteractions,
		RecentApplications:    NewApplicationViews(summary.RecentApplications),
		PageViewsToday:        summary.PageViewsToday,
		ChatInteractionsToday: summary.ChatInteractionsToday,
	}
}

// Failure is the error envelope shared by every endpoint.
type Failure struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
}

// OK writes a 200 envelope with `success: true` plus the given extra
// fields, keeping each route's exact top-level keys.
func OK(c echo.Context, extra map[string]any) error {
	body := map[string]any{"success": true}
	for k, v := range extra {
		body[k] = v
	}

	return c.JSON(http.StatusOK, body)
}

// Error writes the failure envelope with the given status and message.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Failure{Success: false, Message: message})
}

// ValidationFailed writes the 400 failure envelope with per-field errors.
func ValidationFailed(c echo.Context, fields []validator.FieldError) error {
	return c.JSON(http.StatusBadRequest, Failure{
		Success: false,
		Message: "Validation failed",
		Errors:  fields,
	})
}

// Unauthorized writes the 401 failure envelope used by the admin gate.
func Unauthorized(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}

	return Error(c, http.StatusUnauthorized, message)
}
