// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StreamerApplication is a creator's submitted onboarding form.
// Applications are append-only: once stored they are never updated or
// deleted, and CreatedAt is assigned exactly once by the store.
type StreamerApplication struct {
	ID               uuid.UUID // The unique identifier assigned at creation.
	TelegramUserID   string    // Optional numeric Telegram identifier, as reported by the widget.
	TelegramUsername string    // Required Telegram handle, with or without the leading '@'.
	TwitchChannel    string    // Optional Twitch channel URL.
	YoutubeChannel   string    // Optional YouTube channel URL.
	ContentType      string    // What the creator streams (gaming, IRL, music, ...).
	StreamSchedule   string    // Free-form description of the streaming schedule.
	Goals            string    // What the creator wants out of the community.
	Challenges       string    // What is currently holding the creator back.
	SocialMedia      string    // Optional links to other social profiles.
	CreatedAt        time.Time // Server-assigned submission timestamp.
}
