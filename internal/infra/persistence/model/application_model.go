package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationModel mirrors the 'streamer_applications' table.
type ApplicationModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	TelegramUserID   string    `gorm:"type:varchar(64)"`
	TelegramUsername string    `gorm:"type:varchar(64);not null"`
	TwitchChannel    string    `gorm:"type:varchar(255)"`
	YoutubeChannel   string    `gorm:"type:varchar(255)"`
	ContentType      string    `gorm:"type:varchar(100);not null"`
	StreamSchedule   string    `gorm:"type:text;not null"`
	Goals            string    `gorm:"type:text;not null"`
	Challenges       string    `gorm:"type:text;not null"`
	SocialMedia      string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "streamer_applications"
}
