package model

import (
	"time"

	"github.com/google/uuid"
)

// PageViewModel mirrors the 'page_views' table.
type PageViewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Path      string    `gorm:"type:varchar(255);not null"`
	UserAgent string    `gorm:"type:text"`
	IP        string    `gorm:"type:varchar(64);column:ip"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PageViewModel) TableName() string {
	return "page_views"
}

// ChatInteractionModel mirrors the 'chat_interactions' table.
type ChatInteractionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserMessage string    `gorm:"type:text;not null"`
	BotResponse string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ChatInteractionModel) TableName() string {
	return "chat_interactions"
}
