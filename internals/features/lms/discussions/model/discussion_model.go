package model

import (
	"time"

	"github.com/google/uuid"
)

// DiscussionModel is one post on the shared discussion board.
type DiscussionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AuthorName string    `gorm:"size:100;not null" json:"authorName"`
	AuthorRole string    `gorm:"size:20;not null" json:"authorRole"`
	PostText   string    `gorm:"type:text;not null" json:"postText"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DiscussionModel) TableName() string {
	return "discussions"
}
