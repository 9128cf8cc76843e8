package models

import (
	"time"
)

type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_post_vote;uniqueIndex:idx_comment_vote" json:"user_id"`
	PostID    *uint     `gorm:"index;uniqueIndex:idx_post_vote" json:"post_id"`
	CommentID *uint     `gorm:"index;uniqueIndex:idx_comment_vote" json:"comment_id"`
	Value     int       `gorm:"not null" json:"value"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
}

// One row per user per item. PG treats NULLs as distinct, so the composite
// unique indexes only bite on the non-null half of (post_id, comment_id).
