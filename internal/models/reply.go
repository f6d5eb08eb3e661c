package models

import (
	"time"
)

// Reply 评论下的回复，只支持一层嵌套
type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CommentID string    `gorm:"type:varchar(50);index" json:"comment_id"`
	Comment   Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Owner     string    `gorm:"type:varchar(50);index" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `gorm:"type:timestamptz;default:current_timestamp" json:"created_at"`
	IsDelete  bool      `gorm:"not null;default:false" json:"is_delete"`
}
