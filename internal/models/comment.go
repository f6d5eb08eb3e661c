package models

import (
	"time"
)

// Comment 帖子下的评论，删除时只置 is_delete，不做物理删除
type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ThreadID  string    `gorm:"type:varchar(50);index" json:"thread_id"`
	Thread    Thread    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Owner     string    `gorm:"type:varchar(50);index" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `gorm:"type:timestamptz;default:current_timestamp" json:"created_at"`
	IsDelete  bool      `gorm:"not null;default:false" json:"is_delete"`
}
