package models

// Like 评论点赞，(user_id, comment_id) 唯一
type Like struct {
	ID        string  `gorm:"primaryKey;type:varchar(50)" json:"id"`
	UserID    string  `gorm:"type:varchar(50);uniqueIndex:idx_likes_user_comment" json:"user_id"`
	User      User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CommentID string  `gorm:"type:varchar(50);uniqueIndex:idx_likes_user_comment;index" json:"comment_id"`
	Comment   Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
