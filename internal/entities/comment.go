package entities

import (
	"time"

	"forumapi/internal/apperror"
)

// DeletedCommentContent replaces the content of soft-deleted comments at read time.
const DeletedCommentContent = "**komentar telah dihapus**"

type AddComment struct {
	Content  string
	Owner    string
	ThreadID string
}

func NewAddComment(p Payload) (*AddComment, error) {
	err := p.check(apperror.AddCommentMissingProperty, apperror.AddCommentInvalidType,
		rule{field: "content", required: true},
	)
	if err != nil {
		return nil, err
	}
	return &AddComment{Content: p.str("content"), Owner: p.str("owner"), ThreadID: p.str("threadId")}, nil
}

// Comment is the summary returned after a comment is persisted.
type Comment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewComment(id, content, owner string) (*Comment, error) {
	if id == "" || content == "" || owner == "" {
		return nil, apperror.FromCode(apperror.CommentMissingProperty)
	}
	return &Comment{ID: id, Content: content, Owner: owner}, nil
}

type DeleteComment struct {
	ThreadID  string
	CommentID string
	Owner     string
}

func NewDeleteComment(p Payload) (*DeleteComment, error) {
	err := p.check(apperror.DeleteCommentMissingParameter, apperror.DeleteCommentInvalidType,
		rule{field: "threadId", required: true},
		rule{field: "commentId", required: true},
		rule{field: "owner"},
	)
	if err != nil {
		return nil, err
	}
	return &DeleteComment{ThreadID: p.str("threadId"), CommentID: p.str("commentId"), Owner: p.str("owner")}, nil
}

// CommentDetailParams is one stored comment row as read for display.
type CommentDetailParams struct {
	ID        string
	Username  string
	Date      time.Time
	Content   string
	IsDelete  bool
	LikeCount int
}

type CommentDetail struct {
	ID        string         `json:"id"`
	Username  string         `json:"username"`
	Date      time.Time      `json:"date"`
	Content   string         `json:"content"`
	LikeCount int            `json:"likeCount"`
	Replies   []*ReplyDetail `json:"replies"`
}

func NewCommentDetail(p CommentDetailParams) (*CommentDetail, error) {
	if p.ID == "" || p.Username == "" || p.Date.IsZero() || p.Content == "" {
		return nil, apperror.FromCode(apperror.CommentDetailMissingProperty)
	}
	content := p.Content
	if p.IsDelete {
		content = DeletedCommentContent
	}
	return &CommentDetail{
		ID:        p.ID,
		Username:  p.Username,
		Date:      p.Date,
		Content:   content,
		LikeCount: p.LikeCount,
		Replies:   []*ReplyDetail{},
	}, nil
}

func (c *CommentDetail) AddReply(r *ReplyDetail) {
	c.Replies = append(c.Replies, r)
}
