package entities

import (
	"time"

	"forumapi/internal/apperror"
)

const DeletedReplyContent = "**balasan telah dihapus**"

type AddReply struct {
	Content   string
	Owner     string
	CommentID string
	ThreadID  string
}

func NewAddReply(p Payload) (*AddReply, error) {
	err := p.check(apperror.AddReplyMissingProperty, apperror.AddReplyInvalidType,
		rule{field: "content", required: true},
	)
	if err != nil {
		return nil, err
	}
	return &AddReply{
		Content:   p.str("content"),
		Owner:     p.str("owner"),
		CommentID: p.str("commentId"),
		ThreadID:  p.str("threadId"),
	}, nil
}

type Reply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewReply(id, content, owner string) (*Reply, error) {
	if id == "" || content == "" || owner == "" {
		return nil, apperror.FromCode(apperror.ReplyMissingProperty)
	}
	return &Reply{ID: id, Content: content, Owner: owner}, nil
}

type DeleteReply struct {
	ThreadID  string
	CommentID string
	ReplyID   string
	Owner     string
}

func NewDeleteReply(p Payload) (*DeleteReply, error) {
	err := p.check(apperror.DeleteReplyMissingParameter, apperror.DeleteReplyInvalidType,
		rule{field: "threadId", required: true},
		rule{field: "commentId", required: true},
		rule{field: "replyId", required: true},
		rule{field: "owner"},
	)
	if err != nil {
		return nil, err
	}
	return &DeleteReply{
		ThreadID:  p.str("threadId"),
		CommentID: p.str("commentId"),
		ReplyID:   p.str("replyId"),
		Owner:     p.str("owner"),
	}, nil
}

type ReplyDetailParams struct {
	ID       string
	Username string
	Date     time.Time
	Content  string
	IsDelete bool
}

type ReplyDetail struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

func NewReplyDetail(p ReplyDetailParams) (*ReplyDetail, error) {
	if p.ID == "" || p.Username == "" || p.Date.IsZero() || p.Content == "" {
		return nil, apperror.FromCode(apperror.ReplyDetailMissingProperty)
	}
	content := p.Content
	if p.IsDelete {
		content = DeletedReplyContent
	}
	return &ReplyDetail{ID: p.ID, Content: content, Date: p.Date, Username: p.Username}, nil
}
