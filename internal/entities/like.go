package entities

import "forumapi/internal/apperror"

// NewLike identifies the like toggled by PUT .../likes.
type NewLike struct {
	ThreadID  string
	CommentID string
	UserID    string
}

func NewNewLike(p Payload) (*NewLike, error) {
	err := p.check(apperror.NewLikeMissingParameter, apperror.NewLikeInvalidType,
		rule{field: "threadId", required: true},
		rule{field: "commentId", required: true},
		rule{field: "userId", required: true},
	)
	if err != nil {
		return nil, err
	}
	return &NewLike{ThreadID: p.str("threadId"), CommentID: p.str("commentId"), UserID: p.str("userId")}, nil
}
