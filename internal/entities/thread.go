package entities

import (
	"time"

	"forumapi/internal/apperror"
)

// AddThread 新建帖子的入参
type AddThread struct {
	Title string
	Body  string
	Owner string
}

func NewAddThread(p Payload) (*AddThread, error) {
	err := p.check(apperror.AddThreadMissingProperty, apperror.AddThreadInvalidType,
		rule{field: "title", required: true},
		rule{field: "body", required: true},
		rule{field: "owner", required: true},
	)
	if err != nil {
		return nil, err
	}
	return &AddThread{Title: p.str("title"), Body: p.str("body"), Owner: p.str("owner")}, nil
}

// Thread is the summary returned after a thread is persisted.
type Thread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewThread(id, title, owner string) (*Thread, error) {
	if id == "" || title == "" || owner == "" {
		return nil, apperror.FromCode(apperror.ThreadMissingProperty)
	}
	return &Thread{ID: id, Title: title, Owner: owner}, nil
}

// ThreadDetail is the read model served by GET /threads/:threadId.
type ThreadDetail struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Body     string           `json:"body"`
	BodyHTML string           `json:"bodyHtml,omitempty"`
	Date     time.Time        `json:"date"`
	Username string           `json:"username"`
	Comments []*CommentDetail `json:"comments"`
}

func NewThreadDetail(d ThreadDetail) (*ThreadDetail, error) {
	if d.ID == "" || d.Title == "" || d.Body == "" || d.Date.IsZero() || d.Username == "" {
		return nil, apperror.FromCode(apperror.ThreadDetailMissingProperty)
	}
	if d.Comments == nil {
		d.Comments = []*CommentDetail{}
	}
	return &d, nil
}

// AddComment appends in call order; callers feed comments oldest first.
func (t *ThreadDetail) AddComment(c *CommentDetail) {
	t.Comments = append(t.Comments, c)
}
