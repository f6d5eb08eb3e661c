package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"forumapi/internal/apperror"
	"forumapi/internal/entities"
	"forumapi/internal/models"
	"forumapi/internal/utils"
)

// ErrDuplicateLike mirrors the unique violation on idx_likes_user_comment; it
// is not a domain error, so handlers answer 500 as they do for Postgres.
var ErrDuplicateLike = errors.New("duplicate key value violates unique constraint \"idx_likes_user_comment\"")

// MemoryStore keeps every table in process memory. It implements all six
// repository contracts and backs STORAGE_DRIVER=memory and handler tests.
type MemoryStore struct {
	mu          sync.RWMutex
	idGenerator utils.IDGenerator

	users    []*models.User
	threads  []*models.Thread
	comments []*models.Comment
	replies  []*models.Reply
	likes    []*models.Like
	tokens   map[string]struct{}
}

func NewMemoryStore(idGenerator utils.IDGenerator) *MemoryStore {
	if idGenerator == nil {
		idGenerator = utils.DefaultIDGenerator
	}
	return &MemoryStore{idGenerator: idGenerator, tokens: make(map[string]struct{})}
}

func (s *MemoryStore) Repositories() *Repositories {
	return &Repositories{
		Threads:         s,
		Comments:        s,
		Replies:         s,
		Likes:           s,
		Users:           s,
		Authentications: s,
	}
}

// 以下查找函数调用方需持有锁

func (s *MemoryStore) userByID(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *MemoryStore) userByName(username string) *models.User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (s *MemoryStore) threadByID(id string) *models.Thread {
	for _, t := range s.threads {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *MemoryStore) commentByID(id string) *models.Comment {
	for _, c := range s.comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *MemoryStore) replyByID(id string) *models.Reply {
	for _, r := range s.replies {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Threads

func (s *MemoryStore) AddThread(ctx context.Context, thread *entities.AddThread) (*entities.Thread, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := "thread-" + s.idGenerator()
	s.threads = append(s.threads, &models.Thread{
		ID:        id,
		Title:     thread.Title,
		Body:      thread.Body,
		Owner:     thread.Owner,
		CreatedAt: time.Now(),
	})
	return entities.NewThread(id, thread.Title, thread.Owner)
}

func (s *MemoryStore) GetThreadByID(ctx context.Context, threadID string) (*ThreadRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.threadByID(threadID)
	if t == nil {
		return nil, nil
	}
	u := s.userByID(t.Owner)
	if u == nil {
		return nil, nil
	}
	return &ThreadRow{ID: t.ID, Title: t.Title, Body: t.Body, Date: t.CreatedAt, Username: u.Username}, nil
}

func (s *MemoryStore) VerifyAvailableThread(ctx context.Context, threadID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.threadByID(threadID) == nil {
		return apperror.NotFound(msgThreadNotFound)
	}
	return nil
}

// Comments

func (s *MemoryStore) AddComment(ctx context.Context, comment *entities.AddComment) (*entities.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := "comment-" + s.idGenerator()
	s.comments = append(s.comments, &models.Comment{
		ID:        id,
		Content:   comment.Content,
		ThreadID:  comment.ThreadID,
		Owner:     comment.Owner,
		CreatedAt: time.Now(),
	})
	return entities.NewComment(id, comment.Content, comment.Owner)
}

func (s *MemoryStore) DeleteComment(ctx context.Context, commentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.commentByID(commentID); c != nil {
		c.IsDelete = true
	}
	return nil
}

func (s *MemoryStore) GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := []CommentRow{}
	for _, c := range s.comments {
		if c.ThreadID != threadID {
			continue
		}
		u := s.userByID(c.Owner)
		if u == nil {
			continue
		}
		rows = append(rows, CommentRow{ID: c.ID, Username: u.Username, Date: c.CreatedAt, Content: c.Content, IsDelete: c.IsDelete})
	}
	// 插入顺序即时间顺序，stable 保证同一时刻的评论不乱序
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

func (s *MemoryStore) GetCommentOwnerByID(ctx context.Context, commentID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.commentByID(commentID)
	if c == nil {
		return "", apperror.NotFound(msgCommentNotFound)
	}
	return c.Owner, nil
}

// Replies

func (s *MemoryStore) AddReply(ctx context.Context, reply *entities.AddReply) (*entities.Reply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := "reply-" + s.idGenerator()
	s.replies = append(s.replies, &models.Reply{
		ID:        id,
		Content:   reply.Content,
		CommentID: reply.CommentID,
		Owner:     reply.Owner,
		CreatedAt: time.Now(),
	})
	return entities.NewReply(id, reply.Content, reply.Owner)
}

func (s *MemoryStore) DeleteReply(ctx context.Context, replyID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := s.replyByID(replyID); r != nil {
		r.IsDelete = true
	}
	return nil
}

func (s *MemoryStore) GetRepliesByCommentID(ctx context.Context, commentID string) ([]ReplyRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := []ReplyRow{}
	for _, r := range s.replies {
		if r.CommentID != commentID {
			continue
		}
		u := s.userByID(r.Owner)
		if u == nil {
			continue
		}
		rows = append(rows, ReplyRow{ID: r.ID, Content: r.Content, Date: r.CreatedAt, Username: u.Username, IsDelete: r.IsDelete})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

func (s *MemoryStore) GetReplyOwnerByID(ctx context.Context, replyID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := s.replyByID(replyID)
	if r == nil {
		return "", apperror.NotFound(msgReplyNotFound)
	}
	return r.Owner, nil
}

// Likes

func (s *MemoryStore) AddLike(ctx context.Context, like *entities.NewLike) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	// same guarantee as idx_likes_user_comment
	for _, l := range s.likes {
		if l.UserID == like.UserID && l.CommentID == like.CommentID {
			return "", fmt.Errorf("insert like: %w", ErrDuplicateLike)
		}
	}
	id := "like-" + s.idGenerator()
	s.likes = append(s.likes, &models.Like{ID: id, UserID: like.UserID, CommentID: like.CommentID})
	return id, nil
}

func (s *MemoryStore) DeleteLike(ctx context.Context, like *entities.NewLike) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.likes[:0]
	for _, l := range s.likes {
		if l.UserID == like.UserID && l.CommentID == like.CommentID {
			continue
		}
		kept = append(kept, l)
	}
	s.likes = kept
	return nil
}

func (s *MemoryStore) CheckLikeAvailability(ctx context.Context, like *entities.NewLike) (*LikeRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.likes {
		if l.UserID == like.UserID && l.CommentID == like.CommentID {
			return &LikeRow{ID: l.ID}, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetLikesCount(ctx context.Context, commentID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, l := range s.likes {
		if l.CommentID == commentID {
			count++
		}
	}
	return count, nil
}

// Users

func (s *MemoryStore) AddUser(ctx context.Context, user *entities.RegisterUser) (*entities.RegisteredUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userByName(user.Username) != nil {
		return nil, apperror.Invariant(msgUsernameTaken)
	}
	id := "user-" + s.idGenerator()
	s.users = append(s.users, &models.User{
		ID:        id,
		Username:  user.Username,
		Password:  user.Password,
		Fullname:  user.Fullname,
		CreatedAt: time.Now(),
	})
	return entities.NewRegisteredUser(id, user.Username, user.Fullname)
}

func (s *MemoryStore) VerifyAvailableUsername(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.userByName(username) != nil {
		return apperror.Invariant(msgUsernameTaken)
	}
	return nil
}

func (s *MemoryStore) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userByName(username)
	if u == nil {
		return "", apperror.Invariant(msgUsernameNotFound)
	}
	return u.Password, nil
}

func (s *MemoryStore) GetIDByUsername(ctx context.Context, username string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userByName(username)
	if u == nil {
		return "", apperror.Invariant(msgUsernameNotFound)
	}
	return u.ID, nil
}

// Authentications

func (s *MemoryStore) AddToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = struct{}{}
	return nil
}

func (s *MemoryStore) CheckAvailabilityToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.tokens[token]; !ok {
		return apperror.Invariant(msgTokenNotFound)
	}
	return nil
}

func (s *MemoryStore) DeleteToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, token)
	return nil
}

var (
	_ ThreadRepository         = (*MemoryStore)(nil)
	_ CommentRepository        = (*MemoryStore)(nil)
	_ ReplyRepository          = (*MemoryStore)(nil)
	_ LikeRepository           = (*MemoryStore)(nil)
	_ UserRepository           = (*MemoryStore)(nil)
	_ AuthenticationRepository = (*MemoryStore)(nil)
)
