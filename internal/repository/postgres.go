package repository

import (
	"forumapi/internal/utils"

	"gorm.io/gorm"
)

// NewPostgresRepositories wires every contract to the GORM adapters. All
// statements are raw parameterized SQL; the caller's context is attached
// per call.
func NewPostgresRepositories(db *gorm.DB, idGenerator utils.IDGenerator) *Repositories {
	return &Repositories{
		Threads:         NewThreadRepositoryPostgres(db, idGenerator),
		Comments:        NewCommentRepositoryPostgres(db, idGenerator),
		Replies:         NewReplyRepositoryPostgres(db, idGenerator),
		Likes:           NewLikeRepositoryPostgres(db, idGenerator),
		Users:           NewUserRepositoryPostgres(db, idGenerator),
		Authentications: NewAuthenticationRepositoryPostgres(db),
	}
}
