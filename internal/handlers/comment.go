package handlers

import (
	"net/http"

	"forumapi/internal/entities"
	"forumapi/internal/middleware"
	"forumapi/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	addComment    *services.AddCommentUseCase
	deleteComment *services.DeleteCommentUseCase
}

func NewCommentHandler(uc *services.UseCases) *CommentHandler {
	return &CommentHandler{addComment: uc.AddComment, deleteComment: uc.DeleteComment}
}

// Create POST /threads/:threadId/comments
func (h *CommentHandler) Create(c *gin.Context) {
	payload, ok := mustPayload(c)
	if !ok {
		return
	}
	payload["owner"] = middleware.CurrentUserID(c)
	payload["threadId"] = c.Param("threadId")

	comment, err := h.addComment.Execute(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"addedComment": comment})
}

// Delete DELETE /threads/:threadId/comments/:commentId
func (h *CommentHandler) Delete(c *gin.Context) {
	err := h.deleteComment.Execute(c.Request.Context(), entities.Payload{
		"threadId":  c.Param("threadId"),
		"commentId": c.Param("commentId"),
		"owner":     middleware.CurrentUserID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil)
}
