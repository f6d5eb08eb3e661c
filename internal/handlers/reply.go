package handlers

import (
	"net/http"

	"forumapi/internal/entities"
	"forumapi/internal/middleware"
	"forumapi/internal/services"

	"github.com/gin-gonic/gin"
)

type ReplyHandler struct {
	addReply    *services.AddReplyUseCase
	deleteReply *services.DeleteReplyUseCase
}

func NewReplyHandler(uc *services.UseCases) *ReplyHandler {
	return &ReplyHandler{addReply: uc.AddReply, deleteReply: uc.DeleteReply}
}

// Create POST /threads/:threadId/comments/:commentId/replies
func (h *ReplyHandler) Create(c *gin.Context) {
	payload, ok := mustPayload(c)
	if !ok {
		return
	}
	payload["owner"] = middleware.CurrentUserID(c)
	payload["threadId"] = c.Param("threadId")
	payload["commentId"] = c.Param("commentId")

	reply, err := h.addReply.Execute(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"addedReply": reply})
}

// Delete DELETE /threads/:threadId/comments/:commentId/replies/:replyId
func (h *ReplyHandler) Delete(c *gin.Context) {
	err := h.deleteReply.Execute(c.Request.Context(), entities.Payload{
		"threadId":  c.Param("threadId"),
		"commentId": c.Param("commentId"),
		"replyId":   c.Param("replyId"),
		"owner":     middleware.CurrentUserID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil)
}
