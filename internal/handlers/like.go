package handlers

import (
	"net/http"

	"forumapi/internal/entities"
	"forumapi/internal/middleware"
	"forumapi/internal/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	updateLike *services.UpdateLikeUseCase
}

func NewLikeHandler(uc *services.UseCases) *LikeHandler {
	return &LikeHandler{updateLike: uc.UpdateLike}
}

// Toggle PUT /threads/:threadId/comments/:commentId/likes
// 第一次调用点赞，再次调用取消
func (h *LikeHandler) Toggle(c *gin.Context) {
	err := h.updateLike.Execute(c.Request.Context(), entities.Payload{
		"threadId":  c.Param("threadId"),
		"commentId": c.Param("commentId"),
		"userId":    middleware.CurrentUserID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil)
}
