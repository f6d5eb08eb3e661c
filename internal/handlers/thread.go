package handlers

import (
	"net/http"

	"forumapi/internal/middleware"
	"forumapi/internal/services"

	"github.com/gin-gonic/gin"
)

type ThreadHandler struct {
	addThread  *services.AddThreadUseCase
	showThread *services.ShowThreadUseCase
}

func NewThreadHandler(uc *services.UseCases) *ThreadHandler {
	return &ThreadHandler{addThread: uc.AddThread, showThread: uc.ShowThread}
}

// Create POST /threads
func (h *ThreadHandler) Create(c *gin.Context) {
	payload, ok := mustPayload(c)
	if !ok {
		return
	}
	payload["owner"] = middleware.CurrentUserID(c)

	thread, err := h.addThread.Execute(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"addedThread": thread})
}

// Detail GET /threads/:threadId
func (h *ThreadHandler) Detail(c *gin.Context) {
	thread, err := h.showThread.Execute(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"thread": thread})
}
