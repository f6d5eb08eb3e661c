package handlers

import (
	"net/http"

	"forumapi/internal/services"
	"forumapi/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	addUser *services.AddUserUseCase
}

func NewUserHandler(uc *services.UseCases) *UserHandler {
	return &UserHandler{addUser: uc.AddUser}
}

// Register POST /users
func (h *UserHandler) Register(c *gin.Context) {
	payload, ok := mustPayload(c)
	if !ok {
		return
	}

	user, err := h.addUser.Execute(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogSuccessWithUser(user.ID, "user registered")
	respond(c, http.StatusCreated, gin.H{"addedUser": user})
}
