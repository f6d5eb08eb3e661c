package handlers

import (
	"net/http"

	"forumapi/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	login   *services.LoginUserUseCase
	refresh *services.RefreshAuthenticationUseCase
	logout  *services.LogoutUserUseCase
}

func NewAuthHandler(uc *services.UseCases) *AuthHandler {
	return &AuthHandler{login: uc.LoginUser, refresh: uc.RefreshAuthentication, logout: uc.LogoutUser}
}

// Login POST /authentications
func (h *AuthHandler) Login(c *gin.Context) {
	payload, ok := mustPayload(c)
	if !ok {
		return
	}

	auth, err := h.login.Execute(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{
		"accessToken":  auth.AccessToken,
		"refreshToken": auth.RefreshToken,
	})
}

// Refresh PUT /authentications
func (h *AuthHandler) Refresh(c *gin.Context) {
	payload, ok := mustPayload(c)
	if !ok {
		return
	}

	accessToken, err := h.refresh.Execute(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logout DELETE /authentications
func (h *AuthHandler) Logout(c *gin.Context) {
	payload, ok := mustPayload(c)
	if !ok {
		return
	}

	if err := h.logout.Execute(c.Request.Context(), payload); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil)
}
