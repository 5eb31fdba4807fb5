package handler

import (
	"github.com/gin-gonic/gin"

	"forumapi/src/app/http/dto"
	"forumapi/src/app/http/response"
	"forumapi/src/core/usecase"
)

// AuthHandler handles login, token refresh and logout.
type AuthHandler struct {
	authService *usecase.AuthService
}

func NewAuthHandler(authService *usecase.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login issues an access/refresh token pair.
// POST /authentications
func (h *AuthHandler) Login(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	auth, err := h.authService.Login(c.Request.Context(), payload)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, auth)
}

// Refresh exchanges a refresh token for a new access token.
// PUT /authentications
func (h *AuthHandler) Refresh(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	access, err := h.authService.RefreshAccessToken(c.Request.Context(), payload)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.AccessTokenData{AccessToken: access})
}

// Logout revokes a refresh token.
// DELETE /authentications
func (h *AuthHandler) Logout(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), payload); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil)
}
