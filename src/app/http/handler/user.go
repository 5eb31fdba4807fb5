package handler

import (
	"github.com/gin-gonic/gin"

	"forumapi/src/app/http/dto"
	"forumapi/src/app/http/response"
	"forumapi/src/core/usecase"
)

// UserHandler handles registration.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Post registers a user.
// POST /users
func (h *UserHandler) Post(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), payload)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.AddedUserData{AddedUser: user})
}
