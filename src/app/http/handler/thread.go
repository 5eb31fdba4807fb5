package handler

import (
	"github.com/gin-gonic/gin"

	"forumapi/src/app/http/dto"
	"forumapi/src/app/http/response"
	"forumapi/src/app/middleware"
	"forumapi/src/core/domain"
	"forumapi/src/core/usecase"
)

// ThreadHandler handles thread endpoints.
type ThreadHandler struct {
	threadService *usecase.ThreadService
}

func NewThreadHandler(threadService *usecase.ThreadService) *ThreadHandler {
	return &ThreadHandler{threadService: threadService}
}

// Post creates a thread owned by the authenticated user.
// POST /threads
func (h *ThreadHandler) Post(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	payload["owner"] = middleware.GetUserID(c)

	added, err := h.threadService.AddThread(c.Request.Context(), payload)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.AddedThreadData{AddedThread: added})
}

// Get returns a thread with its comments.
// GET /threads/:threadId
func (h *ThreadHandler) Get(c *gin.Context) {
	detail, err := h.threadService.DetailThread(c.Request.Context(), domain.Payload{
		"threadId": c.Param("threadId"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.ThreadData{Thread: detail})
}
