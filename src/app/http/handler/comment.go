package handler

import (
	"github.com/gin-gonic/gin"

	"forumapi/src/app/http/dto"
	"forumapi/src/app/http/response"
	"forumapi/src/app/middleware"
	"forumapi/src/core/domain"
	"forumapi/src/core/usecase"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService *usecase.CommentService
}

func NewCommentHandler(commentService *usecase.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Post comments on a thread as the authenticated user.
// POST /threads/:threadId/comments
func (h *CommentHandler) Post(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	payload["userId"] = middleware.GetUserID(c)
	payload["threadId"] = c.Param("threadId")

	added, err := h.commentService.AddComment(c.Request.Context(), payload)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.AddedCommentData{AddedComment: added})
}

// Delete soft-deletes a comment owned by the authenticated user.
// DELETE /threads/:threadId/comments/:commentId
func (h *CommentHandler) Delete(c *gin.Context) {
	err := h.commentService.DeleteComment(c.Request.Context(), domain.Payload{
		"userId":    middleware.GetUserID(c),
		"threadId":  c.Param("threadId"),
		"commentId": c.Param("commentId"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil)
}
