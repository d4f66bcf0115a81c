package handler

import (
	"net/http"

	"dooo/internal/model"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{ comments CommentService }

func NewCommentHandler(comments CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) List(c *gin.Context) {
	todoID := c.Query("todoId")
	if todoID == "" {
		badRequest(c, "todoId is required")
		return
	}

	comments, err := h.comments.ListByTodo(c.Request.Context(), todoID)
	if err != nil {
		fail(c, err, "Failed to fetch comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "todo_id, user_id, user_name, and text are required")
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}
