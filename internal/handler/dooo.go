package handler

import (
	"net/http"

	"dooo/internal/logger"
	"dooo/internal/mention"
	"dooo/internal/model"

	"github.com/gin-gonic/gin"
)

// DoooHandler runs the AI assistant: generate a response for a todo and post
// it back as a comment under the assistant's name.
type DoooHandler struct {
	ai       AIGenerator
	comments CommentService
}

func NewDoooHandler(ai AIGenerator, comments CommentService) *DoooHandler {
	return &DoooHandler{ai: ai, comments: comments}
}

func (h *DoooHandler) Assist(c *gin.Context) {
	var req model.AIAssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields")
		return
	}

	response, usedMock := h.ai.Generate(c.Request.Context(), req.TodoText)
	logger.Info("dooo.assist", "todo_id", req.TodoID, "mock", usedMock)

	userID := req.UserID
	if userID == "" {
		userID = mention.AssistantID
	}

	comment, err := h.comments.Create(c.Request.Context(), model.CreateCommentRequest{
		TodoID:        req.TodoID,
		UserID:        userID,
		UserName:      mention.AssistantName,
		Text:          response,
		AttachedLinks: []string{},
	})
	if err != nil {
		fail(c, err, "Failed to process request")
		return
	}

	c.JSON(http.StatusOK, model.AIAssistResponse{
		Success:  true,
		Response: response,
		Comment:  comment,
	})
}

// Check reports whether a provider key is configured and looks plausible.
// Diagnostic only; never returns the key itself.
func (h *DoooHandler) Check(c *gin.Context) {
	if !h.ai.HasKey() {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": "OPENAI_API_KEY not found in environment variables",
		})
		return
	}
	msg := "API key found and format looks correct."
	if !h.ai.KeyLooksValid() {
		msg = "API key found but format looks incorrect (should start with sk-)"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "found",
		"isValidFormat": h.ai.KeyLooksValid(),
		"message":       msg,
	})
}
