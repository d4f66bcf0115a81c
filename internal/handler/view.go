package handler

import (
	"net/http"

	"dooo/internal/model"

	"github.com/gin-gonic/gin"
)

type ViewHandler struct{ views ViewService }

func NewViewHandler(views ViewService) *ViewHandler { return &ViewHandler{views: views} }

func (h *ViewHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		badRequest(c, "User ID is required")
		return
	}

	views, err := h.views.ListByUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "Failed to fetch user views")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ViewHandler) Upsert(c *gin.Context) {
	var req model.UpsertViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields")
		return
	}

	v, err := h.views.Upsert(c.Request.Context(), req.UserID, req.TodoID)
	if err != nil {
		fail(c, err, "Failed to update user view")
		return
	}
	c.JSON(http.StatusOK, v)
}
