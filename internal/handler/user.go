package handler

import (
	"net/http"

	"dooo/internal/model"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{ auth AuthService }

func NewUserHandler(auth AuthService) *UserHandler { return &UserHandler{auth: auth} }

func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Name, password, and organization ID are required")
		return
	}

	u, err := h.auth.Register(c.Request.Context(), req.Name, req.Password, req.OrganizationID)
	if err != nil {
		fail(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, u)
}

// List returns the organization roster, passwords excluded by the model tag.
func (h *UserHandler) List(c *gin.Context) {
	orgID := c.Query("organizationId")
	if orgID == "" {
		badRequest(c, "Organization ID is required")
		return
	}

	users, err := h.auth.UsersByOrganization(c.Request.Context(), orgID)
	if err != nil {
		fail(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}
