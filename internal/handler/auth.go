package handler

import (
	"net/http"

	"dooo/internal/logger"
	"dooo/internal/middleware"
	"dooo/internal/model"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   AuthService
	secret []byte
}

func NewAuthHandler(auth AuthService, secret []byte) *AuthHandler {
	return &AuthHandler{auth: auth, secret: secret}
}

// Login returns the user record sans password plus a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Name, password, and organization ID are required")
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Name, req.Password, req.OrganizationID)
	if err != nil {
		logger.Warn("login.failed", "name", req.Name, "org", req.OrganizationID)
		fail(c, err, "Failed to authenticate")
		return
	}

	token, _ := middleware.IssueToken(h.secret, u)
	logger.Info("login.ok", "uid", u.ID, "name", u.Name)

	c.JSON(http.StatusOK, model.LoginResponse{
		ID:             u.ID,
		Name:           u.Name,
		OrganizationID: u.OrganizationID,
		CreatedAt:      u.CreatedAt,
		Token:          token,
	})
}
