package handler

import (
	"net/http"

	"dooo/internal/model"

	"github.com/gin-gonic/gin"
)

type OrgHandler struct{ orgs OrgService }

func NewOrgHandler(orgs OrgService) *OrgHandler { return &OrgHandler{orgs: orgs} }

func (h *OrgHandler) Find(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		badRequest(c, "Organization name is required")
		return
	}

	org, err := h.orgs.FindByName(c.Request.Context(), name)
	if err != nil {
		fail(c, err, "Failed to fetch organization")
		return
	}
	c.JSON(http.StatusOK, org)
}

func (h *OrgHandler) Create(c *gin.Context) {
	var req model.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields")
		return
	}

	org, err := h.orgs.Create(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err, "Failed to create organization")
		return
	}
	c.JSON(http.StatusCreated, org)
}
