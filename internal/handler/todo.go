package handler

import (
	"net/http"

	"dooo/internal/model"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct{ todos TodoService }

func NewTodoHandler(todos TodoService) *TodoHandler { return &TodoHandler{todos: todos} }

// List serves both lookups: ?id= for a single todo, ?userName=&organizationId=
// for a user's list.
func (h *TodoHandler) List(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		t, err := h.todos.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err, "Failed to fetch todo")
			return
		}
		c.JSON(http.StatusOK, t)
		return
	}

	userName := c.Query("userName")
	orgID := c.Query("organizationId")
	if userName == "" || orgID == "" {
		badRequest(c, "userName and organizationId are required")
		return
	}

	todos, err := h.todos.ListForUser(c.Request.Context(), userName, orgID)
	if err != nil {
		fail(c, err, "Failed to fetch todos")
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) Create(c *gin.Context) {
	var req model.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields")
		return
	}

	t, err := h.todos.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Failed to create todo")
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TodoHandler) Update(c *gin.Context) {
	var req model.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Todo ID is required")
		return
	}

	t, err := h.todos.Update(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Failed to update todo")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TodoHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		badRequest(c, "Todo ID is required")
		return
	}

	if err := h.todos.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "Failed to delete todo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type toggleRequest struct {
	ID       string `json:"id" binding:"required"`
	UserName string `json:"userName" binding:"required"`
}

// Toggle flips the caller's individual completion mark server-side. A fully
// completed todo answers 409; clients delete it instead.
func (h *TodoHandler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "id and userName are required")
		return
	}

	t, err := h.todos.ToggleCompletion(c.Request.Context(), req.ID, req.UserName)
	if err != nil {
		fail(c, err, "Failed to toggle completion")
		return
	}
	c.JSON(http.StatusOK, t)
}

type bumpRequest struct {
	ID string `json:"id" binding:"required"`
}

// Bump rewrites created_at to now, moving the todo to the top of every
// assignee's list on their next poll.
func (h *TodoHandler) Bump(c *gin.Context) {
	var req bumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Todo ID is required")
		return
	}

	t, err := h.todos.MoveToTop(c.Request.Context(), req.ID)
	if err != nil {
		fail(c, err, "Failed to move todo to top")
		return
	}
	c.JSON(http.StatusOK, t)
}

type addAssigneesRequest struct {
	ID    string   `json:"id" binding:"required"`
	Names []string `json:"names" binding:"required"`
}

// AddAssignees grows the assignee list, used when a comment mentions users
// not yet on the todo.
func (h *TodoHandler) AddAssignees(c *gin.Context) {
	var req addAssigneesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "id and names are required")
		return
	}

	t, err := h.todos.AddAssignees(c.Request.Context(), req.ID, req.Names)
	if err != nil {
		fail(c, err, "Failed to add assignees")
		return
	}
	c.JSON(http.StatusOK, t)
}
