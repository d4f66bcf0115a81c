package model

import "time"

type LoginRequest struct {
	Name           string `json:"name" binding:"required"`
	Password       string `json:"password" binding:"required"`
	OrganizationID string `json:"organizationId" binding:"required"`
}

// LoginResponse is the user record minus the password. Token is additive on top
// of the original contract.
type LoginResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	Token          string    `json:"token,omitempty"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Password       string `json:"password" binding:"required"`
	OrganizationID string `json:"organizationId" binding:"required"`
}

type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateTodoRequest struct {
	Text            string     `json:"text" binding:"required"`
	AssignedTo      string     `json:"assigned_to" binding:"required"`
	CreatedBy       string     `json:"created_by" binding:"required"`
	CreatedByUserID string     `json:"created_by_user_id" binding:"required"`
	OrganizationID  string     `json:"organization_id" binding:"required"`
	DueDate         *time.Time `json:"due_date"`
	AttachedLinks   []string   `json:"attached_links"`
}

// UpdateTodoRequest carries field-level partial updates; nil means untouched.
// Rewriting created_at is the bump-to-top operation.
type UpdateTodoRequest struct {
	ID            string     `json:"id" binding:"required"`
	Text          *string    `json:"text"`
	AssignedTo    *string    `json:"assigned_to"`
	Completed     *bool      `json:"completed"`
	CompletedBy   *string    `json:"completed_by"`
	DueDate       *time.Time `json:"due_date"`
	AttachedLinks *[]string  `json:"attached_links"`
	CreatedAt     *time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	TodoID        string   `json:"todo_id" binding:"required"`
	UserID        string   `json:"user_id" binding:"required"`
	UserName      string   `json:"user_name" binding:"required"`
	Text          string   `json:"text" binding:"required"`
	AttachedLinks []string `json:"attached_links"`
}

type UpsertViewRequest struct {
	UserID string `json:"userId" binding:"required"`
	TodoID string `json:"todoId" binding:"required"`
}

type AIAssistRequest struct {
	TodoID   string `json:"todoId" binding:"required"`
	TodoText string `json:"todoText" binding:"required"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

type AIAssistResponse struct {
	Success  bool     `json:"success"`
	Response string   `json:"response"`
	Comment  *Comment `json:"comment"`
}
