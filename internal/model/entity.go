package model

import (
	"time"

	"gorm.io/datatypes"
)

type Organization struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:191;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `gorm:"size:191;uniqueIndex:uk_org_name" json:"name"`
	Password       string    `json:"-"`
	OrganizationID string    `gorm:"size:36;uniqueIndex:uk_org_name;index" json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Todo keeps assignees and completers as comma-space-joined name lists.
// completed is an aggregate derived from the two lists, and created_at doubles
// as the priority sort key: bump-to-top rewrites it.
type Todo struct {
	ID              string                      `gorm:"primaryKey;size:36" json:"id"`
	Text            string                      `gorm:"type:text" json:"text"`
	AssignedTo      string                      `json:"assigned_to"`
	CreatedBy       string                      `json:"created_by"`
	CreatedByUserID string                      `gorm:"size:36" json:"created_by_user_id"`
	OrganizationID  string                      `gorm:"size:36;index" json:"organization_id"`
	DueDate         time.Time                   `json:"due_date"`
	Completed       bool                        `json:"completed"`
	CompletedBy     string                      `json:"completed_by"`
	AttachedLinks   datatypes.JSONSlice[string] `json:"attached_links"`
	CreatedAt       time.Time                   `json:"created_at"`
}

// Comment is append-only; rows are never updated or deleted.
type Comment struct {
	ID            string                      `gorm:"primaryKey;size:36" json:"id"`
	TodoID        string                      `gorm:"size:36;index" json:"todo_id"`
	UserID        string                      `gorm:"size:36" json:"user_id"`
	UserName      string                      `json:"user_name"`
	Text          string                      `gorm:"type:text" json:"text"`
	AttachedLinks datatypes.JSONSlice[string] `json:"attached_links"`
	CreatedAt     time.Time                   `json:"created_at"`
}

// UserItemView records when a user last opened a todo's detail view, one row
// per (user, todo) pair.
type UserItemView struct {
	UserID       string    `gorm:"primaryKey;size:36" json:"user_id"`
	TodoID       string    `gorm:"primaryKey;size:36" json:"todo_id"`
	LastViewedAt time.Time `json:"last_viewed_at"`
}

func (Organization) TableName() string { return "organizations" }
func (User) TableName() string         { return "users" }
func (Todo) TableName() string         { return "todos" }
func (Comment) TableName() string      { return "comments" }
func (UserItemView) TableName() string { return "user_item_views" }
