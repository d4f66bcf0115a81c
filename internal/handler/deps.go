package handler

import (
	"context"

	"dooo/internal/model"
)

// Handler dependencies are narrow interfaces so tests can swap in fakes; the
// concrete implementations live in internal/service.

type AuthService interface {
	Login(ctx context.Context, name, password, orgID string) (*model.User, error)
	Register(ctx context.Context, name, password, orgID string) (*model.User, error)
	UsersByOrganization(ctx context.Context, orgID string) ([]model.User, error)
}

type OrgService interface {
	FindByName(ctx context.Context, name string) (*model.Organization, error)
	Create(ctx context.Context, name string) (*model.Organization, error)
}

type TodoService interface {
	Get(ctx context.Context, id string) (*model.Todo, error)
	Create(ctx context.Context, req model.CreateTodoRequest) (*model.Todo, error)
	ListForUser(ctx context.Context, userName, orgID string) ([]model.Todo, error)
	Update(ctx context.Context, req model.UpdateTodoRequest) (*model.Todo, error)
	Delete(ctx context.Context, id string) error
	ToggleCompletion(ctx context.Context, id, actor string) (*model.Todo, error)
	MoveToTop(ctx context.Context, id string) (*model.Todo, error)
	AddAssignees(ctx context.Context, id string, names []string) (*model.Todo, error)
}

type CommentService interface {
	ListByTodo(ctx context.Context, todoID string) ([]model.Comment, error)
	Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error)
}

type ViewService interface {
	ListByUser(ctx context.Context, userID string) ([]model.UserItemView, error)
	Upsert(ctx context.Context, userID, todoID string) (*model.UserItemView, error)
}

type AIGenerator interface {
	Generate(ctx context.Context, todoText string) (response string, usedMock bool)
	HasKey() bool
	KeyLooksValid() bool
}
