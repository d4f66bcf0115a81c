package handler

import (
	"context"
	"testing"

	"dooo/internal/model"

	"github.com/gin-gonic/gin"
)

func init() { gin.SetMode(gin.TestMode) }

type fakeAuth struct {
	loginFn    func(ctx context.Context, name, password, orgID string) (*model.User, error)
	registerFn func(ctx context.Context, name, password, orgID string) (*model.User, error)
	usersFn    func(ctx context.Context, orgID string) ([]model.User, error)
}

func (f *fakeAuth) Login(ctx context.Context, name, password, orgID string) (*model.User, error) {
	return f.loginFn(ctx, name, password, orgID)
}

func (f *fakeAuth) Register(ctx context.Context, name, password, orgID string) (*model.User, error) {
	return f.registerFn(ctx, name, password, orgID)
}

func (f *fakeAuth) UsersByOrganization(ctx context.Context, orgID string) ([]model.User, error) {
	return f.usersFn(ctx, orgID)
}

type fakeOrgs struct {
	findFn   func(ctx context.Context, name string) (*model.Organization, error)
	createFn func(ctx context.Context, name string) (*model.Organization, error)
}

func (f *fakeOrgs) FindByName(ctx context.Context, name string) (*model.Organization, error) {
	return f.findFn(ctx, name)
}

func (f *fakeOrgs) Create(ctx context.Context, name string) (*model.Organization, error) {
	return f.createFn(ctx, name)
}

type fakeTodos struct {
	getFn    func(ctx context.Context, id string) (*model.Todo, error)
	createFn func(ctx context.Context, req model.CreateTodoRequest) (*model.Todo, error)
	listFn   func(ctx context.Context, userName, orgID string) ([]model.Todo, error)
	updateFn func(ctx context.Context, req model.UpdateTodoRequest) (*model.Todo, error)
	deleteFn func(ctx context.Context, id string) error
	toggleFn func(ctx context.Context, id, actor string) (*model.Todo, error)
	bumpFn   func(ctx context.Context, id string) (*model.Todo, error)
	growFn   func(ctx context.Context, id string, names []string) (*model.Todo, error)
}

func (f *fakeTodos) Get(ctx context.Context, id string) (*model.Todo, error) {
	return f.getFn(ctx, id)
}

func (f *fakeTodos) Create(ctx context.Context, req model.CreateTodoRequest) (*model.Todo, error) {
	return f.createFn(ctx, req)
}

func (f *fakeTodos) ListForUser(ctx context.Context, userName, orgID string) ([]model.Todo, error) {
	return f.listFn(ctx, userName, orgID)
}

func (f *fakeTodos) Update(ctx context.Context, req model.UpdateTodoRequest) (*model.Todo, error) {
	return f.updateFn(ctx, req)
}

func (f *fakeTodos) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeTodos) ToggleCompletion(ctx context.Context, id, actor string) (*model.Todo, error) {
	return f.toggleFn(ctx, id, actor)
}

func (f *fakeTodos) MoveToTop(ctx context.Context, id string) (*model.Todo, error) {
	return f.bumpFn(ctx, id)
}

func (f *fakeTodos) AddAssignees(ctx context.Context, id string, names []string) (*model.Todo, error) {
	return f.growFn(ctx, id, names)
}

type fakeComments struct {
	listFn   func(ctx context.Context, todoID string) ([]model.Comment, error)
	createFn func(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error)
}

func (f *fakeComments) ListByTodo(ctx context.Context, todoID string) ([]model.Comment, error) {
	return f.listFn(ctx, todoID)
}

func (f *fakeComments) Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	return f.createFn(ctx, req)
}

type fakeViews struct {
	listFn   func(ctx context.Context, userID string) ([]model.UserItemView, error)
	upsertFn func(ctx context.Context, userID, todoID string) (*model.UserItemView, error)
}

func (f *fakeViews) ListByUser(ctx context.Context, userID string) ([]model.UserItemView, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeViews) Upsert(ctx context.Context, userID, todoID string) (*model.UserItemView, error) {
	return f.upsertFn(ctx, userID, todoID)
}

type fakeAI struct {
	generateFn func(ctx context.Context, todoText string) (string, bool)
	hasKey     bool
	validKey   bool
}

func (f *fakeAI) Generate(ctx context.Context, todoText string) (string, bool) {
	return f.generateFn(ctx, todoText)
}

func (f *fakeAI) HasKey() bool        { return f.hasKey }
func (f *fakeAI) KeyLooksValid() bool { return f.validKey }

func testDeps(t *testing.T) Deps {
	t.Helper()
	return Deps{
		Auth:       &fakeAuth{},
		Orgs:       &fakeOrgs{},
		Todos:      &fakeTodos{},
		Comments:   &fakeComments{},
		Views:      &fakeViews{},
		AI:         &fakeAI{},
		AuthSecret: []byte("test-secret"),
	}
}
