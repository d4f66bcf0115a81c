package handler

import (
	"dooo/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth     AuthService
	Orgs     OrgService
	Todos    TodoService
	Comments CommentService
	Views    ViewService
	AI       AIGenerator

	AuthSecret   []byte
	AuthRequired bool
}

// NewRouter assembles the HTTP surface. Paths mirror the original app; the
// login and registration routes stay open, everything else goes through the
// (optionally enforcing) auth middleware.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authH := NewAuthHandler(d.Auth, d.AuthSecret)
	userH := NewUserHandler(d.Auth)
	orgH := NewOrgHandler(d.Orgs)
	todoH := NewTodoHandler(d.Todos)
	commentH := NewCommentHandler(d.Comments)
	viewH := NewViewHandler(d.Views)
	doooH := NewDoooHandler(d.AI, d.Comments)

	r.POST("/auth/login", authH.Login)
	r.POST("/users", userH.Create)
	r.GET("/organizations", orgH.Find)
	r.POST("/organizations", orgH.Create)

	authed := r.Group("", middleware.Auth(d.AuthSecret, d.AuthRequired))
	authed.GET("/users", userH.List)
	authed.GET("/todos", todoH.List)
	authed.POST("/todos", todoH.Create)
	authed.PUT("/todos", todoH.Update)
	authed.DELETE("/todos", todoH.Delete)
	authed.POST("/todos/toggle", todoH.Toggle)
	authed.POST("/todos/bump", todoH.Bump)
	authed.POST("/todos/assignees", todoH.AddAssignees)
	authed.GET("/comments", commentH.List)
	authed.POST("/comments", commentH.Create)
	authed.GET("/user-views", viewH.List)
	authed.POST("/user-views", viewH.Upsert)
	authed.POST("/ai-assist", doooH.Assist)
	authed.GET("/ai-assist/check", doooH.Check)

	return r
}
