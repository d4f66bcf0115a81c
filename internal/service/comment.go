package service

import (
	"context"
	"fmt"
	"time"

	"dooo/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CommentService struct{ db *gorm.DB }

func NewCommentService(db *gorm.DB) *CommentService { return &CommentService{db: db} }

func (s *CommentService) ListByTodo(ctx context.Context, todoID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).
		Where("todo_id = ?", todoID).
		Order("created_at").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Create appends a comment. Comments are never updated or deleted.
func (s *CommentService) Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	c := model.Comment{
		ID:            uuid.NewString(),
		TodoID:        req.TodoID,
		UserID:        req.UserID,
		UserName:      req.UserName,
		Text:          req.Text,
		AttachedLinks: datatypes.NewJSONSlice(req.AttachedLinks),
		CreatedAt:     time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &c, nil
}
