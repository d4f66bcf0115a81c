package service

import (
	"context"
	"fmt"
	"time"

	"dooo/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ViewService struct{ db *gorm.DB }

func NewViewService(db *gorm.DB) *ViewService { return &ViewService{db: db} }

func (s *ViewService) ListByUser(ctx context.Context, userID string) ([]model.UserItemView, error) {
	var views []model.UserItemView
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&views).Error
	if err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	return views, nil
}

// Upsert stamps the (user, todo) pair with the current time. One row per pair.
func (s *ViewService) Upsert(ctx context.Context, userID, todoID string) (*model.UserItemView, error) {
	v := model.UserItemView{
		UserID:       userID,
		TodoID:       todoID,
		LastViewedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "todo_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_viewed_at"}),
	}).Create(&v).Error
	if err != nil {
		return nil, fmt.Errorf("upsert view: %w", err)
	}
	return &v, nil
}
