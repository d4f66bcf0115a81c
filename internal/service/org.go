package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dooo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationService struct{ db *gorm.DB }

func NewOrganizationService(db *gorm.DB) *OrganizationService {
	return &OrganizationService{db: db}
}

// FindByName looks a tenant up by its sole human key, case-insensitively.
func (s *OrganizationService) FindByName(ctx context.Context, name string) (*model.Organization, error) {
	var org model.Organization
	err := s.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find organization: %w", err)
	}
	return &org, nil
}

func (s *OrganizationService) Create(ctx context.Context, name string) (*model.Organization, error) {
	if _, err := s.FindByName(ctx, name); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	org := model.Organization{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&org).Error; err != nil {
		return nil, fmt.Errorf("insert organization: %w", err)
	}
	return &org, nil
}
