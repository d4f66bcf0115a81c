package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dooo/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLen matches the original 4-character PIN.
const MinPasswordLen = 4

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func (s *AuthService) findByNameAndOrg(ctx context.Context, name, orgID string) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND organization_id = ?", name, orgID).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (s *AuthService) Login(ctx context.Context, name, password, orgID string) (*model.User, error) {
	u, err := s.findByNameAndOrg(ctx, name, orgID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a user inside an organization. Names are unique per
// organization, case-insensitively.
func (s *AuthService) Register(ctx context.Context, name, password, orgID string) (*model.User, error) {
	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLen)
	}

	if _, err := s.findByNameAndOrg(ctx, name, orgID); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := model.User{
		ID:             uuid.NewString(),
		Name:           name,
		Password:       string(hash),
		OrganizationID: orgID,
		CreatedAt:      time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

// UsersByOrganization returns the roster used for @-mention autocomplete.
func (s *AuthService) UsersByOrganization(ctx context.Context, orgID string) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
