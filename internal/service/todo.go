package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"dooo/internal/assign"
	"dooo/internal/mention"
	"dooo/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TodoService struct{ db *gorm.DB }

func NewTodoService(db *gorm.DB) *TodoService { return &TodoService{db: db} }

func (s *TodoService) Get(ctx context.Context, id string) (*model.Todo, error) {
	var t model.Todo
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return &t, nil
}

// Create inserts a todo. The primary (first) assignee must exist in the
// organization; remaining names in the list are taken as-is.
func (s *TodoService) Create(ctx context.Context, req model.CreateTodoRequest) (*model.Todo, error) {
	names := assign.SplitNames(req.AssignedTo)
	if len(names) == 0 {
		return nil, fmt.Errorf("assigned_to is empty")
	}

	var primary model.User
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND organization_id = ?", names[0], req.OrganizationID).
		First(&primary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find primary assignee: %w", err)
	}

	now := time.Now()
	due := now
	if req.DueDate != nil {
		due = *req.DueDate
	}

	t := model.Todo{
		ID:              uuid.NewString(),
		Text:            req.Text,
		AssignedTo:      req.AssignedTo,
		CreatedBy:       req.CreatedBy,
		CreatedByUserID: req.CreatedByUserID,
		OrganizationID:  req.OrganizationID,
		DueDate:         due,
		Completed:       false,
		CompletedBy:     "",
		AttachedLinks:   datatypes.NewJSONSlice(req.AttachedLinks),
		CreatedAt:       now,
	}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return &t, nil
}

// ListForUser returns the organization's todos whose assignee list contains
// the given name (case-insensitive), ordered completed-last then newest first.
func (s *TodoService) ListForUser(ctx context.Context, userName, orgID string) ([]model.Todo, error) {
	var all []model.Todo
	err := s.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&all).Error
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	todos := make([]model.Todo, 0, len(all))
	for _, t := range all {
		if assign.ContainsFold(t.AssignedTo, userName) {
			todos = append(todos, t)
		}
	}
	sort.Slice(todos, func(i, j int) bool { return assign.Less(todos[i], todos[j]) })
	return todos, nil
}

// Update applies a field-level partial update. Last write wins; there is no
// version token.
func (s *TodoService) Update(ctx context.Context, req model.UpdateTodoRequest) (*model.Todo, error) {
	t, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.AssignedTo != nil {
		updates["assigned_to"] = *req.AssignedTo
	}
	if req.Completed != nil {
		updates["completed"] = *req.Completed
	}
	if req.CompletedBy != nil {
		updates["completed_by"] = *req.CompletedBy
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.AttachedLinks != nil {
		updates["attached_links"] = datatypes.NewJSONSlice(*req.AttachedLinks)
	}
	if req.CreatedAt != nil {
		updates["created_at"] = *req.CreatedAt
	}
	if len(updates) == 0 {
		return t, nil
	}

	if err := s.db.WithContext(ctx).Model(t).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return s.Get(ctx, req.ID)
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Todo{})
	if res.Error != nil {
		return fmt.Errorf("delete todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleCompletion flips the actor's completion mark and recomputes the
// aggregate flag. A fully-completed todo cannot be toggled back.
func (s *TodoService) ToggleCompletion(ctx context.Context, id, actor string) (*model.Todo, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	completedBy, completed, err := assign.Toggle(t.AssignedTo, t.CompletedBy, t.Completed, actor)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(t).Updates(map[string]interface{}{
		"completed_by": completedBy,
		"completed":    completed,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("update completion: %w", err)
	}
	return s.Get(ctx, id)
}

// MoveToTop rewrites created_at to now. Nothing else changes; the timestamp
// doubles as the priority sort key.
func (s *TodoService) MoveToTop(ctx context.Context, id string) (*model.Todo, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(t).Update("created_at", time.Now()).Error; err != nil {
		return nil, fmt.Errorf("bump todo: %w", err)
	}
	return s.Get(ctx, id)
}

// AddAssignees grows the assignee list with names not already on it, used when
// a comment @-mentions users outside the current assignment.
func (s *TodoService) AddAssignees(ctx context.Context, id string, names []string) (*model.Todo, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current := assign.SplitNames(t.AssignedTo)
	for _, n := range names {
		// Case-insensitive dedup against the growing list so a request
		// carrying the same name twice adds it once.
		if strings.EqualFold(n, mention.AssistantName) || assign.ContainsFold(assign.JoinNames(current), n) {
			continue
		}
		current = append(current, n)
	}
	joined := assign.JoinNames(current)
	if joined == t.AssignedTo {
		return t, nil
	}

	if err := s.db.WithContext(ctx).Model(t).Update("assigned_to", joined).Error; err != nil {
		return nil, fmt.Errorf("grow assignees: %w", err)
	}
	return s.Get(ctx, id)
}
