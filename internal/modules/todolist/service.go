package todolist

import (
	"context"
	"errors"
	"time"

	"todoapi/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	lists TodoListRepositoryInterface
	todos TodoWriter
}

func NewService(lists TodoListRepositoryInterface, todos TodoWriter) *Service {
	return &Service{lists: lists, todos: todos}
}

// Create stores the list and bulk-creates its initial todos.
func (s *Service) Create(ctx context.Context, userID string, req CreateTodoListRequest) (*domain.TodoList, error) {
	now := time.Now().Unix()
	list := &domain.TodoList{
		ID:        uuid.NewString(),
		Title:     req.Title,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(req.Todos))
	for _, t := range req.Todos {
		todos = append(todos, domain.Todo{
			ID:          uuid.NewString(),
			Name:        t.Name,
			Description: t.Description,
			TodoListID:  list.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if err := s.todos.BulkCreate(ctx, todos); err != nil {
		return nil, err
	}

	return list, nil
}

// GetByID returns nil without error for absent or archived lists; the
// endpoint responds with a null value in that case.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.TodoList, error) {
	list, err := s.lists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.TodoList, error) {
	return s.lists.ListByUser(ctx, userID)
}

// Archive flips the archived flag and returns the updated list. Un-archiving
// works through the same call.
func (s *Service) Archive(ctx context.Context, id string, archived bool) (*domain.TodoList, error) {
	if err := s.lists.SetArchived(ctx, id, archived); err != nil {
		return nil, err
	}

	list, err := s.lists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// the list is archived (or never existed); report what we did
			if archived {
				return nil, nil
			}
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return list, nil
}
