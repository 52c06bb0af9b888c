package todo

import (
	"context"
	"time"

	"todoapi/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	todos TodoRepositoryInterface
}

func NewService(todos TodoRepositoryInterface) *Service {
	return &Service{todos: todos}
}

func (s *Service) Create(ctx context.Context, req AddTodoRequest) (*domain.Todo, error) {
	now := time.Now().Unix()
	t := &domain.Todo{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		TodoListID:  req.TodoListID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.todos.BulkCreate(ctx, []domain.Todo{*t}); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateTodoRequest) error {
	return s.todos.Update(ctx, id, req.Name, req.Description)
}

func (s *Service) Remove(ctx context.Context, id string) error {
	return s.todos.Delete(ctx, id)
}

func (s *Service) ListByList(ctx context.Context, todoListID string) ([]domain.Todo, error) {
	return s.todos.ListByListID(ctx, todoListID)
}
