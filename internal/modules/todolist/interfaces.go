package todolist

import (
	"context"

	"todoapi/internal/domain"
)

// TodoListRepositoryInterface — only the methods this module uses
type TodoListRepositoryInterface interface {
	Create(ctx context.Context, l *domain.TodoList) error
	GetByID(ctx context.Context, id string) (*domain.TodoList, error)
	ListByUser(ctx context.Context, userID string) ([]domain.TodoList, error)
	SetArchived(ctx context.Context, id string, archived bool) error
}

// TodoWriter bulk-creates the initial todos of a new list
type TodoWriter interface {
	BulkCreate(ctx context.Context, todos []domain.Todo) error
}
