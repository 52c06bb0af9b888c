package todo

import (
	"context"

	"todoapi/internal/domain"
)

// TodoRepositoryInterface — only the methods this module uses
type TodoRepositoryInterface interface {
	BulkCreate(ctx context.Context, todos []domain.Todo) error
	Update(ctx context.Context, id, name, description string) error
	Delete(ctx context.Context, id string) error
	ListByListID(ctx context.Context, todoListID string) ([]domain.Todo, error)
}
