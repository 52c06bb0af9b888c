package repository

import (
	"context"
	"time"

	"todoapi/internal/domain"

	"gorm.io/gorm"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

type todoModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
	TodoListID  string `gorm:"column:todo_list_id;index"`
	CreatedAt   int64  `gorm:"column:created_at"`
	UpdatedAt   int64  `gorm:"column:updated_at"`
}

func (todoModel) TableName() string { return "todos" }

func toDomainTodo(m todoModel) *domain.Todo {
	return &domain.Todo{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		TodoListID:  m.TodoListID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toTodoModel(t *domain.Todo) todoModel {
	return todoModel{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		TodoListID:  t.TodoListID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TodoRepository) BulkCreate(ctx context.Context, todos []domain.Todo) error {
	if len(todos) == 0 {
		return nil
	}

	models := make([]todoModel, 0, len(todos))
	for i := range todos {
		models = append(models, toTodoModel(&todos[i]))
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *TodoRepository) Update(ctx context.Context, id, name, description string) error {
	return r.db.WithContext(ctx).Model(&todoModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        name,
			"description": description,
			"updated_at":  time.Now().Unix(),
		}).Error
}

// Delete is idempotent: removing an absent todo is not an error.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&todoModel{}).Error
}

func (r *TodoRepository) ListByListID(ctx context.Context, todoListID string) ([]domain.Todo, error) {
	var models []todoModel
	err := r.db.WithContext(ctx).
		Where("todo_list_id = ?", todoListID).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(models))
	for _, m := range models {
		todos = append(todos, *toDomainTodo(m))
	}
	return todos, nil
}
