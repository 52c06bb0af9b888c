package repository

import (
	"context"
	"time"

	"todoapi/internal/domain"

	"gorm.io/gorm"
)

type TodoListRepository struct {
	db *gorm.DB
}

func NewTodoListRepository(db *gorm.DB) *TodoListRepository {
	return &TodoListRepository{db: db}
}

type todoListModel struct {
	ID         string      `gorm:"column:id;primaryKey"`
	Title      string      `gorm:"column:title"`
	UserID     string      `gorm:"column:user_id;index"`
	IsArchived bool        `gorm:"column:is_archived"`
	CreatedAt  int64       `gorm:"column:created_at"`
	UpdatedAt  int64       `gorm:"column:updated_at"`
	Todos      []todoModel `gorm:"foreignKey:TodoListID;references:ID"`
}

func (todoListModel) TableName() string { return "todo_lists" }

func toDomainTodoList(m todoListModel) *domain.TodoList {
	list := &domain.TodoList{
		ID:         m.ID,
		Title:      m.Title,
		UserID:     m.UserID,
		IsArchived: m.IsArchived,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	for _, t := range m.Todos {
		list.Todos = append(list.Todos, *toDomainTodo(t))
	}
	return list
}

func toTodoListModel(l *domain.TodoList) todoListModel {
	return todoListModel{
		ID:         l.ID,
		Title:      l.Title,
		UserID:     l.UserID,
		IsArchived: l.IsArchived,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func (r *TodoListRepository) Create(ctx context.Context, l *domain.TodoList) error {
	m := toTodoListModel(l)
	return r.db.WithContext(ctx).Create(&m).Error
}

// GetByID returns a non-archived list with its todos preloaded. Archived
// lists behave as absent.
func (r *TodoListRepository) GetByID(ctx context.Context, id string) (*domain.TodoList, error) {
	var m todoListModel
	err := r.db.WithContext(ctx).
		Preload("Todos").
		Where("id = ? AND is_archived = ?", id, false).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainTodoList(m), nil
}

func (r *TodoListRepository) ListByUser(ctx context.Context, userID string) ([]domain.TodoList, error) {
	var models []todoListModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	lists := make([]domain.TodoList, 0, len(models))
	for _, m := range models {
		lists = append(lists, *toDomainTodoList(m))
	}
	return lists, nil
}

func (r *TodoListRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	return r.db.WithContext(ctx).Model(&todoListModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_archived": archived,
			"updated_at":  time.Now().Unix(),
		}).Error
}
