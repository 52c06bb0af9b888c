package todo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todoapi/internal/domain"
)

type mockTodoRepo struct {
	mock.Mock
}

func (m *mockTodoRepo) BulkCreate(ctx context.Context, todos []domain.Todo) error {
	args := m.Called(ctx, todos)
	return args.Error(0)
}

func (m *mockTodoRepo) Update(ctx context.Context, id, name, description string) error {
	args := m.Called(ctx, id, name, description)
	return args.Error(0)
}

func (m *mockTodoRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTodoRepo) ListByListID(ctx context.Context, todoListID string) ([]domain.Todo, error) {
	args := m.Called(ctx, todoListID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Todo), args.Error(1)
}

func TestService_Create(t *testing.T) {
	repo := new(mockTodoRepo)
	repo.On("BulkCreate", mock.Anything, mock.MatchedBy(func(todos []domain.Todo) bool {
		return len(todos) == 1 && todos[0].Name == "test todo" && todos[0].TodoListID == "list-1"
	})).Return(nil)

	service := NewService(repo)

	created, err := service.Create(context.Background(), AddTodoRequest{
		Name:        "test todo",
		Description: "test todo description",
		TodoListID:  "list-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "test todo description", created.Description)
	repo.AssertExpectations(t)
}

func TestService_Update(t *testing.T) {
	repo := new(mockTodoRepo)
	repo.On("Update", mock.Anything, "todo-1", "new name", "new description").Return(nil)

	service := NewService(repo)

	err := service.Update(context.Background(), "todo-1", UpdateTodoRequest{
		Name:        "new name",
		Description: "new description",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Remove(t *testing.T) {
	repo := new(mockTodoRepo)
	repo.On("Delete", mock.Anything, "todo-1").Return(nil)

	service := NewService(repo)

	assert.NoError(t, service.Remove(context.Background(), "todo-1"))
	repo.AssertExpectations(t)
}

func TestService_ListByList(t *testing.T) {
	repo := new(mockTodoRepo)
	repo.On("ListByListID", mock.Anything, "list-1").Return([]domain.Todo{
		{ID: "todo-1", Name: "a"},
		{ID: "todo-2", Name: "b"},
	}, nil)

	service := NewService(repo)

	todos, err := service.ListByList(context.Background(), "list-1")
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
