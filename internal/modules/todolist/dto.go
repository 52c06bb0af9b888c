package todolist

type TodoItem struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CreateTodoListRequest struct {
	Title string     `json:"title" validate:"required"`
	Todos []TodoItem `json:"todos" validate:"required,min=1,dive"`
}

type ArchiveTodoListRequest struct {
	IsArchived *bool `json:"is_archived" validate:"required"`
}
