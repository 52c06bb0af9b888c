package todo

type AddTodoRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	TodoListID  string `json:"todo_list_id" validate:"required"`
}

type UpdateTodoRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}
