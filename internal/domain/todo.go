package domain

type TodoList struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	UserID     string `json:"user_id"`
	IsArchived bool   `json:"is_archived"`
	Todos      []Todo `json:"todos,omitempty"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

type Todo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TodoListID  string `json:"todo_list_id"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}
