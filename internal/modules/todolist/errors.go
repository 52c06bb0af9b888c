package todolist

import "errors"

var ErrListNotFound = errors.New("todo list not found")
