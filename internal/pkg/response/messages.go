package response

// Stable client-facing messages. Handlers map errors onto these; raw driver
// errors never leave the process.
const (
	MsgUserNotFound      = "User not found"
	MsgTokenExpired      = "Token Expired"
	MsgUnauthorized      = "Unauthorized Access"
	MsgMissingToken      = "Token is missing"
	MsgInternalError     = "Internal server error"
	MsgUserExists        = "User already exists"
	MsgIncorrectPassword = "Incorrect Password"

	MsgUserLogout      = "User was successfully logged out"
	MsgTodoListCreated = "Todo list was successfully created"
	MsgTodoListUpdated = "Todo list was successfully updated"
	MsgTodoAdded       = "Todo was successfully added"
	MsgTodoUpdated     = "Todo was successfully updated"
	MsgTodoRemoved     = "Todo was successfully removed"
)
