package todolist

import (
	"errors"
	"net/http"

	"todoapi/internal/pkg/response"
	"todoapi/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/todo-list")
	{
		group.POST("", h.Create)
		group.GET("", h.ListMine)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Archive)
	}
}

// Create adds a new todo list with its initial todos.
// @Summary		Add todo list
// @Description	Creates a todo list for the authenticated user and bulk-creates its todos.
// @Tags		TodoList
// @Security	BearerAuth
// @Param		request	body	CreateTodoListRequest	true	"Title and at least one todo"
// @Success		200	{object}	map[string]interface{} "The created list"
// @Failure		422	{object}	map[string]interface{} "Request body failed validation"
// @Failure		401	{object}	map[string]interface{} "Missing or invalid access token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/todo-list [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failed(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FailedWithDetails(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	list, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, list, response.MsgTodoListCreated)
}

// ListMine returns all of the user's todo lists.
// @Summary		Returns all users todo lists
// @Description	Lists every todo list owned by the authenticated user, archived ones included.
// @Tags		TodoList
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{} "The user's lists"
// @Failure		401	{object}	map[string]interface{} "Missing or invalid access token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/todo-list [GET]
func (h *Handler) ListMine(c *gin.Context) {
	lists, err := h.service.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		return
	}

	response.Success(c, http.StatusOK, lists)
}

// Get returns a todo list with its todos.
// @Summary		Returns todo list details
// @Description	Fetches a non-archived todo list with todos preloaded. Archived or unknown ids yield a null value.
// @Tags		TodoList
// @Security	BearerAuth
// @Param		id	path	string	true	"The ID of the todo list"
// @Success		200	{object}	map[string]interface{} "The list, or null"
// @Failure		401	{object}	map[string]interface{} "Missing or invalid access token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/todo-list/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	list, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		return
	}

	response.Success(c, http.StatusOK, list)
}

// Archive toggles the archived flag of a todo list.
// @Summary		Archive todo list
// @Description	Sets or clears is_archived. Archived lists drop out of detail lookups.
// @Tags		TodoList
// @Security	BearerAuth
// @Param		id	path	string	true	"The ID of the todo list"
// @Param		request	body	ArchiveTodoListRequest	true	"is_archived flag"
// @Success		200	{object}	map[string]interface{} "The updated list"
// @Failure		422	{object}	map[string]interface{} "Request body failed validation"
// @Failure		404	{object}	map[string]interface{} "No such list"
// @Failure		401	{object}	map[string]interface{} "Missing or invalid access token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/todo-list/{id} [PUT]
func (h *Handler) Archive(c *gin.Context) {
	var req ArchiveTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failed(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FailedWithDetails(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	list, err := h.service.Archive(c.Request.Context(), c.Param("id"), *req.IsArchived)
	if err != nil {
		if errors.Is(err, ErrListNotFound) {
			response.Failed(c, http.StatusNotFound, "Todo list not found")
			return
		}
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, list, response.MsgTodoListUpdated)
}
