package todo

import (
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
	group := protected.Group("/todo")
	{
		group.POST("", h.Create)
		group.GET("/:id", h.ListByList)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Remove)
	}
}

// Create adds a todo to an existing list.
// @Summary		Add todo
// @Description	Creates a todo inside the given todo list.
// @Tags		Todo
// @Security	BearerAuth
// @Param		request	body	AddTodoRequest	true	"name, description and todo_list_id"
// @Success		200	{object}	map[string]interface{} "The created todo"
// @Failure		422	{object}	map[string]interface{} "Request body failed validation"
// @Failure		401	{object}	map[string]interface{} "Missing or invalid access token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/todo [POST]
func (h *Handler) Create(c *gin.Context) {
	var req AddTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failed(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FailedWithDetails(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, t, response.MsgTodoAdded)
}

// ListByList returns the todos of a list.
// @Summary		Get todos
// @Description	Lists every todo belonging to the given todo list.
// @Tags		Todo
// @Security	BearerAuth
// @Param		id	path	string	true	"The ID of the todo list"
// @Success		200	{object}	map[string]interface{} "The list's todos"
// @Failure		401	{object}	map[string]interface{} "Missing or invalid access token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/todo/{id} [GET]
func (h *Handler) ListByList(c *gin.Context) {
	todos, err := h.service.ListByList(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		return
	}

	response.Success(c, http.StatusOK, todos)
}

// Update edits a todo's name and description.
// @Summary		Update todo
// @Description	Updates the todo and returns its id.
// @Tags		Todo
// @Security	BearerAuth
// @Param		id	path	string	true	"The ID of the todo"
// @Param		request	body	UpdateTodoRequest	true	"name and description"
// @Success		200	{object}	map[string]interface{} "The todo id"
// @Failure		422	{object}	map[string]interface{} "Request body failed validation"
// @Failure		401	{object}	map[string]interface{} "Missing or invalid access token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/todo/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failed(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FailedWithDetails(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	id := c.Param("id")
	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, id, response.MsgTodoUpdated)
}

// Remove deletes a todo.
// @Summary		Remove todo
// @Description	Deletes the todo and returns its id. Deleting an absent todo succeeds.
// @Tags		Todo
// @Security	BearerAuth
// @Param		id	path	string	true	"The ID of the todo"
// @Success		200	{object}	map[string]interface{} "The todo id"
// @Failure		401	{object}	map[string]interface{} "Missing or invalid access token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/todo/{id} [DELETE]
func (h *Handler) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, id, response.MsgTodoRemoved)
}
