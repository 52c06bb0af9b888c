package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/internal/database"
	"todoapi/internal/middleware"
	"todoapi/internal/modules/todo"
	"todoapi/internal/modules/todolist"
	"todoapi/internal/modules/user"
	jwtsvc "todoapi/internal/pkg/jwt"
	"todoapi/internal/repository"
	"todoapi/internal/session"
)

type TestResponse struct {
	Value   any    `json:"value"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status,omitempty"`
	Details any    `json:"details,omitempty"`
}

// memSessionStore replaces the redis adapter; same contract, no server.
type memSessionStore struct {
	mu      sync.Mutex
	entries map[string]string
}

func (s *memSessionStore) Put(ctx context.Context, userID, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = token
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.entries[userID]
	if !ok {
		return "", session.ErrNotFound
	}
	return token, nil
}

func (s *memSessionStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

func setupRouter(t *testing.T) *gin.Engine {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, repository.AutoMigrate(db))

	userRepo := repository.NewUserRepository(db)
	todoListRepo := repository.NewTodoListRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	codec := jwtsvc.NewCodec("test_access_secret_32_chars_min!", "test_refresh_secret_32_chars_min", 15*time.Minute, 7*24*time.Hour)
	sessions := &memSessionStore{entries: make(map[string]string)}

	userService := user.NewService(userRepo, sessions, codec, "test-password-secret")
	userHandler := user.NewHandler(userService)

	todoListService := todolist.NewService(todoListRepo, todoRepo)
	todoListHandler := todolist.NewHandler(todoListService)

	todoService := todo.NewService(todoRepo)
	todoHandler := todo.NewHandler(todoService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	root := r.Group("")
	userHandler.RegisterPublicRoutes(root)

	protected := root.Group("")
	protected.Use(middleware.Authorize(codec))
	{
		userHandler.RegisterProtectedRoutes(protected)
		todoListHandler.RegisterRoutes(protected)
		todoHandler.RegisterRoutes(protected)
	}

	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, bearer string) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed TestResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed), "body: %s", w.Body.String())
	}
	return w, parsed
}

func registerBody(email string) map[string]any {
	return map[string]any{
		"email":     email,
		"name":      "A",
		"password":  "p",
		"age":       20,
		"telephone": "1",
	}
}

func tokensFrom(t *testing.T, resp TestResponse) (access, refresh string) {
	t.Helper()
	value, ok := resp.Value.(map[string]any)
	require.True(t, ok, "value: %+v", resp.Value)
	backend, ok := value["backendTokens"].(map[string]any)
	require.True(t, ok)
	access, _ = backend["token"].(string)
	refresh, _ = backend["refreshToken"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	return access, refresh
}

func TestRegisterLoginMe(t *testing.T) {
	router := setupRouter(t)

	// register
	w, resp := doJSON(t, router, "POST", "/user", registerBody("a@b.com"), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	value := resp.Value.(map[string]any)
	userObj := value["user"].(map[string]any)
	assert.NotEmpty(t, userObj["id"])
	assert.Equal(t, "a@b.com", userObj["email"])
	backend := value["backendTokens"].(map[string]any)
	assert.NotEmpty(t, backend["token"])
	assert.NotEmpty(t, backend["refreshToken"])
	assert.Greater(t, backend["expiresIn"].(float64), float64(time.Now().UnixMilli()))

	// duplicate registration
	w, resp = doJSON(t, router, "POST", "/user", registerBody("a@b.com"), "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User already exists", resp.Message)

	// login
	w, resp = doJSON(t, router, "POST", "/user/login", map[string]any{
		"email": "a@b.com", "password": "p",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	access, _ := tokensFrom(t, resp)

	// me
	w, resp = doJSON(t, router, "GET", "/user/me", nil, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	me := resp.Value.(map[string]any)
	assert.Equal(t, "A", me["name"])
	assert.Equal(t, "a@b.com", me["email"])
	assert.NotEmpty(t, me["id"])
}

func TestLoginFailures(t *testing.T) {
	router := setupRouter(t)

	w, resp := doJSON(t, router, "POST", "/user", registerBody("a@b.com"), "")
	require.Equal(t, http.StatusOK, w.Code)

	// wrong password on an existing account is not a not-found
	w, resp = doJSON(t, router, "POST", "/user/login", map[string]any{
		"email": "a@b.com", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Incorrect Password", resp.Message)

	w, resp = doJSON(t, router, "POST", "/user/login", map[string]any{
		"email": "nobody@b.com", "password": "p",
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", resp.Message)

	// malformed body
	w, _ = doJSON(t, router, "POST", "/user/login", map[string]any{
		"email": "not-an-email",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRefreshRotationAndLogout(t *testing.T) {
	router := setupRouter(t)

	w, resp := doJSON(t, router, "POST", "/user", registerBody("a@b.com"), "")
	require.Equal(t, http.StatusOK, w.Code)
	access, refresh := tokensFrom(t, resp)

	// rotate
	w, resp = doJSON(t, router, "POST", "/user/refresh-token", map[string]any{
		"refresh_token": refresh,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	_, rotated := tokensFrom(t, resp)
	assert.NotEqual(t, refresh, rotated)

	// the old refresh token is dead
	w, resp = doJSON(t, router, "POST", "/user/refresh-token", map[string]any{
		"refresh_token": refresh,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized Access", resp.Message)

	// missing refresh_token
	w, resp = doJSON(t, router, "POST", "/user/refresh-token", map[string]any{}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Token is missing", resp.Message)

	// logout with the rotated token
	w, resp = doJSON(t, router, "POST", "/user/logout", map[string]any{
		"refresh_token": rotated,
	}, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "User was successfully logged out", resp.Message)
	assert.NotEmpty(t, resp.Value)

	// refresh right after logout fails
	w, resp = doJSON(t, router, "POST", "/user/refresh-token", map[string]any{
		"refresh_token": rotated,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized Access", resp.Message)
}

func TestTodoListLifecycle(t *testing.T) {
	router := setupRouter(t)

	w, resp := doJSON(t, router, "POST", "/user", registerBody("a@b.com"), "")
	require.Equal(t, http.StatusOK, w.Code)
	access, _ := tokensFrom(t, resp)

	// unauthenticated access is rejected
	w, _ = doJSON(t, router, "GET", "/todo-list", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// create a list with two todos
	w, resp = doJSON(t, router, "POST", "/todo-list", map[string]any{
		"title": "test todo list",
		"todos": []map[string]any{
			{"name": "todo 1", "description": "todo 1 description"},
			{"name": "todo 2", "description": "todo 2 description"},
		},
	}, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Todo list was successfully created", resp.Message)
	list := resp.Value.(map[string]any)
	listID := list["id"].(string)
	require.NotEmpty(t, listID)

	// list detail includes the todos
	w, resp = doJSON(t, router, "GET", "/todo-list/"+listID, nil, access)
	require.Equal(t, http.StatusOK, w.Code)
	detail := resp.Value.(map[string]any)
	todos := detail["todos"].([]any)
	assert.Len(t, todos, 2)

	// all of the user's lists
	w, resp = doJSON(t, router, "GET", "/todo-list", nil, access)
	require.Equal(t, http.StatusOK, w.Code)
	lists := resp.Value.([]any)
	assert.Len(t, lists, 1)

	// empty todos array fails validation
	w, _ = doJSON(t, router, "POST", "/todo-list", map[string]any{
		"title": "empty",
		"todos": []map[string]any{},
	}, access)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// archive: detail lookups now yield null
	w, resp = doJSON(t, router, "PUT", "/todo-list/"+listID, map[string]any{
		"is_archived": true,
	}, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, resp = doJSON(t, router, "GET", "/todo-list/"+listID, nil, access)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, resp.Value)

	// unarchive brings it back
	w, resp = doJSON(t, router, "PUT", "/todo-list/"+listID, map[string]any{
		"is_archived": false,
	}, access)
	require.Equal(t, http.StatusOK, w.Code)
	restored := resp.Value.(map[string]any)
	assert.Equal(t, listID, restored["id"])
}

func TestTodoLifecycle(t *testing.T) {
	router := setupRouter(t)

	w, resp := doJSON(t, router, "POST", "/user", registerBody("a@b.com"), "")
	require.Equal(t, http.StatusOK, w.Code)
	access, _ := tokensFrom(t, resp)

	w, resp = doJSON(t, router, "POST", "/todo-list", map[string]any{
		"title": "list",
		"todos": []map[string]any{{"name": "seed", "description": "seed"}},
	}, access)
	require.Equal(t, http.StatusOK, w.Code)
	listID := resp.Value.(map[string]any)["id"].(string)

	// add a todo
	w, resp = doJSON(t, router, "POST", "/todo", map[string]any{
		"name":         "test todo",
		"description":  "test todo description",
		"todo_list_id": listID,
	}, access)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Todo was successfully added", resp.Message)
	todoID := resp.Value.(map[string]any)["id"].(string)

	// both todos present
	w, resp = doJSON(t, router, "GET", "/todo/"+listID, nil, access)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Value.([]any), 2)

	// update
	w, resp = doJSON(t, router, "PUT", "/todo/"+todoID, map[string]any{
		"name":        "renamed",
		"description": "still a description",
	}, access)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Todo was successfully updated", resp.Message)
	assert.Equal(t, todoID, resp.Value)

	// remove, twice: deletion is idempotent
	for i := 0; i < 2; i++ {
		w, resp = doJSON(t, router, "DELETE", fmt.Sprintf("/todo/%s", todoID), nil, access)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Todo was successfully removed", resp.Message)
	}

	w, resp = doJSON(t, router, "GET", "/todo/"+listID, nil, access)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Value.([]any), 1)
}
