package handlers

import (
	"net/http"
	"strings"

	"TASKHIVE_BACK-END/internal/dto"
	"TASKHIVE_BACK-END/internal/models"
	"TASKHIVE_BACK-END/internal/repositories/todos"
	"TASKHIVE_BACK-END/internal/utils"
)

// TodosHandler manages todo-related endpoints
type TodosHandler struct {
	todos todos.Repository
}

// NewTodosHandler creates a new TodosHandler
func NewTodosHandler(repo todos.Repository) *TodosHandler {
	return &TodosHandler{todos: repo}
}

// Todos dispatches by HTTP method for /todos
func (h *TodosHandler) Todos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateTodo(w, r)
	case http.MethodGet:
		h.ListTodos(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// TodoDetail dispatches by HTTP method for /todos/{id}
func (h *TodosHandler) TodoDetail(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetTodo(w, r)
	case http.MethodPatch:
		h.UpdateTodo(w, r)
	case http.MethodDelete:
		h.DeleteTodo(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// todoID extracts the raw id path segment. It is not parsed here; the
// repository folds malformed ids into the uniform not-found result.
func todoID(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Path, "/todos/")
}

// CreateTodo handles POST /todos
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param x-auth header string true "Session token"
// @Param payload body dto.CreateTodoRequest true "Todo payload"
// @Success 200 {object} dto.TodoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} map[string]any "Unauthorized (empty body)"
// @Router /todos [post]
func (h *TodosHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteUnauthorized(w)
		return
	}

	var req dto.CreateTodoRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	todo, err := h.todos.Create(r.Context(), ownerID, req.Text)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewTodoResponse(todo))
}

// ListTodos handles GET /todos
// @Summary List the caller's todos
// @Tags todos
// @Produce json
// @Param x-auth header string true "Session token"
// @Success 200 {object} dto.TodoListResponse
// @Failure 401 {object} map[string]any "Unauthorized (empty body)"
// @Router /todos [get]
func (h *TodosHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteUnauthorized(w)
		return
	}

	list, err := h.todos.List(r.Context(), ownerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := dto.TodoListResponse{Todos: make([]dto.TodoResponse, 0, len(list))}
	for i := range list {
		resp.Todos = append(resp.Todos, dto.NewTodoResponse(&list[i]))
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// GetTodo handles GET /todos/{id}
// @Summary Get one todo
// @Description Returns 404 for missing, malformed, and foreign-owned ids alike
// @Tags todos
// @Produce json
// @Param x-auth header string true "Session token"
// @Param id path string true "Todo id"
// @Success 200 {object} dto.TodoEnvelope
// @Failure 401 {object} map[string]any "Unauthorized (empty body)"
// @Failure 404 {object} dto.ErrorResponse
// @Router /todos/{id} [get]
func (h *TodosHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteUnauthorized(w)
		return
	}

	todo, err := h.todos.Get(r.Context(), ownerID, todoID(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TodoEnvelope{Todo: dto.NewTodoResponse(todo)})
}

// UpdateTodo handles PATCH /todos/{id}
// @Summary Update a todo
// @Description Completing a todo stamps completedAt; un-completing clears it
// @Tags todos
// @Accept json
// @Produce json
// @Param x-auth header string true "Session token"
// @Param id path string true "Todo id"
// @Param payload body dto.UpdateTodoRequest true "Fields to change"
// @Success 200 {object} dto.TodoEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} map[string]any "Unauthorized (empty body)"
// @Failure 404 {object} dto.ErrorResponse
// @Router /todos/{id} [patch]
func (h *TodosHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteUnauthorized(w)
		return
	}

	var req dto.UpdateTodoRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	todo, err := h.todos.Update(r.Context(), ownerID, todoID(r), models.TodoPatch{
		Text:        req.Text,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TodoEnvelope{Todo: dto.NewTodoResponse(todo)})
}

// DeleteTodo handles DELETE /todos/{id}
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param x-auth header string true "Session token"
// @Param id path string true "Todo id"
// @Success 200 {object} dto.TodoEnvelope "Snapshot of the deleted todo"
// @Failure 401 {object} map[string]any "Unauthorized (empty body)"
// @Failure 404 {object} dto.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodosHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteUnauthorized(w)
		return
	}

	todo, err := h.todos.Delete(r.Context(), ownerID, todoID(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TodoEnvelope{Todo: dto.NewTodoResponse(todo)})
}
