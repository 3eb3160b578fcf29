package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"TASKHIVE_BACK-END/internal/common"
	"TASKHIVE_BACK-END/internal/dto"
	"TASKHIVE_BACK-END/internal/models"
	"TASKHIVE_BACK-END/internal/utils"
	"TASKHIVE_BACK-END/internal/validation"
)

// fakeTodosRepo implements todos.Repository in memory with the same
// ownership-scoping and completion rules as the Postgres repository.
type fakeTodosRepo struct {
	byID map[uuid.UUID]*models.Todo
	err  error
}

func newFakeTodosRepo() *fakeTodosRepo {
	return &fakeTodosRepo{byID: map[uuid.UUID]*models.Todo{}}
}

func (f *fakeTodosRepo) Create(ctx context.Context, ownerID uuid.UUID, text string) (*models.Todo, error) {
	if f.err != nil {
		return nil, f.err
	}
	text, err := validation.TodoText(text)
	if err != nil {
		return nil, err
	}
	todo := &models.Todo{ID: uuid.New(), OwnerID: ownerID, Text: text}
	f.byID[todo.ID] = todo
	return todo, nil
}

func (f *fakeTodosRepo) List(ctx context.Context, ownerID uuid.UUID) ([]models.Todo, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Todo{}
	for _, todo := range f.byID {
		if todo.OwnerID == ownerID {
			out = append(out, *todo)
		}
	}
	return out, nil
}

func (f *fakeTodosRepo) find(ownerID uuid.UUID, id string) (*models.Todo, error) {
	todoID, err := uuid.Parse(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	todo, ok := f.byID[todoID]
	if !ok || todo.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	return todo, nil
}

func (f *fakeTodosRepo) Get(ctx context.Context, ownerID uuid.UUID, id string) (*models.Todo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.find(ownerID, id)
}

func (f *fakeTodosRepo) Update(ctx context.Context, ownerID uuid.UUID, id string, patch models.TodoPatch) (*models.Todo, error) {
	if f.err != nil {
		return nil, f.err
	}
	todo, err := f.find(ownerID, id)
	if err != nil {
		return nil, err
	}
	if patch.Text != nil {
		text, err := validation.TodoText(*patch.Text)
		if err != nil {
			return nil, err
		}
		todo.Text = text
	}
	if patch.IsCompleted != nil {
		todo.IsCompleted = *patch.IsCompleted
	}
	if todo.IsCompleted {
		if todo.CompletedAt == nil {
			now := time.Now().UnixMilli()
			todo.CompletedAt = &now
		}
	} else {
		todo.CompletedAt = nil
	}
	return todo, nil
}

func (f *fakeTodosRepo) Delete(ctx context.Context, ownerID uuid.UUID, id string) (*models.Todo, error) {
	if f.err != nil {
		return nil, f.err
	}
	todo, err := f.find(ownerID, id)
	if err != nil {
		return nil, err
	}
	delete(f.byID, todo.ID)
	return todo, nil
}

func todosRequest(method, path, body string, ownerID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	user := &models.User{ID: ownerID, Email: "a@example.com"}
	return req.WithContext(utils.WithAuth(req.Context(), user, "tok"))
}

func TestCreateTodo_Success(t *testing.T) {
	repo := newFakeTodosRepo()
	h := NewTodosHandler(repo)
	ownerID := uuid.New()

	rec := httptest.NewRecorder()
	h.Todos(rec, todosRequest(http.MethodPost, "/todos", `{"text":"buy milk"}`, ownerID))

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp dto.TodoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Text != "buy milk" || resp.IsCompleted || resp.CompletedAt != nil {
		t.Fatalf("unexpected todo: %+v", resp)
	}
}

func TestCreateTodo_EmptyText(t *testing.T) {
	h := NewTodosHandler(newFakeTodosRepo())

	rec := httptest.NewRecorder()
	h.Todos(rec, todosRequest(http.MethodPost, "/todos", `{"text":"   "}`, uuid.New()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestListTodos_OnlyOwn(t *testing.T) {
	repo := newFakeTodosRepo()
	h := NewTodosHandler(repo)
	ownerID := uuid.New()
	otherID := uuid.New()

	if _, err := repo.Create(context.Background(), ownerID, "buy milk"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(context.Background(), otherID, "other user's todo"); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	h.Todos(rec, todosRequest(http.MethodGet, "/todos", "", ownerID))

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	var resp dto.TodoListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Todos) != 1 || resp.Todos[0].Text != "buy milk" {
		t.Fatalf("list must contain only the caller's todos: %+v", resp.Todos)
	}
}

func TestGetTodo_MalformedID(t *testing.T) {
	h := NewTodosHandler(newFakeTodosRepo())

	rec := httptest.NewRecorder()
	h.TodoDetail(rec, todosRequest(http.MethodGet, "/todos/123", "", uuid.New()))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("malformed id must be 404, got %d", rec.Code)
	}
}

func TestGetTodo_ForeignOwnerLooksMissing(t *testing.T) {
	repo := newFakeTodosRepo()
	h := NewTodosHandler(repo)
	ownerID := uuid.New()

	todo, err := repo.Create(context.Background(), ownerID, "buy milk")
	if err != nil {
		t.Fatal(err)
	}

	// A different authenticated user must get the same 404 as for a
	// missing id.
	rec := httptest.NewRecorder()
	h.TodoDetail(rec, todosRequest(http.MethodGet, "/todos/"+todo.ID.String(), "", uuid.New()))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign-owned todo must be 404, got %d", rec.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Not found" {
		t.Fatalf("404 shape must not differ for foreign todos: %+v", resp)
	}
}

func TestUpdateTodo_CompletionRoundTrip(t *testing.T) {
	repo := newFakeTodosRepo()
	h := NewTodosHandler(repo)
	ownerID := uuid.New()

	todo, err := repo.Create(context.Background(), ownerID, "buy milk")
	if err != nil {
		t.Fatal(err)
	}
	path := "/todos/" + todo.ID.String()

	// Complete: completedAt must appear.
	rec := httptest.NewRecorder()
	h.TodoDetail(rec, todosRequest(http.MethodPatch, path, `{"isCompleted":true}`, ownerID))
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var env dto.TodoEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !env.Todo.IsCompleted || env.Todo.CompletedAt == nil {
		t.Fatalf("completing must stamp completedAt: %+v", env.Todo)
	}

	// Un-complete: completedAt must vanish from the payload entirely.
	rec = httptest.NewRecorder()
	h.TodoDetail(rec, todosRequest(http.MethodPatch, path, `{"isCompleted":false}`, ownerID))
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "completedAt") {
		t.Fatalf("completedAt must be absent when pending: %s", rec.Body.String())
	}
}

func TestUpdateTodo_ForeignOwner(t *testing.T) {
	repo := newFakeTodosRepo()
	h := NewTodosHandler(repo)

	todo, err := repo.Create(context.Background(), uuid.New(), "buy milk")
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	h.TodoDetail(rec, todosRequest(http.MethodPatch, "/todos/"+todo.ID.String(), `{"isCompleted":true}`, uuid.New()))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}

func TestDeleteTodo_ReturnsSnapshot(t *testing.T) {
	repo := newFakeTodosRepo()
	h := NewTodosHandler(repo)
	ownerID := uuid.New()

	todo, err := repo.Create(context.Background(), ownerID, "buy milk")
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	h.TodoDetail(rec, todosRequest(http.MethodDelete, "/todos/"+todo.ID.String(), "", ownerID))

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	var env dto.TodoEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Todo.ID != todo.ID.String() || env.Todo.Text != "buy milk" {
		t.Fatalf("unexpected snapshot: %+v", env.Todo)
	}

	// Deleting again is a uniform 404.
	rec = httptest.NewRecorder()
	h.TodoDetail(rec, todosRequest(http.MethodDelete, "/todos/"+todo.ID.String(), "", ownerID))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404 after delete, got %d", rec.Code)
	}
}

func TestTodos_NoAuthContext(t *testing.T) {
	h := NewTodosHandler(newFakeTodosRepo())

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	h.Todos(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}
