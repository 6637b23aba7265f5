package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/policy"
)

//go:generate counterfeiter -o resttesting/task_service.gen.go . TaskService

// TaskService defines the application service in charge of interacting with Tasks.
type TaskService interface {
	By(ctx context.Context, caller internal.Principal, args internal.SearchParams) (internal.TaskSearchResults, error)
	Create(ctx context.Context, params internal.TaskParams) (internal.Task, error)
	Delete(ctx context.Context, caller internal.Principal, id int64) error
	Task(ctx context.Context, caller internal.Principal, id int64) (internal.Task, error)
	Update(ctx context.Context, caller internal.Principal, id int64, params internal.TaskUpdateParams) (internal.Task, error)
}

// TaskHandler handles the Task resource.
type TaskHandler struct {
	svc      TaskService
	pageSize int
}

// NewTaskHandler instantiates the Task handler, list results are paginated using pageSize.
func NewTaskHandler(svc TaskService, pageSize int) *TaskHandler {
	return &TaskHandler{
		svc:      svc,
		pageSize: pageSize,
	}
}

// Register connects the handlers to the router.
func (t *TaskHandler) Register(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Use(Authorize(policy.OwnerOrAnyRead))

		r.Get("/", t.search)
		r.Post("/", t.create)
		r.Get("/{id}/", t.task)
		r.Put("/{id}/", t.replace)
		r.Patch("/{id}/", t.update)
		r.Delete("/{id}/", t.delete)
	})
}

// Task is an activity within a project assigned to a user.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     Date   `json:"due_date"`
	ProjectID   int64  `json:"project"`
	AssignedTo  int64  `json:"assigned_to"`
}

func newTask(t internal.Task) Task {
	return Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     NewDate(t.DueDate),
		ProjectID:   t.ProjectID,
		AssignedTo:  t.AssignedTo,
	}
}

// CreateTaskRequest defines the request used for creating and replacing tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     Date   `json:"due_date"`
	ProjectID   int64  `json:"project"`
	AssignedTo  int64  `json:"assigned_to"`
}

func (c CreateTaskRequest) params() (internal.TaskParams, error) {
	verrs := validation.Errors{}

	res := internal.TaskParams{
		Title:       c.Title,
		Description: c.Description,
		Status:      internal.TaskStatus(c.Status),
		DueDate:     parseDate(c.DueDate, "due_date", verrs),
		ProjectID:   c.ProjectID,
		AssignedTo:  c.AssignedTo,
	}

	if err := checkValidations(verrs); err != nil {
		return internal.TaskParams{}, err
	}

	return res, nil
}

// UpdateTaskRequest defines the request used for partially updating tasks.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *Date   `json:"due_date"`
	ProjectID   *int64  `json:"project"`
	AssignedTo  *int64  `json:"assigned_to"`

	nulls []string
}

// UnmarshalJSON decodes the request and records the fields sent as null.
func (u *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateTaskRequest

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	nulls, err := nullFields(data, "title", "description", "status", "due_date", "project", "assigned_to")
	if err != nil {
		return err
	}

	*u = UpdateTaskRequest(a)
	u.nulls = nulls

	return nil
}

func (u UpdateTaskRequest) params() (internal.TaskUpdateParams, error) {
	verrs := validation.Errors{}

	res := internal.TaskUpdateParams{
		Title:       u.Title,
		Description: u.Description,
		DueDate:     parseNullDate(u.DueDate, "due_date", verrs),
		ProjectID:   u.ProjectID,
		AssignedTo:  u.AssignedTo,
	}

	if u.Status != nil {
		status := internal.TaskStatus(*u.Status)
		res.Status = &status
	}

	rejectNulls(u.nulls, verrs)

	if err := checkValidations(verrs); err != nil {
		return internal.TaskUpdateParams{}, err
	}

	return res, nil
}

func (t *TaskHandler) search(w http.ResponseWriter, r *http.Request) {
	args, err := newSearchParams(r, t.pageSize)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid page", err)
		return
	}

	res, err := t.svc.By(r.Context(), caller(r), args)
	if err != nil {
		renderErrorResponse(r.Context(), w, "search failed", err)
		return
	}

	tasks := make([]Task, len(res.Tasks))
	for i, task := range res.Tasks {
		tasks[i] = newTask(task)
	}

	renderResponse(w, newPage(r, args, res.Total, tasks), http.StatusOK)
}

func (t *TaskHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := decodeRequest(r, &req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	params, err := req.params()
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	task, err := t.svc.Create(r.Context(), params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "create failed", err)
		return
	}

	renderResponse(w, newTask(task), http.StatusCreated)
}

func (t *TaskHandler) task(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "not found", err)
		return
	}

	task, err := t.svc.Task(r.Context(), caller(r), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, "find failed", err)
		return
	}

	renderResponse(w, newTask(task), http.StatusOK)
}

// replace handles PUT, every field but status is required.
func (t *TaskHandler) replace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "not found", err)
		return
	}

	var req CreateTaskRequest
	if err := decodeRequest(r, &req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	params, err := req.params()
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	if err := params.Validate(); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	if params.Status == "" {
		params.Status = internal.TaskStatusPending
	}

	task, err := t.svc.Update(r.Context(), caller(r), id, internal.TaskUpdateParams{
		Title:       &params.Title,
		Description: &params.Description,
		Status:      &params.Status,
		DueDate:     &params.DueDate,
		ProjectID:   &params.ProjectID,
		AssignedTo:  &params.AssignedTo,
	})
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, newTask(task), http.StatusOK)
}

func (t *TaskHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "not found", err)
		return
	}

	var req UpdateTaskRequest
	if err := decodeRequest(r, &req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	params, err := req.params()
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	task, err := t.svc.Update(r.Context(), caller(r), id, params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, newTask(task), http.StatusOK)
}

func (t *TaskHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "not found", err)
		return
	}

	if err := t.svc.Delete(r.Context(), caller(r), id); err != nil {
		renderErrorResponse(r.Context(), w, "delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
