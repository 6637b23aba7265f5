package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

// TaskRepository defines the datastore handling persisting Task records. A non nil owner limits the
// operation to records assigned to that user.
type TaskRepository interface {
	Create(ctx context.Context, params internal.TaskParams) (internal.Task, error)
	Delete(ctx context.Context, id int64, owner *int64) error
	Find(ctx context.Context, id int64, owner *int64) (internal.Task, error)
	Search(ctx context.Context, owner *int64, args internal.SearchParams) (internal.TaskSearchResults, error)
	Update(ctx context.Context, id int64, owner *int64, params internal.TaskUpdateParams) (internal.Task, error)
}

// ProjectFinder defines the datastore used for confirming referenced Projects exist.
type ProjectFinder interface {
	Find(ctx context.Context, id int64) (internal.Project, error)
}

// UserFinder defines the datastore used for confirming referenced Users exist.
type UserFinder interface {
	Find(ctx context.Context, id int64) (internal.User, error)
}

// Task defines the application service in charge of interacting with Tasks.
type Task struct {
	logger   *zap.Logger
	repo     TaskRepository
	projects ProjectFinder
	users    UserFinder
}

// NewTask instantiates the Task service.
func NewTask(logger *zap.Logger, repo TaskRepository, projects ProjectFinder, users UserFinder) *Task {
	return &Task{
		logger:   logger,
		repo:     repo,
		projects: projects,
		users:    users,
	}
}

// By returns the requested page of Tasks visible to caller matching the search term.
// Staff see every Task, everybody else only the ones assigned to them.
func (t *Task) By(ctx context.Context, caller internal.Principal, args internal.SearchParams) (internal.TaskSearchResults, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.By")
	defer span.End()

	if err := args.Validate(); err != nil {
		return internal.TaskSearchResults{}, err
	}

	res, err := t.repo.Search(ctx, owner(caller), args)
	if err != nil {
		return internal.TaskSearchResults{}, fmt.Errorf("repo search: %w", err)
	}

	if err := args.ValidatePage(res.Total); err != nil {
		return internal.TaskSearchResults{}, err
	}

	return res, nil
}

// Create stores a new record after confirming its Project and assignee exist.
func (t *Task) Create(ctx context.Context, params internal.TaskParams) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Create")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Task{}, fmt.Errorf("params.Validate: %w", err)
	}

	if err := t.validateReferences(ctx, &params.ProjectID, &params.AssignedTo); err != nil {
		return internal.Task{}, err
	}

	task, err := t.repo.Create(ctx, params)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo create: %w", err)
	}

	t.logger.Info("task created", zap.Int64("id", task.ID), zap.Int64("project", task.ProjectID))

	return task, nil
}

// Delete removes an existing Task visible to caller.
func (t *Task) Delete(ctx context.Context, caller internal.Principal, id int64) error {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Delete")
	defer span.End()

	if err := t.repo.Delete(ctx, id, owner(caller)); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	return nil
}

// Task gets an existing Task visible to caller.
func (t *Task) Task(ctx context.Context, caller internal.Principal, id int64) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Task")
	defer span.End()

	task, err := t.repo.Find(ctx, id, owner(caller))
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo find: %w", err)
	}

	return task, nil
}

// Update updates an existing Task visible to caller.
func (t *Task) Update(ctx context.Context, caller internal.Principal, id int64, params internal.TaskUpdateParams) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Update")
	defer span.End()

	if _, err := t.repo.Find(ctx, id, owner(caller)); err != nil {
		return internal.Task{}, fmt.Errorf("repo find: %w", err)
	}

	if err := params.Validate(); err != nil {
		return internal.Task{}, fmt.Errorf("params.Validate: %w", err)
	}

	if err := t.validateReferences(ctx, params.ProjectID, params.AssignedTo); err != nil {
		return internal.Task{}, err
	}

	task, err := t.repo.Update(ctx, id, owner(caller), params)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo update: %w", err)
	}

	return task, nil
}

func (t *Task) validateReferences(ctx context.Context, projectID, assignedTo *int64) error {
	verrs := validation.Errors{}

	if projectID != nil {
		if _, err := t.projects.Find(ctx, *projectID); err != nil {
			if !hasCode(err, internal.ErrorCodeNotFound) {
				return fmt.Errorf("projects find: %w", err)
			}

			verrs["project"] = fmt.Errorf("invalid pk %q - object does not exist", fmt.Sprint(*projectID))
		}
	}

	if assignedTo != nil {
		if _, err := t.users.Find(ctx, *assignedTo); err != nil {
			if !hasCode(err, internal.ErrorCodeNotFound) {
				return fmt.Errorf("users find: %w", err)
			}

			verrs["assigned_to"] = fmt.Errorf("invalid pk %q - object does not exist", fmt.Sprint(*assignedTo))
		}
	}

	if len(verrs) > 0 {
		return internal.WrapErrorf(verrs, internal.ErrorCodeInvalidArgument, "invalid references")
	}

	return nil
}
