package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/postgresql/db"
)

// Task represents the repository used for interacting with Task records.
type Task struct {
	q *db.Queries
}

// NewTask instantiates the Task repository.
func NewTask(d db.DBTX) *Task {
	return &Task{
		q: db.New(d),
	}
}

// Create inserts a new task record.
func (t *Task) Create(ctx context.Context, params internal.TaskParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	status := params.Status
	if status == "" {
		status = internal.TaskStatusPending
	}

	id, err := t.q.InsertTask(ctx, db.InsertTaskParams{
		Title:       params.Title,
		Description: params.Description,
		Status:      db.TaskStatus(status),
		DueDate:     newDate(params.DueDate),
		ProjectID:   params.ProjectID,
		AssignedTo:  params.AssignedTo,
	})
	if err != nil {
		return internal.Task{}, convertError(err, "insert task")
	}

	return internal.Task{
		ID:          id,
		Title:       params.Title,
		Description: params.Description,
		Status:      status,
		DueDate:     params.DueDate,
		ProjectID:   params.ProjectID,
		AssignedTo:  params.AssignedTo,
	}, nil
}

// Delete deletes the existing record matching the id, when owner is not nil the record must be assigned to it.
func (t *Task) Delete(ctx context.Context, id int64, owner *int64) error {
	defer newOTELSpan(ctx, "Task.Delete").End()

	count, err := t.q.DeleteTask(ctx, db.DeleteTaskParams{
		ID:         id,
		AssignedTo: newNullInt8(owner),
	})
	if err != nil {
		return convertError(err, "delete task")
	}

	if count == 0 {
		return internal.NewErrorf(internal.ErrorCodeNotFound, "task not found")
	}

	return nil
}

// Find returns the requested task, when owner is not nil the record must be assigned to it.
func (t *Task) Find(ctx context.Context, id int64, owner *int64) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	res, err := t.q.SelectTask(ctx, db.SelectTaskParams{
		ID:         id,
		AssignedTo: newNullInt8(owner),
	})
	if err != nil {
		return internal.Task{}, convertError(err, "select task")
	}

	return convertTask(res), nil
}

// Update updates the fields that were set in params, when owner is not nil the record must be assigned to it.
func (t *Task) Update(ctx context.Context, id int64, owner *int64, params internal.TaskUpdateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Update").End()

	res, err := t.q.UpdateTask(ctx, db.UpdateTaskParams{
		ID:            id,
		Owner:         newNullInt8(owner),
		Title:         newNullText(params.Title),
		Description:   newNullText(params.Description),
		Status:        newNullStatus(params.Status),
		DueDate:       newNullDate(params.DueDate),
		ProjectID:     newNullInt8(params.ProjectID),
		NewAssignedTo: newNullInt8(params.AssignedTo),
	})
	if err != nil {
		return internal.Task{}, convertError(err, "update task")
	}

	return convertTask(res), nil
}

// Search returns the page of tasks matching every search word in their title or status,
// when owner is not nil only tasks assigned to it are considered.
func (t *Task) Search(ctx context.Context, owner *int64, args internal.SearchParams) (internal.TaskSearchResults, error) {
	defer newOTELSpan(ctx, "Task.Search").End()

	var (
		assignedTo pgtype.Int8 = newNullInt8(owner)
		patterns               = newPatterns(args.Words())
	)

	total, err := t.q.CountTasks(ctx, db.CountTasksParams{
		AssignedTo: assignedTo,
		Patterns:   patterns,
	})
	if err != nil {
		return internal.TaskSearchResults{}, convertError(err, "count tasks")
	}

	rows, err := t.q.SearchTasks(ctx, db.SearchTasksParams{
		AssignedTo: assignedTo,
		Patterns:   patterns,
		Lim:        int32(args.Size),
		Off:        int32(args.Offset()),
	})
	if err != nil {
		return internal.TaskSearchResults{}, convertError(err, "search tasks")
	}

	res := make([]internal.Task, len(rows))
	for i, row := range rows {
		res[i] = convertTask(row)
	}

	return internal.TaskSearchResults{
		Tasks: res,
		Total: total,
	}, nil
}

func convertTask(t db.Tasks) internal.Task {
	return internal.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      convertStatus(t.Status),
		DueDate:     t.DueDate.Time,
		ProjectID:   t.ProjectID,
		AssignedTo:  t.AssignedTo,
	}
}
