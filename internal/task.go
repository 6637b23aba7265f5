package internal

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TaskStatus indicates the progress of a Task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// Validate indicates whether the status is one of the supported values, empty is allowed.
func (s TaskStatus) Validate() error {
	return validation.Validate(string(s),
		validation.In(string(TaskStatusPending), string(TaskStatusInProgress), string(TaskStatusCompleted)).
			Error("must be one of Pending, In Progress or Completed"),
	)
}

// Task is a unit of work assigned to a User within a Project.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      TaskStatus
	DueDate     time.Time
	ProjectID   int64
	AssignedTo  int64
}

// TaskParams defines the arguments used for creating Task records.
type TaskParams struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     time.Time  `json:"due_date"`
	ProjectID   int64      `json:"project"`
	AssignedTo  int64      `json:"assigned_to"`
}

// Validate indicates whether the fields are valid or not. An empty Status is valid and means Pending.
func (p TaskParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Status),
		validation.Field(&p.DueDate, validation.Required),
		validation.Field(&p.ProjectID, validation.Required),
		validation.Field(&p.AssignedTo, validation.Required),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "invalid values")
	}

	return nil
}

// TaskUpdateParams defines the arguments used for updating Task records, nil fields are left untouched.
type TaskUpdateParams struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Status      *TaskStatus `json:"status"`
	DueDate     *time.Time  `json:"due_date"`
	ProjectID   *int64      `json:"project"`
	AssignedTo  *int64      `json:"assigned_to"`
}

// Validate indicates whether the fields are valid or not.
func (p TaskUpdateParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&p.Description, validation.NilOrNotEmpty),
		validation.Field(&p.Status, validation.NilOrNotEmpty),
		validation.Field(&p.DueDate, validation.NilOrNotEmpty),
		validation.Field(&p.ProjectID, validation.NilOrNotEmpty),
		validation.Field(&p.AssignedTo, validation.NilOrNotEmpty),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "invalid values")
	}

	return nil
}

// TaskSearchResults defines the collection of tasks that were found.
type TaskSearchResults struct {
	Tasks []Task
	Total int64
}
