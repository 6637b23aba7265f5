package internal

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Project groups Tasks under a common name and schedule.
type Project struct {
	ID          int64
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// ProjectParams defines the arguments used for creating Project records.
type ProjectParams struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// Validate indicates whether the fields are valid or not.
func (p ProjectParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.StartDate, validation.Required),
		validation.Field(&p.EndDate, validation.Required),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "invalid values")
	}

	return nil
}

// ProjectUpdateParams defines the arguments used for updating Project records, nil fields are left untouched.
type ProjectUpdateParams struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// Validate indicates whether the fields are valid or not.
func (p ProjectUpdateParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&p.Description, validation.NilOrNotEmpty),
		validation.Field(&p.StartDate, validation.NilOrNotEmpty),
		validation.Field(&p.EndDate, validation.NilOrNotEmpty),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "invalid values")
	}

	return nil
}

// ProjectSearchResults defines the collection of projects that were found.
type ProjectSearchResults struct {
	Projects []Project
	Total    int64
}

// Event types published when Project records change.
const (
	EventProjectCreated = "projects.event.created"
	EventProjectUpdated = "projects.event.updated"
	EventProjectDeleted = "projects.event.deleted"
)
