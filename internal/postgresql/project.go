package postgresql

import (
	"context"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/postgresql/db"
)

// Project represents the repository used for interacting with Project records.
type Project struct {
	q *db.Queries
}

// NewProject instantiates the Project repository.
func NewProject(d db.DBTX) *Project {
	return &Project{
		q: db.New(d),
	}
}

// Create inserts a new project record.
func (p *Project) Create(ctx context.Context, params internal.ProjectParams) (internal.Project, error) {
	defer newOTELSpan(ctx, "Project.Create").End()

	id, err := p.q.InsertProject(ctx, db.InsertProjectParams{
		Name:        params.Name,
		Description: params.Description,
		StartDate:   newDate(params.StartDate),
		EndDate:     newDate(params.EndDate),
	})
	if err != nil {
		return internal.Project{}, convertError(err, "insert project")
	}

	return internal.Project{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
	}, nil
}

// Delete deletes the existing record matching the id, its tasks are deleted by the same statement.
func (p *Project) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Project.Delete").End()

	count, err := p.q.DeleteProject(ctx, id)
	if err != nil {
		return convertError(err, "delete project")
	}

	if count == 0 {
		return internal.NewErrorf(internal.ErrorCodeNotFound, "project not found")
	}

	return nil
}

// Find returns the requested project by searching its id.
func (p *Project) Find(ctx context.Context, id int64) (internal.Project, error) {
	defer newOTELSpan(ctx, "Project.Find").End()

	res, err := p.q.SelectProject(ctx, id)
	if err != nil {
		return internal.Project{}, convertError(err, "select project")
	}

	return convertProject(res), nil
}

// Update updates the fields that were set in params and returns the resulting record.
func (p *Project) Update(ctx context.Context, id int64, params internal.ProjectUpdateParams) (internal.Project, error) {
	defer newOTELSpan(ctx, "Project.Update").End()

	res, err := p.q.UpdateProject(ctx, db.UpdateProjectParams{
		ID:          id,
		Name:        newNullText(params.Name),
		Description: newNullText(params.Description),
		StartDate:   newNullDate(params.StartDate),
		EndDate:     newNullDate(params.EndDate),
	})
	if err != nil {
		return internal.Project{}, convertError(err, "update project")
	}

	return convertProject(res), nil
}

// Search returns the page of projects matching every search word in their name or description.
func (p *Project) Search(ctx context.Context, args internal.SearchParams) (internal.ProjectSearchResults, error) {
	defer newOTELSpan(ctx, "Project.Search").End()

	patterns := newPatterns(args.Words())

	total, err := p.q.CountProjects(ctx, patterns)
	if err != nil {
		return internal.ProjectSearchResults{}, convertError(err, "count projects")
	}

	rows, err := p.q.SearchProjects(ctx, db.SearchProjectsParams{
		Patterns: patterns,
		Lim:      int32(args.Size),
		Off:      int32(args.Offset()),
	})
	if err != nil {
		return internal.ProjectSearchResults{}, convertError(err, "search projects")
	}

	res := make([]internal.Project, len(rows))
	for i, row := range rows {
		res[i] = convertProject(row)
	}

	return internal.ProjectSearchResults{
		Projects: res,
		Total:    total,
	}, nil
}

func convertProject(p db.Projects) internal.Project {
	return internal.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate.Time,
		EndDate:     p.EndDate.Time,
	}
}
