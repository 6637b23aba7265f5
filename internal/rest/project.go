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

//go:generate counterfeiter -o resttesting/project_service.gen.go . ProjectService

// ProjectService defines the application service in charge of interacting with Projects.
type ProjectService interface {
	By(ctx context.Context, args internal.SearchParams) (internal.ProjectSearchResults, error)
	Create(ctx context.Context, params internal.ProjectParams) (internal.Project, error)
	Delete(ctx context.Context, id int64) error
	Project(ctx context.Context, id int64) (internal.Project, error)
	Update(ctx context.Context, id int64, params internal.ProjectUpdateParams) (internal.Project, error)
}

// ProjectHandler handles the Project resource.
type ProjectHandler struct {
	svc      ProjectService
	pageSize int
}

// NewProjectHandler instantiates the Project handler, list results are paginated using pageSize.
func NewProjectHandler(svc ProjectService, pageSize int) *ProjectHandler {
	return &ProjectHandler{
		svc:      svc,
		pageSize: pageSize,
	}
}

// Register connects the handlers to the router.
func (p *ProjectHandler) Register(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Use(Authorize(policy.AdminOrReadOnly))

		r.Get("/", p.search)
		r.Post("/", p.create)
		r.Get("/{id}/", p.project)
		r.Put("/{id}/", p.replace)
		r.Patch("/{id}/", p.update)
		r.Delete("/{id}/", p.delete)
	})
}

// Project is a named and scheduled grouping of tasks.
type Project struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
}

func newProject(p internal.Project) Project {
	return Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   NewDate(p.StartDate),
		EndDate:     NewDate(p.EndDate),
	}
}

// CreateProjectRequest defines the request used for creating and replacing projects.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
}

func (c CreateProjectRequest) params() (internal.ProjectParams, error) {
	verrs := validation.Errors{}

	res := internal.ProjectParams{
		Name:        c.Name,
		Description: c.Description,
		StartDate:   parseDate(c.StartDate, "start_date", verrs),
		EndDate:     parseDate(c.EndDate, "end_date", verrs),
	}

	if err := checkValidations(verrs); err != nil {
		return internal.ProjectParams{}, err
	}

	return res, nil
}

// UpdateProjectRequest defines the request used for partially updating projects.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`

	nulls []string
}

// UnmarshalJSON decodes the request and records the fields sent as null.
func (u *UpdateProjectRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateProjectRequest

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	nulls, err := nullFields(data, "name", "description", "start_date", "end_date")
	if err != nil {
		return err
	}

	*u = UpdateProjectRequest(a)
	u.nulls = nulls

	return nil
}

func (u UpdateProjectRequest) params() (internal.ProjectUpdateParams, error) {
	verrs := validation.Errors{}

	res := internal.ProjectUpdateParams{
		Name:        u.Name,
		Description: u.Description,
		StartDate:   parseNullDate(u.StartDate, "start_date", verrs),
		EndDate:     parseNullDate(u.EndDate, "end_date", verrs),
	}

	rejectNulls(u.nulls, verrs)

	if err := checkValidations(verrs); err != nil {
		return internal.ProjectUpdateParams{}, err
	}

	return res, nil
}

func (p *ProjectHandler) search(w http.ResponseWriter, r *http.Request) {
	args, err := newSearchParams(r, p.pageSize)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid page", err)
		return
	}

	res, err := p.svc.By(r.Context(), args)
	if err != nil {
		renderErrorResponse(r.Context(), w, "search failed", err)
		return
	}

	projects := make([]Project, len(res.Projects))
	for i, project := range res.Projects {
		projects[i] = newProject(project)
	}

	renderResponse(w, newPage(r, args, res.Total, projects), http.StatusOK)
}

func (p *ProjectHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := decodeRequest(r, &req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	params, err := req.params()
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	project, err := p.svc.Create(r.Context(), params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "create failed", err)
		return
	}

	renderResponse(w, newProject(project), http.StatusCreated)
}

func (p *ProjectHandler) project(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "not found", err)
		return
	}

	project, err := p.svc.Project(r.Context(), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, "find failed", err)
		return
	}

	renderResponse(w, newProject(project), http.StatusOK)
}

// replace handles PUT, every field is required.
func (p *ProjectHandler) replace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "not found", err)
		return
	}

	var req CreateProjectRequest
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

	project, err := p.svc.Update(r.Context(), id, internal.ProjectUpdateParams{
		Name:        &params.Name,
		Description: &params.Description,
		StartDate:   &params.StartDate,
		EndDate:     &params.EndDate,
	})
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, newProject(project), http.StatusOK)
}

func (p *ProjectHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "not found", err)
		return
	}

	var req UpdateProjectRequest
	if err := decodeRequest(r, &req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	params, err := req.params()
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	project, err := p.svc.Update(r.Context(), id, params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, newProject(project), http.StatusOK)
}

func (p *ProjectHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "not found", err)
		return
	}

	if err := p.svc.Delete(r.Context(), id); err != nil {
		renderErrorResponse(r.Context(), w, "delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
