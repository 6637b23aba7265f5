package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

// ProjectRepository defines the datastore handling persisting Project records.
type ProjectRepository interface {
	Create(ctx context.Context, params internal.ProjectParams) (internal.Project, error)
	Delete(ctx context.Context, id int64) error
	Find(ctx context.Context, id int64) (internal.Project, error)
	Update(ctx context.Context, id int64, params internal.ProjectUpdateParams) (internal.Project, error)
}

// ProjectSearchRepository defines the datastore handling searching Project records.
type ProjectSearchRepository interface {
	Search(ctx context.Context, args internal.SearchParams) (internal.ProjectSearchResults, error)
}

// ProjectMessageBrokerRepository defines the broker notified when Project records change.
type ProjectMessageBrokerRepository interface {
	Created(ctx context.Context, project internal.Project) error
	Deleted(ctx context.Context, id int64) error
	Updated(ctx context.Context, project internal.Project) error
}

// Project defines the application service in charge of interacting with Projects.
type Project struct {
	logger    *zap.Logger
	repo      ProjectRepository
	search    ProjectSearchRepository
	msgBroker ProjectMessageBrokerRepository
}

// NewProject instantiates the Project service, msgBroker is optional.
func NewProject(logger *zap.Logger, repo ProjectRepository, search ProjectSearchRepository, msgBroker ProjectMessageBrokerRepository) *Project {
	return &Project{
		logger:    logger,
		repo:      repo,
		search:    search,
		msgBroker: msgBroker,
	}
}

// By returns the requested page of Projects matching the search term.
func (p *Project) By(ctx context.Context, args internal.SearchParams) (internal.ProjectSearchResults, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Project.By")
	defer span.End()

	if err := args.Validate(); err != nil {
		return internal.ProjectSearchResults{}, err
	}

	res, err := p.search.Search(ctx, args)
	if err != nil {
		return internal.ProjectSearchResults{}, fmt.Errorf("search: %w", err)
	}

	if err := args.ValidatePage(res.Total); err != nil {
		return internal.ProjectSearchResults{}, err
	}

	return res, nil
}

// Create stores a new record.
func (p *Project) Create(ctx context.Context, params internal.ProjectParams) (internal.Project, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Project.Create")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Project{}, fmt.Errorf("params.Validate: %w", err)
	}

	project, err := p.repo.Create(ctx, params)
	if err != nil {
		return internal.Project{}, fmt.Errorf("repo create: %w", err)
	}

	if p.msgBroker != nil {
		if err := p.msgBroker.Created(ctx, project); err != nil {
			p.logger.Warn("publishing created event failed", zap.Int64("id", project.ID), zap.Error(err))
		}
	}

	return project, nil
}

// Delete removes an existing Project and its Tasks from the datastore.
func (p *Project) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Project.Delete")
	defer span.End()

	if err := p.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	if p.msgBroker != nil {
		if err := p.msgBroker.Deleted(ctx, id); err != nil {
			p.logger.Warn("publishing deleted event failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	return nil
}

// Project gets an existing Project from the datastore.
func (p *Project) Project(ctx context.Context, id int64) (internal.Project, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Project.Project")
	defer span.End()

	project, err := p.repo.Find(ctx, id)
	if err != nil {
		return internal.Project{}, fmt.Errorf("repo find: %w", err)
	}

	return project, nil
}

// Update updates an existing Project in the datastore.
func (p *Project) Update(ctx context.Context, id int64, params internal.ProjectUpdateParams) (internal.Project, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Project.Update")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Project{}, fmt.Errorf("params.Validate: %w", err)
	}

	project, err := p.repo.Update(ctx, id, params)
	if err != nil {
		return internal.Project{}, fmt.Errorf("repo update: %w", err)
	}

	if p.msgBroker != nil {
		if err := p.msgBroker.Updated(ctx, project); err != nil {
			p.logger.Warn("publishing updated event failed", zap.Int64("id", project.ID), zap.Error(err))
		}
	}

	return project, nil
}
