package memcached

import (
	"context"
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"go.uber.org/zap"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

// Project is a cache-aside decorator of ProjectStore, it caches individual projects by id.
type Project struct {
	client     *memcache.Client
	orig       ProjectStore
	expiration time.Duration
	logger     *zap.Logger
}

// ProjectStore is the datastore being cached.
type ProjectStore interface {
	Create(ctx context.Context, params internal.ProjectParams) (internal.Project, error)
	Delete(ctx context.Context, id int64) error
	Find(ctx context.Context, id int64) (internal.Project, error)
	Update(ctx context.Context, id int64, params internal.ProjectUpdateParams) (internal.Project, error)
}

// NewProject instantiates the Project cache.
func NewProject(client *memcache.Client, orig ProjectStore, logger *zap.Logger) *Project {
	return &Project{
		client:     client,
		orig:       orig,
		expiration: 15 * time.Minute,
		logger:     logger,
	}
}

// Create stores the record and caches it.
func (p *Project) Create(ctx context.Context, params internal.ProjectParams) (internal.Project, error) {
	defer newOTELSpan(ctx, "Project.Create").End()

	project, err := p.orig.Create(ctx, params)
	if err != nil {
		return internal.Project{}, fmt.Errorf("orig.Create: %w", err)
	}

	setProject(ctx, p.client, projectKey(project.ID), &project, p.expiration)

	return project, nil
}

// Delete removes the record and evicts it.
func (p *Project) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Project.Delete").End()

	if err := p.orig.Delete(ctx, id); err != nil {
		return fmt.Errorf("orig.Delete: %w", err)
	}

	deleteProject(ctx, p.client, projectKey(id))

	return nil
}

// Find returns the cached record, falling back to the datastore on misses.
func (p *Project) Find(ctx context.Context, id int64) (internal.Project, error) {
	defer newOTELSpan(ctx, "Project.Find").End()

	var res internal.Project

	if err := getProject(ctx, p.client, projectKey(id), &res); err == nil {
		return res, nil
	}

	p.logger.Debug("Find: cache miss", zap.Int64("id", id))

	res, err := p.orig.Find(ctx, id)
	if err != nil {
		return res, fmt.Errorf("orig.Find: %w", err)
	}

	setProject(ctx, p.client, projectKey(res.ID), &res, p.expiration)

	return res, nil
}

// Update updates the record and refreshes the cached copy.
func (p *Project) Update(ctx context.Context, id int64, params internal.ProjectUpdateParams) (internal.Project, error) {
	defer newOTELSpan(ctx, "Project.Update").End()

	deleteProject(ctx, p.client, projectKey(id))

	project, err := p.orig.Update(ctx, id, params)
	if err != nil {
		return internal.Project{}, fmt.Errorf("orig.Update: %w", err)
	}

	setProject(ctx, p.client, projectKey(project.ID), &project, p.expiration)

	return project, nil
}
