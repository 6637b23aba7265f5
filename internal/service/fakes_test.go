package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

type memoryUsers struct {
	mu    sync.Mutex
	next  int64
	users map[int64]internal.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[int64]internal.User{}}
}

func (m *memoryUsers) Create(_ context.Context, username, passwordHash string, isStaff bool) (internal.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next++
	u := internal.User{ID: m.next, Username: username, PasswordHash: passwordHash, IsStaff: isStaff}
	m.users[u.ID] = u

	return u, nil
}

func (m *memoryUsers) Find(_ context.Context, id int64) (internal.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return internal.User{}, internal.NewErrorf(internal.ErrorCodeNotFound, "not found")
	}

	return u, nil
}

func (m *memoryUsers) FindByUsername(_ context.Context, username string) (internal.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}

	return internal.User{}, internal.NewErrorf(internal.ErrorCodeNotFound, "not found")
}

type memoryProjects struct {
	next     int64
	projects map[int64]internal.Project
}

func newMemoryProjects() *memoryProjects {
	return &memoryProjects{projects: map[int64]internal.Project{}}
}

func (m *memoryProjects) Create(_ context.Context, params internal.ProjectParams) (internal.Project, error) {
	m.next++
	p := internal.Project{
		ID:          m.next,
		Name:        params.Name,
		Description: params.Description,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
	}
	m.projects[p.ID] = p

	return p, nil
}

func (m *memoryProjects) Delete(_ context.Context, id int64) error {
	if _, ok := m.projects[id]; !ok {
		return internal.NewErrorf(internal.ErrorCodeNotFound, "not found")
	}

	delete(m.projects, id)

	return nil
}

func (m *memoryProjects) Find(_ context.Context, id int64) (internal.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return internal.Project{}, internal.NewErrorf(internal.ErrorCodeNotFound, "not found")
	}

	return p, nil
}

func (m *memoryProjects) Update(_ context.Context, id int64, params internal.ProjectUpdateParams) (internal.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return internal.Project{}, internal.NewErrorf(internal.ErrorCodeNotFound, "not found")
	}

	if params.Name != nil {
		p.Name = *params.Name
	}

	if params.Description != nil {
		p.Description = *params.Description
	}

	m.projects[id] = p

	return p, nil
}

func (m *memoryProjects) Search(_ context.Context, args internal.SearchParams) (internal.ProjectSearchResults, error) {
	var all []internal.Project

	for _, p := range m.projects {
		if matches(args.Words(), p.Name, p.Description) {
			all = append(all, p)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return internal.ProjectSearchResults{
		Projects: page(all, args),
		Total:    int64(len(all)),
	}, nil
}

type memoryTasks struct {
	next  int64
	tasks map[int64]internal.Task
}

func newMemoryTasks() *memoryTasks {
	return &memoryTasks{tasks: map[int64]internal.Task{}}
}

func (m *memoryTasks) Create(_ context.Context, params internal.TaskParams) (internal.Task, error) {
	m.next++
	t := internal.Task{
		ID:          m.next,
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
		DueDate:     params.DueDate,
		ProjectID:   params.ProjectID,
		AssignedTo:  params.AssignedTo,
	}
	if t.Status == "" {
		t.Status = internal.TaskStatusPending
	}

	m.tasks[t.ID] = t

	return t, nil
}

func (m *memoryTasks) Delete(ctx context.Context, id int64, owner *int64) error {
	if _, err := m.Find(ctx, id, owner); err != nil {
		return err
	}

	delete(m.tasks, id)

	return nil
}

func (m *memoryTasks) Find(_ context.Context, id int64, owner *int64) (internal.Task, error) {
	t, ok := m.tasks[id]
	if !ok || (owner != nil && t.AssignedTo != *owner) {
		return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "not found")
	}

	return t, nil
}

func (m *memoryTasks) Search(_ context.Context, owner *int64, args internal.SearchParams) (internal.TaskSearchResults, error) {
	var all []internal.Task

	for _, t := range m.tasks {
		if owner != nil && t.AssignedTo != *owner {
			continue
		}

		if matches(args.Words(), t.Title, string(t.Status)) {
			all = append(all, t)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return internal.TaskSearchResults{
		Tasks: page(all, args),
		Total: int64(len(all)),
	}, nil
}

func (m *memoryTasks) Update(ctx context.Context, id int64, owner *int64, params internal.TaskUpdateParams) (internal.Task, error) {
	t, err := m.Find(ctx, id, owner)
	if err != nil {
		return internal.Task{}, err
	}

	if params.Status != nil {
		t.Status = *params.Status
	}

	if params.Title != nil {
		t.Title = *params.Title
	}

	m.tasks[id] = t

	return t, nil
}

type recordingBroker struct {
	created []int64
	updated []int64
	deleted []int64
}

func (r *recordingBroker) Created(_ context.Context, p internal.Project) error {
	r.created = append(r.created, p.ID)
	return nil
}

func (r *recordingBroker) Deleted(_ context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *recordingBroker) Updated(_ context.Context, p internal.Project) error {
	r.updated = append(r.updated, p.ID)
	return nil
}

func matches(words []string, fields ...string) bool {
	for _, w := range words {
		found := false

		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), strings.ToLower(w)) {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

func page[T any](all []T, args internal.SearchParams) []T {
	from := args.Offset()
	if from >= len(all) {
		return []T{}
	}

	to := from + args.Size
	if to > len(all) {
		to = len(all)
	}

	return all[from:to]
}

func errorCode(err error) internal.ErrorCode {
	if err == nil {
		return internal.ErrorCode(999)
	}

	for _, code := range []internal.ErrorCode{
		internal.ErrorCodeNotFound,
		internal.ErrorCodeInvalidArgument,
		internal.ErrorCodeUnauthenticated,
		internal.ErrorCodePermissionDenied,
		internal.ErrorCodeUnknown,
	} {
		if hasCode(err, code) {
			return code
		}
	}

	return internal.ErrorCodeUnknown
}
