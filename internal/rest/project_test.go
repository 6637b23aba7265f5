package rest_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/go-cmp/cmp"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/rest"
)

func newDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func strPtr(s string) *string {
	return &s
}

func TestProjectHandler_Create(t *testing.T) {
	t.Parallel()

	body := rest.CreateProjectRequest{
		Name:        "Project Alpha",
		Description: "D",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-10",
	}

	tests := []struct {
		name     string
		token    string
		body     interface{}
		setup    func(s services)
		status   int
		expected interface{}
		called   bool
	}{
		{
			"OK: 201",
			"staff",
			body,
			func(s services) {
				s.projects.CreateReturns(internal.Project{
					ID:          1,
					Name:        "Project Alpha",
					Description: "D",
					StartDate:   newDate("2024-01-01"),
					EndDate:     newDate("2024-01-10"),
				}, nil)
			},
			http.StatusCreated,
			&rest.Project{
				ID:          1,
				Name:        "Project Alpha",
				Description: "D",
				StartDate:   "2024-01-01",
				EndDate:     "2024-01-10",
			},
			true,
		},
		{
			"ERR: 403 non staff",
			"member",
			body,
			func(services) {},
			http.StatusForbidden,
			&rest.ErrorResponse{Error: "you do not have permission to perform this action"},
			false,
		},
		{
			"ERR: 401 anonymous",
			"",
			body,
			func(services) {},
			http.StatusUnauthorized,
			&rest.ErrorResponse{Error: "authentication credentials were not provided"},
			false,
		},
		{
			"ERR: 400 malformed date",
			"staff",
			rest.CreateProjectRequest{Name: "P", Description: "D", StartDate: "01/01/2024", EndDate: "2024-01-10"},
			func(services) {},
			http.StatusBadRequest,
			&rest.ErrorResponse{Error: "invalid request"},
			false,
		},
		{
			"ERR: 400 service",
			"staff",
			body,
			func(s services) {
				s.projects.CreateReturns(internal.Project{}, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "invalid values"))
			},
			http.StatusBadRequest,
			&rest.ErrorResponse{Error: "create failed"},
			true,
		},
		{
			"ERR: 500",
			"staff",
			body,
			func(s services) {
				s.projects.CreateReturns(internal.Project{}, errors.New("connection refused"))
			},
			http.StatusInternalServerError,
			&rest.ErrorResponse{Error: "internal error"},
			true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, svc := newRouter()
			tt.setup(svc)

			res := doRequest(t, router, http.MethodPost, "/api/projects/", tt.token, tt.body)
			assertStatus(t, tt.status, res)

			switch expected := tt.expected.(type) {
			case *rest.Project:
				var actual rest.Project
				decodeResponse(t, res, &actual)

				if !cmp.Equal(*expected, actual) {
					t.Fatalf("expected result does not match: %s", cmp.Diff(*expected, actual))
				}
			case *rest.ErrorResponse:
				assertError(t, *expected, res)
			}

			if called := svc.projects.CreateCallCount() == 1; called != tt.called {
				t.Fatalf("expected service called %t, got %t", tt.called, called)
			}
		})
	}
}

func TestProjectHandler_Search(t *testing.T) {
	t.Parallel()

	project := internal.Project{ID: 3, Name: "P3", Description: "D", StartDate: newDate("2024-01-01"), EndDate: newDate("2024-01-02")}

	t.Run("OK: 200 envelope", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.projects.ByReturns(internal.ProjectSearchResults{Projects: []internal.Project{project}, Total: 5}, nil)

		res := doRequest(t, router, http.MethodGet, "/api/projects/?search=alpha&page=2", "member", nil)
		assertStatus(t, http.StatusOK, res)

		var actual rest.Page[rest.Project]
		decodeResponse(t, res, &actual)

		expected := rest.Page[rest.Project]{
			Count:    5,
			Next:     strPtr("/api/projects/?page=3&search=alpha"),
			Previous: strPtr("/api/projects/?search=alpha"),
			Results: []rest.Project{
				{ID: 3, Name: "P3", Description: "D", StartDate: "2024-01-01", EndDate: "2024-01-02"},
			},
		}

		if !cmp.Equal(expected, actual) {
			t.Fatalf("expected result does not match: %s", cmp.Diff(expected, actual))
		}

		_, args := svc.projects.ByArgsForCall(0)
		if !cmp.Equal(internal.SearchParams{Term: "alpha", Page: 2, Size: pageSize}, args) {
			t.Fatalf("unexpected args %+v", args)
		}
	})

	t.Run("OK: 200 last page", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.projects.ByReturns(internal.ProjectSearchResults{Projects: []internal.Project{}, Total: 0}, nil)

		res := doRequest(t, router, http.MethodGet, "/api/projects/", "member", nil)
		assertStatus(t, http.StatusOK, res)

		var actual rest.Page[rest.Project]
		decodeResponse(t, res, &actual)

		expected := rest.Page[rest.Project]{Results: []rest.Project{}}
		if !cmp.Equal(expected, actual) {
			t.Fatalf("expected result does not match: %s", cmp.Diff(expected, actual))
		}
	})

	t.Run("ERR: 404 invalid page", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodGet, "/api/projects/?page=abc", "member", nil)
		assertStatus(t, http.StatusNotFound, res)

		if svc.projects.ByCallCount() != 0 {
			t.Fatalf("expected service not to be called")
		}
	})

	t.Run("ERR: 404 page out of range", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.projects.ByReturns(internal.ProjectSearchResults{}, internal.NewErrorf(internal.ErrorCodeNotFound, "invalid page"))

		res := doRequest(t, router, http.MethodGet, "/api/projects/?page=9", "member", nil)
		assertStatus(t, http.StatusNotFound, res)
	})
}

func TestProjectHandler_Detail(t *testing.T) {
	t.Parallel()

	project := internal.Project{ID: 7, Name: "P", Description: "D", StartDate: newDate("2024-01-01"), EndDate: newDate("2024-01-02")}

	t.Run("OK: GET", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.projects.ProjectReturns(project, nil)

		res := doRequest(t, router, http.MethodGet, "/api/projects/7/", "member", nil)
		assertStatus(t, http.StatusOK, res)

		if _, id := svc.projects.ProjectArgsForCall(0); id != 7 {
			t.Fatalf("expected id 7, got %d", id)
		}
	})

	t.Run("ERR: GET 404", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.projects.ProjectReturns(internal.Project{}, internal.NewErrorf(internal.ErrorCodeNotFound, "not found"))

		res := doRequest(t, router, http.MethodGet, "/api/projects/7/", "member", nil)
		assertStatus(t, http.StatusNotFound, res)
	})

	t.Run("ERR: GET 404 malformed id", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodGet, "/api/projects/abc/", "member", nil)
		assertStatus(t, http.StatusNotFound, res)

		if svc.projects.ProjectCallCount() != 0 {
			t.Fatalf("expected service not to be called")
		}
	})

	t.Run("OK: PATCH only sends given fields", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.projects.UpdateReturns(project, nil)

		res := doRequest(t, router, http.MethodPatch, "/api/projects/7/", "staff", `{"name":"Updated Project"}`)
		assertStatus(t, http.StatusOK, res)

		_, id, params := svc.projects.UpdateArgsForCall(0)
		if id != 7 {
			t.Fatalf("expected id 7, got %d", id)
		}

		expected := internal.ProjectUpdateParams{Name: strPtr("Updated Project")}
		if !cmp.Equal(expected, params) {
			t.Fatalf("expected params do not match: %s", cmp.Diff(expected, params))
		}
	})

	t.Run("ERR: PATCH rejects explicit null", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodPatch, "/api/projects/7/", "staff", `{"name":null,"description":"kept"}`)
		assertStatus(t, http.StatusBadRequest, res)
		assertError(t, rest.ErrorResponse{
			Error:       "invalid request",
			Validations: validation.Errors{"name": errors.New("")},
		}, res)

		if svc.projects.UpdateCallCount() != 0 {
			t.Fatalf("expected service not to be called")
		}
	})

	t.Run("ERR: PUT requires every field", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodPut, "/api/projects/7/", "staff", `{"name":"Updated Project"}`)
		assertStatus(t, http.StatusBadRequest, res)

		if svc.projects.UpdateCallCount() != 0 {
			t.Fatalf("expected service not to be called")
		}
	})

	t.Run("OK: PUT", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.projects.UpdateReturns(project, nil)

		res := doRequest(t, router, http.MethodPut, "/api/projects/7/", "staff", rest.CreateProjectRequest{
			Name:        "P",
			Description: "D",
			StartDate:   "2024-01-01",
			EndDate:     "2024-01-02",
		})
		assertStatus(t, http.StatusOK, res)

		_, _, params := svc.projects.UpdateArgsForCall(0)
		if params.Name == nil || params.Description == nil || params.StartDate == nil || params.EndDate == nil {
			t.Fatalf("expected every field to be set, got %+v", params)
		}
	})

	t.Run("ERR: PATCH 403 non staff", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodPatch, "/api/projects/7/", "member", `{"name":"x"}`)
		assertStatus(t, http.StatusForbidden, res)

		if svc.projects.UpdateCallCount() != 0 {
			t.Fatalf("expected service not to be called")
		}
	})

	t.Run("OK: DELETE 204", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodDelete, "/api/projects/7/", "staff", nil)
		assertStatus(t, http.StatusNoContent, res)

		if _, id := svc.projects.DeleteArgsForCall(0); id != 7 {
			t.Fatalf("expected id 7, got %d", id)
		}
	})

	t.Run("ERR: DELETE 404", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.projects.DeleteReturns(internal.NewErrorf(internal.ErrorCodeNotFound, "not found"))

		res := doRequest(t, router, http.MethodDelete, "/api/projects/7/", "staff", nil)
		assertStatus(t, http.StatusNotFound, res)
	})
}
