package rest_test

import (
	"errors"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/go-cmp/cmp"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/rest"
)

func TestTaskHandler_Search(t *testing.T) {
	t.Parallel()

	t.Run("OK: caller is forwarded", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.tasks.ByReturns(internal.TaskSearchResults{
			Tasks: []internal.Task{
				{
					ID:          4,
					Title:       "T",
					Description: "D",
					Status:      internal.TaskStatusInProgress,
					DueDate:     newDate("2024-01-05"),
					ProjectID:   1,
					AssignedTo:  member.UserID,
				},
			},
			Total: 1,
		}, nil)

		res := doRequest(t, router, http.MethodGet, "/api/tasks/", "member", nil)
		assertStatus(t, http.StatusOK, res)

		var actual rest.Page[rest.Task]
		decodeResponse(t, res, &actual)

		expected := rest.Page[rest.Task]{
			Count: 1,
			Results: []rest.Task{
				{ID: 4, Title: "T", Description: "D", Status: "In Progress", DueDate: "2024-01-05", ProjectID: 1, AssignedTo: member.UserID},
			},
		}

		if !cmp.Equal(expected, actual) {
			t.Fatalf("expected result does not match: %s", cmp.Diff(expected, actual))
		}

		if _, caller, _ := svc.tasks.ByArgsForCall(0); caller != member {
			t.Fatalf("expected caller %+v, got %+v", member, caller)
		}
	})

	// Reading tasks requires authentication, anonymous reads are rejected.
	t.Run("ERR: 401 anonymous", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodGet, "/api/tasks/", "", nil)
		assertStatus(t, http.StatusUnauthorized, res)

		if svc.tasks.ByCallCount() != 0 {
			t.Fatalf("expected service not to be called")
		}
	})
}

func TestTaskHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("OK: non staff may create", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.tasks.CreateReturns(internal.Task{
			ID:          1,
			Title:       "T",
			Description: "D",
			Status:      internal.TaskStatusPending,
			DueDate:     newDate("2024-01-05"),
			ProjectID:   1,
			AssignedTo:  2,
		}, nil)

		res := doRequest(t, router, http.MethodPost, "/api/tasks/", "member", rest.CreateTaskRequest{
			Title:       "T",
			Description: "D",
			DueDate:     "2024-01-05",
			ProjectID:   1,
			AssignedTo:  2,
		})
		assertStatus(t, http.StatusCreated, res)

		var actual rest.Task
		decodeResponse(t, res, &actual)

		if actual.Status != "Pending" {
			t.Fatalf("expected default status, got %q", actual.Status)
		}

		_, params := svc.tasks.CreateArgsForCall(0)

		expected := internal.TaskParams{
			Title:       "T",
			Description: "D",
			DueDate:     newDate("2024-01-05"),
			ProjectID:   1,
			AssignedTo:  2,
		}

		if !cmp.Equal(expected, params) {
			t.Fatalf("expected params do not match: %s", cmp.Diff(expected, params))
		}
	})

	t.Run("ERR: 400 missing reference", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.tasks.CreateReturns(internal.Task{}, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "invalid values"))

		res := doRequest(t, router, http.MethodPost, "/api/tasks/", "member", rest.CreateTaskRequest{
			Title:       "T",
			Description: "D",
			DueDate:     "2024-01-05",
			ProjectID:   99,
			AssignedTo:  2,
		})
		assertStatus(t, http.StatusBadRequest, res)
	})

	t.Run("ERR: 400 malformed due date", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodPost, "/api/tasks/", "member", `{"title":"T","due_date":"tomorrow"}`)
		assertStatus(t, http.StatusBadRequest, res)

		if svc.tasks.CreateCallCount() != 0 {
			t.Fatalf("expected service not to be called")
		}
	})
}

func TestTaskHandler_Detail(t *testing.T) {
	t.Parallel()

	t.Run("ERR: 404 outside caller scope", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.tasks.TaskReturns(internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "not found"))

		res := doRequest(t, router, http.MethodGet, "/api/tasks/9/", "member", nil)
		assertStatus(t, http.StatusNotFound, res)

		if _, caller, id := svc.tasks.TaskArgsForCall(0); caller != member || id != 9 {
			t.Fatalf("unexpected args %+v %d", caller, id)
		}
	})

	t.Run("OK: PATCH status", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.tasks.UpdateReturns(internal.Task{ID: 9, Status: internal.TaskStatusCompleted}, nil)

		res := doRequest(t, router, http.MethodPatch, "/api/tasks/9/", "member", `{"status":"Completed"}`)
		assertStatus(t, http.StatusOK, res)

		_, _, _, params := svc.tasks.UpdateArgsForCall(0)

		status := internal.TaskStatusCompleted
		if !cmp.Equal(internal.TaskUpdateParams{Status: &status}, params) {
			t.Fatalf("unexpected params %+v", params)
		}
	})

	t.Run("ERR: PATCH rejects explicit null", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodPatch, "/api/tasks/9/", "member", `{"status":null,"project":null}`)
		assertStatus(t, http.StatusBadRequest, res)
		assertError(t, rest.ErrorResponse{
			Error:       "invalid request",
			Validations: validation.Errors{"status": errors.New(""), "project": errors.New("")},
		}, res)

		if svc.tasks.UpdateCallCount() != 0 {
			t.Fatalf("expected service not to be called")
		}
	})

	t.Run("OK: PUT defaults status", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.tasks.UpdateReturns(internal.Task{ID: 9}, nil)

		res := doRequest(t, router, http.MethodPut, "/api/tasks/9/", "member", rest.CreateTaskRequest{
			Title:       "T",
			Description: "D",
			DueDate:     "2024-01-05",
			ProjectID:   1,
			AssignedTo:  2,
		})
		assertStatus(t, http.StatusOK, res)

		_, _, _, params := svc.tasks.UpdateArgsForCall(0)
		if params.Status == nil || *params.Status != internal.TaskStatusPending {
			t.Fatalf("expected pending status, got %+v", params.Status)
		}
	})

	t.Run("OK: DELETE 204", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodDelete, "/api/tasks/9/", "staff", nil)
		assertStatus(t, http.StatusNoContent, res)

		if _, caller, _ := svc.tasks.DeleteArgsForCall(0); caller != staff {
			t.Fatalf("expected staff caller, got %+v", caller)
		}
	})
}
