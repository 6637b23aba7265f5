package rest_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/rest"
)

func TestUserHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("OK: 201", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.users.RegisterReturns(internal.User{ID: 1, Username: "u1"}, nil)

		res := doRequest(t, router, http.MethodPost, "/api/register/", "", rest.RegisterRequest{
			Username: "u1",
			Password: "p1",
			IsStaff:  true,
		})
		assertStatus(t, http.StatusCreated, res)

		var actual rest.MessageResponse
		decodeResponse(t, res, &actual)

		if actual.Message != "User registered successfully." {
			t.Fatalf("unexpected message %q", actual.Message)
		}

		_, params := svc.users.RegisterArgsForCall(0)

		expected := internal.RegisterParams{Username: "u1", Password: "p1", IsStaff: true}
		if !cmp.Equal(expected, params) {
			t.Fatalf("expected params do not match: %s", cmp.Diff(expected, params))
		}
	})

	t.Run("ERR: 400 duplicate", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.users.RegisterReturns(internal.User{}, internal.WrapErrorf(
			validation.Errors{"username": errors.New("a user with that username already exists")},
			internal.ErrorCodeInvalidArgument, "invalid values"))

		res := doRequest(t, router, http.MethodPost, "/api/register/", "", rest.RegisterRequest{Username: "u1", Password: "p1"})
		assertStatus(t, http.StatusBadRequest, res)

		assertError(t, rest.ErrorResponse{
			Error:       "register failed",
			Validations: validation.Errors{"username": errors.New("")},
		}, res)
	})

	t.Run("ERR: 400 malformed", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()

		res := doRequest(t, router, http.MethodPost, "/api/register/", "", `{"username":`)
		assertStatus(t, http.StatusBadRequest, res)

		if svc.users.RegisterCallCount() != 0 {
			t.Fatalf("expected service not to be called")
		}
	})
}

func TestUserHandler_Token(t *testing.T) {
	t.Parallel()

	t.Run("OK: 200", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.users.TokenReturns(internal.TokenPair{Access: "a", Refresh: "r"}, nil)

		res := doRequest(t, router, http.MethodPost, "/api/token/", "", rest.TokenRequest{Username: "u1", Password: "p1"})
		assertStatus(t, http.StatusOK, res)

		var actual rest.TokenResponse
		decodeResponse(t, res, &actual)

		if !cmp.Equal(rest.TokenResponse{Access: "a", Refresh: "r"}, actual) {
			t.Fatalf("unexpected response %+v", actual)
		}
	})

	t.Run("ERR: 401", func(t *testing.T) {
		t.Parallel()

		router, svc := newRouter()
		svc.users.TokenReturns(internal.TokenPair{}, internal.NewErrorf(internal.ErrorCodeUnauthenticated, "no active account found with the given credentials"))

		res := doRequest(t, router, http.MethodPost, "/api/token/", "", rest.TokenRequest{Username: "u1", Password: "nope"})
		assertStatus(t, http.StatusUnauthorized, res)

		assertError(t, rest.ErrorResponse{Error: "no active account found with the given credentials"}, res)
	})
}

func TestUserHandler_Refresh(t *testing.T) {
	t.Parallel()

	router, svc := newRouter()
	svc.users.RefreshReturns("new-access", nil)

	res := doRequest(t, router, http.MethodPost, "/api/token/refresh/", "", rest.RefreshRequest{Refresh: "r"})
	assertStatus(t, http.StatusOK, res)

	var actual rest.RefreshResponse
	decodeResponse(t, res, &actual)

	if actual.Access != "new-access" {
		t.Fatalf("unexpected access token %q", actual.Access)
	}

	if _, refresh := svc.users.RefreshArgsForCall(0); refresh != "r" {
		t.Fatalf("unexpected refresh token %q", refresh)
	}
}
