package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

//go:generate counterfeiter -o resttesting/user_service.gen.go . UserService

// UserService defines the application service in charge of registering and authenticating users.
type UserService interface {
	Register(ctx context.Context, params internal.RegisterParams) (internal.User, error)
	Token(ctx context.Context, username, password string) (internal.TokenPair, error)
	Refresh(ctx context.Context, refresh string) (string, error)
}

// UserHandler handles registration and token issuing.
type UserHandler struct {
	svc UserService
}

// NewUserHandler instantiates the User handler.
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// Register connects the handlers to the router.
func (u *UserHandler) Register(r chi.Router) {
	r.Post("/register/", u.register)
	r.Post("/token/", u.token)
	r.Post("/token/refresh/", u.refresh)
}

// RegisterRequest defines the request used for registering users.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsStaff  bool   `json:"is_staff"`
}

// MessageResponse defines a response carrying a human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

func (u *UserHandler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	if _, err := u.svc.Register(r.Context(), internal.RegisterParams{
		Username: req.Username,
		Password: req.Password,
		IsStaff:  req.IsStaff,
	}); err != nil {
		renderErrorResponse(r.Context(), w, "register failed", err)
		return
	}

	renderResponse(w, &MessageResponse{Message: "User registered successfully."}, http.StatusCreated)
}

// TokenRequest defines the request used for obtaining a token pair.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse defines the response returned back after obtaining a token pair.
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (u *UserHandler) token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := decodeRequest(r, &req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	pair, err := u.svc.Token(r.Context(), req.Username, req.Password)
	if err != nil {
		renderErrorResponse(r.Context(), w, "token failed", err)
		return
	}

	renderResponse(w, &TokenResponse{Access: pair.Access, Refresh: pair.Refresh}, http.StatusOK)
}

// RefreshRequest defines the request used for renewing an access token.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse defines the response returned back after renewing an access token.
type RefreshResponse struct {
	Access string `json:"access"`
}

func (u *UserHandler) refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := decodeRequest(r, &req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request", err)
		return
	}

	access, err := u.svc.Refresh(r.Context(), req.Refresh)
	if err != nil {
		renderErrorResponse(r.Context(), w, "refresh failed", err)
		return
	}

	renderResponse(w, &RefreshResponse{Access: access}, http.StatusOK)
}
