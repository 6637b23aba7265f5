package rest

import (
	"net/http"
	"strings"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/policy"
)

//go:generate counterfeiter -o resttesting/token_verifier.gen.go . TokenVerifier

// TokenVerifier defines the component verifying access tokens.
type TokenVerifier interface {
	VerifyAccess(token string) (internal.Principal, error)
}

// Authenticate returns a middleware resolving the caller from the "Authorization: Bearer" header.
// Requests without the header continue anonymously, a malformed or invalid token is rejected.
func Authenticate(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				renderErrorResponse(r.Context(), w, "",
					internal.NewErrorf(internal.ErrorCodeUnauthenticated, "authorization header must contain two space-delimited values"))
				return
			}

			p, err := tokens.VerifyAccess(strings.TrimSpace(token))
			if err != nil {
				renderErrorResponse(r.Context(), w, "", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(internal.WithPrincipal(r.Context(), p)))
		})
	}
}

// Authorize returns a middleware rejecting requests not allowed by rule.
func Authorize(rule policy.Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := rule(internal.PrincipalFromContext(r.Context()), r.Method); err != nil {
				renderErrorResponse(r.Context(), w, "", err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// caller returns the authenticated caller, Authorize guarantees it is set.
func caller(r *http.Request) internal.Principal {
	if p := internal.PrincipalFromContext(r.Context()); p != nil {
		return *p
	}

	return internal.Principal{}
}
