// Package policy defines the authorization rules applied to API requests.
package policy

import (
	"net/http"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

// Rule decides whether p may perform a request using method. p is nil for anonymous callers.
type Rule func(p *internal.Principal, method string) error

// All returns a Rule passing only when every rule passes, rules are evaluated in order.
func All(rules ...Rule) Rule {
	return func(p *internal.Principal, method string) error {
		for _, rule := range rules {
			if err := rule(p, method); err != nil {
				return err
			}
		}

		return nil
	}
}

// Authenticated requires a caller.
func Authenticated(p *internal.Principal, _ string) error {
	if p == nil {
		return internal.NewErrorf(internal.ErrorCodeUnauthenticated, "authentication credentials were not provided")
	}

	return nil
}

// StaffOrReadOnly allows safe methods to everybody and mutations to staff only.
func StaffOrReadOnly(p *internal.Principal, method string) error {
	if IsSafeMethod(method) {
		return nil
	}

	if p == nil || !p.IsStaff {
		return internal.NewErrorf(internal.ErrorCodePermissionDenied, "you do not have permission to perform this action")
	}

	return nil
}

// IsSafeMethod indicates whether method only reads.
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}

	return false
}

var (
	// AdminOrReadOnly guards resources any authenticated caller reads and only staff modifies.
	AdminOrReadOnly = All(Authenticated, StaffOrReadOnly)

	// OwnerOrAnyRead guards resources any authenticated caller may read and modify, record
	// ownership is enforced when querying.
	OwnerOrAnyRead = All(Authenticated)
)
