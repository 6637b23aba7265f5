package internal

import (
	"context"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var usernameRegexp = regexp.MustCompile(`^[\w.@+-]+$`)

// User is an account allowed to authenticate against the API.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	IsStaff      bool
}

// Principal returns the identity used when authorizing requests made by this User.
func (u User) Principal() Principal {
	return Principal{
		UserID:   u.ID,
		Username: u.Username,
		IsStaff:  u.IsStaff,
	}
}

// RegisterParams defines the arguments used for registering users.
type RegisterParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsStaff  bool   `json:"is_staff"`
}

// Validate indicates whether the fields are valid or not.
func (p RegisterParams) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Username,
			validation.Required,
			validation.Length(1, 150),
			validation.Match(usernameRegexp).Error("may contain only letters, numbers, and @/./+/-/_ characters")),
		validation.Field(&p.Password, validation.Required),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "invalid values")
	}

	return nil
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID   int64
	Username string
	IsStaff  bool
}

// TokenPair holds the credentials returned after a successful login.
type TokenPair struct {
	Access  string
	Refresh string
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the Principal stored in ctx, nil when the request is anonymous.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok {
		return nil
	}

	return &p
}
