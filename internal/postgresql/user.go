package postgresql

import (
	"context"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/postgresql/db"
)

// User represents the repository used for interacting with User records.
type User struct {
	q *db.Queries
}

// NewUser instantiates the User repository.
func NewUser(d db.DBTX) *User {
	return &User{
		q: db.New(d),
	}
}

// Create inserts a new user record.
func (u *User) Create(ctx context.Context, username, passwordHash string, isStaff bool) (internal.User, error) {
	defer newOTELSpan(ctx, "User.Create").End()

	id, err := u.q.InsertUser(ctx, db.InsertUserParams{
		Username: username,
		Password: passwordHash,
		IsStaff:  isStaff,
	})
	if err != nil {
		return internal.User{}, convertError(err, "insert user")
	}

	return internal.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		IsStaff:      isStaff,
	}, nil
}

// Find returns the requested user by id.
func (u *User) Find(ctx context.Context, id int64) (internal.User, error) {
	defer newOTELSpan(ctx, "User.Find").End()

	res, err := u.q.SelectUser(ctx, id)
	if err != nil {
		return internal.User{}, convertError(err, "select user")
	}

	return convertUser(res), nil
}

// FindByUsername returns the requested user by username.
func (u *User) FindByUsername(ctx context.Context, username string) (internal.User, error) {
	defer newOTELSpan(ctx, "User.FindByUsername").End()

	res, err := u.q.SelectUserByUsername(ctx, username)
	if err != nil {
		return internal.User{}, convertError(err, "select user by username")
	}

	return convertUser(res), nil
}

func convertUser(u db.Users) internal.User {
	return internal.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.Password,
		IsStaff:      u.IsStaff,
	}
}
