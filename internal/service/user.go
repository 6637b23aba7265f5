package service

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

// UserRepository defines the datastore handling persisting User records.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string, isStaff bool) (internal.User, error)
	Find(ctx context.Context, id int64) (internal.User, error)
	FindByUsername(ctx context.Context, username string) (internal.User, error)
}

// TokenIssuer defines the component issuing and verifying bearer tokens.
type TokenIssuer interface {
	Pair(p internal.Principal) (internal.TokenPair, error)
	Access(p internal.Principal) (string, error)
	VerifyRefresh(token string) (internal.Principal, error)
}

// User defines the application service in charge of registering and authenticating Users.
type User struct {
	logger   *zap.Logger
	repo     UserRepository
	tokens   TokenIssuer
	hashCost int
	dummy    []byte
}

// NewUser instantiates the User service.
func NewUser(logger *zap.Logger, repo UserRepository, tokens TokenIssuer) *User {
	return newUser(logger, repo, tokens, bcrypt.DefaultCost)
}

func newUser(logger *zap.Logger, repo UserRepository, tokens TokenIssuer, cost int) *User {
	// Compared against when the username is unknown so both failures take the same time.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("dummy-password"), cost)

	return &User{
		logger:   logger,
		repo:     repo,
		tokens:   tokens,
		hashCost: cost,
		dummy:    dummy,
	}
}

// Register creates a new User, the password is stored hashed.
func (u *User) Register(ctx context.Context, params internal.RegisterParams) (internal.User, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "User.Register")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.User{}, fmt.Errorf("params.Validate: %w", err)
	}

	_, err := u.repo.FindByUsername(ctx, params.Username)
	switch {
	case err == nil:
		return internal.User{}, internal.WrapErrorf(
			validation.Errors{"username": errors.New("a user with that username already exists")},
			internal.ErrorCodeInvalidArgument, "username already exists")
	case !hasCode(err, internal.ErrorCodeNotFound):
		return internal.User{}, fmt.Errorf("repo find by username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), u.hashCost)
	if err != nil {
		return internal.User{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "bcrypt.GenerateFromPassword")
	}

	user, err := u.repo.Create(ctx, params.Username, string(hash), params.IsStaff)
	if err != nil {
		return internal.User{}, fmt.Errorf("repo create: %w", err)
	}

	u.logger.Info("user registered", zap.Int64("id", user.ID), zap.Bool("is_staff", user.IsStaff))

	return user, nil
}

// Token verifies the credentials and returns a new access and refresh token pair.
func (u *User) Token(ctx context.Context, username, password string) (internal.TokenPair, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "User.Token")
	defer span.End()

	if err := (validation.Errors{
		"username": validation.Validate(username, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}).Filter(); err != nil {
		return internal.TokenPair{}, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "invalid values")
	}

	user, err := u.repo.FindByUsername(ctx, username)
	if err != nil {
		if !hasCode(err, internal.ErrorCodeNotFound) {
			return internal.TokenPair{}, fmt.Errorf("repo find by username: %w", err)
		}

		_ = bcrypt.CompareHashAndPassword(u.dummy, []byte(password))

		return internal.TokenPair{}, errInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return internal.TokenPair{}, errInvalidCredentials()
	}

	pair, err := u.tokens.Pair(user.Principal())
	if err != nil {
		return internal.TokenPair{}, fmt.Errorf("tokens.Pair: %w", err)
	}

	return pair, nil
}

// Refresh returns a new access token carrying the current claims of the refresh token's User.
func (u *User) Refresh(ctx context.Context, refresh string) (string, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "User.Refresh")
	defer span.End()

	if err := validation.Validate(refresh, validation.Required); err != nil {
		return "", internal.WrapErrorf(validation.Errors{"refresh": err}, internal.ErrorCodeInvalidArgument, "invalid values")
	}

	principal, err := u.tokens.VerifyRefresh(refresh)
	if err != nil {
		return "", fmt.Errorf("tokens.VerifyRefresh: %w", err)
	}

	user, err := u.repo.Find(ctx, principal.UserID)
	if err != nil {
		if hasCode(err, internal.ErrorCodeNotFound) {
			return "", internal.WrapErrorf(err, internal.ErrorCodeUnauthenticated, "user not found")
		}

		return "", fmt.Errorf("repo find: %w", err)
	}

	access, err := u.tokens.Access(user.Principal())
	if err != nil {
		return "", fmt.Errorf("tokens.Access: %w", err)
	}

	return access, nil
}

func errInvalidCredentials() error {
	return internal.NewErrorf(internal.ErrorCodeUnauthenticated, "no active account found with the given credentials")
}
