package redis

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

const otelName = "github.com/aryasaumitra/projecthub-backend/internal/redis"

// UserStore is the datastore being cached.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string, isStaff bool) (internal.User, error)
	Find(ctx context.Context, id int64) (internal.User, error)
	FindByUsername(ctx context.Context, username string) (internal.User, error)
}

// User is a cache-aside decorator of UserStore. Users are never updated so entries are only expired.
type User struct {
	client     *redis.Client
	orig       UserStore
	expiration time.Duration
	logger     *zap.Logger
}

// NewUser instantiates the User cache.
func NewUser(client *redis.Client, orig UserStore, logger *zap.Logger) *User {
	return &User{
		client:     client,
		orig:       orig,
		expiration: 10 * time.Minute,
		logger:     logger,
	}
}

// Create stores the record, it is cached on first lookup.
func (u *User) Create(ctx context.Context, username, passwordHash string, isStaff bool) (internal.User, error) {
	defer newOTELSpan(ctx, "User.Create").End()

	user, err := u.orig.Create(ctx, username, passwordHash, isStaff)
	if err != nil {
		return internal.User{}, fmt.Errorf("orig.Create: %w", err)
	}

	return user, nil
}

// Find returns the cached record, falling back to the datastore on misses.
func (u *User) Find(ctx context.Context, id int64) (internal.User, error) {
	defer newOTELSpan(ctx, "User.Find").End()

	key := "user:" + strconv.FormatInt(id, 10)

	var res internal.User

	if err := u.get(ctx, key, &res); err == nil {
		return res, nil
	}

	res, err := u.orig.Find(ctx, id)
	if err != nil {
		return res, fmt.Errorf("orig.Find: %w", err)
	}

	u.set(ctx, key, &res)

	return res, nil
}

// FindByUsername always reads the datastore, credentials must not be served from cache.
func (u *User) FindByUsername(ctx context.Context, username string) (internal.User, error) {
	defer newOTELSpan(ctx, "User.FindByUsername").End()

	res, err := u.orig.FindByUsername(ctx, username)
	if err != nil {
		return res, fmt.Errorf("orig.FindByUsername: %w", err)
	}

	return res, nil
}

func (u *User) get(ctx context.Context, key string, target interface{}) error {
	val, err := u.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			u.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}

		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Get")
	}

	if err := gob.NewDecoder(bytes.NewReader(val)).Decode(target); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "gob.NewDecoder")
	}

	return nil
}

func (u *User) set(ctx context.Context, key string, value interface{}) {
	var b bytes.Buffer

	if err := gob.NewEncoder(&b).Encode(value); err != nil {
		return
	}

	if err := u.client.Set(ctx, key, b.Bytes(), u.expiration).Err(); err != nil {
		u.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemRedis)

	return span
}
