package postgresql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/postgresql/db"
)

//go:generate sqlc generate

const otelName = "github.com/aryasaumitra/projecthub-backend/internal/postgresql"

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// newPatterns converts search words into case insensitive substring patterns.
func newPatterns(words []string) []string {
	res := make([]string, len(words))
	for i, w := range words {
		res[i] = "%" + likeEscaper.Replace(w) + "%"
	}

	return res
}

func newDate(t time.Time) pgtype.Date {
	return pgtype.Date{
		Time:  t,
		Valid: !t.IsZero(),
	}
}

func newNullDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}

	return newDate(*t)
}

func newNullText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: *s, Valid: true}
}

func newNullInt8(i *int64) pgtype.Int8 {
	if i == nil {
		return pgtype.Int8{}
	}

	return pgtype.Int8{Int64: *i, Valid: true}
}

func convertStatus(s db.TaskStatus) internal.TaskStatus {
	return internal.TaskStatus(s)
}

func newNullStatus(s *internal.TaskStatus) db.NullTaskStatus {
	if s == nil {
		return db.NullTaskStatus{}
	}

	return db.NullTaskStatus{TaskStatus: db.TaskStatus(*s), Valid: true}
}

// convertError maps driver errors to domain errors, msg describes the failed operation.
func convertError(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return internal.WrapErrorf(err, internal.ErrorCodeNotFound, "%s: not found", msg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "%s: already exists", msg)
		case codeForeignKeyViolation:
			return internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "%s: referenced record does not exist", msg)
		}
	}

	return internal.WrapErrorf(err, internal.ErrorCodeUnknown, msg)
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemPostgreSQL)

	return span
}
