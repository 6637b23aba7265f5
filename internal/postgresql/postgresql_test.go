package postgresql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

func TestNewPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  []string
		output []string
	}{
		{"empty", nil, []string{}},
		{"plain", []string{"alpha", "Beta"}, []string{"%alpha%", "%Beta%"}},
		{"wildcards escaped", []string{"50%", "a_b", `c\d`}, []string{`%50\%%`, `%a\_b%`, `%c\\d%`}},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if actual := newPatterns(tt.input); !cmp.Equal(tt.output, actual) {
				t.Fatalf("expected result does not match: %s", cmp.Diff(tt.output, actual))
			}
		})
	}
}

func TestConvertError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input error
		code  internal.ErrorCode
	}{
		{"no rows", fmt.Errorf("select: %w", pgx.ErrNoRows), internal.ErrorCodeNotFound},
		{"unique violation", &pgconn.PgError{Code: codeUniqueViolation}, internal.ErrorCodeInvalidArgument},
		{"foreign key violation", &pgconn.PgError{Code: codeForeignKeyViolation}, internal.ErrorCodeInvalidArgument},
		{"other", errors.New("connection reset"), internal.ErrorCodeUnknown},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := convertError(tt.input, "op")

			var ierr *internal.Error
			if !errors.As(err, &ierr) {
				t.Fatalf("expected internal.Error, got %T", err)
			}

			if ierr.Code() != tt.code {
				t.Fatalf("expected code %d, got %d", tt.code, ierr.Code())
			}

			if !errors.Is(err, tt.input) {
				t.Fatalf("expected original error to be wrapped")
			}
		})
	}
}
