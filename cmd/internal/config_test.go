package internal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	cmdinternal "github.com/aryasaumitra/projecthub-backend/cmd/internal"
	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/auth"
	"github.com/aryasaumitra/projecthub-backend/internal/envvar"
)

func assertCode(t *testing.T, err error, code internal.ErrorCode) {
	t.Helper()

	var ierr *internal.Error
	if !errors.As(err, &ierr) || ierr.Code() != code {
		t.Fatalf("expected error code %d, got %v", code, err)
	}
}

func TestNewTokensConfig(t *testing.T) {
	t.Run("OK: defaults", func(t *testing.T) {
		t.Setenv("JWT_SIGNING_KEY", "secret")
		t.Setenv("JWT_ISSUER", "")
		t.Setenv("JWT_ACCESS_TTL", "")
		t.Setenv("JWT_REFRESH_TTL", "")

		actual, err := cmdinternal.NewTokensConfig(envvar.New(nil))
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		expected := auth.Config{
			SigningKey: []byte("secret"),
			Issuer:     "projecthub",
			AccessTTL:  5 * time.Minute,
			RefreshTTL: 24 * time.Hour,
		}

		if !cmp.Equal(expected, actual) {
			t.Fatalf("expected config does not match: %s", cmp.Diff(expected, actual))
		}
	})

	t.Run("OK: overrides", func(t *testing.T) {
		t.Setenv("JWT_SIGNING_KEY", "secret")
		t.Setenv("JWT_ISSUER", "hub")
		t.Setenv("JWT_ACCESS_TTL", "1m")
		t.Setenv("JWT_REFRESH_TTL", "2h")

		actual, err := cmdinternal.NewTokensConfig(envvar.New(nil))
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		if actual.Issuer != "hub" || actual.AccessTTL != time.Minute || actual.RefreshTTL != 2*time.Hour {
			t.Fatalf("unexpected config %+v", actual)
		}
	})

	t.Run("ERR: missing key", func(t *testing.T) {
		t.Setenv("JWT_SIGNING_KEY", "")

		_, err := cmdinternal.NewTokensConfig(envvar.New(nil))
		assertCode(t, err, internal.ErrorCodeInvalidArgument)
	})

	t.Run("ERR: invalid ttl", func(t *testing.T) {
		t.Setenv("JWT_SIGNING_KEY", "secret")
		t.Setenv("JWT_ACCESS_TTL", "soon")

		_, err := cmdinternal.NewTokensConfig(envvar.New(nil))
		assertCode(t, err, internal.ErrorCodeInvalidArgument)
	})
}

func TestNewPageSize(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		output int
		code   *internal.ErrorCode
	}{
		{"OK: default", "", 10, nil},
		{"OK: configured", "25", 25, nil},
		{"ERR: zero", "0", 0, codePtr(internal.ErrorCodeInvalidArgument)},
		{"ERR: text", "many", 0, codePtr(internal.ErrorCodeInvalidArgument)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PAGE_SIZE", tt.value)

			actual, err := cmdinternal.NewPageSize(envvar.New(nil))
			if tt.code != nil {
				assertCode(t, err, *tt.code)
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %s", err)
			}

			if actual != tt.output {
				t.Fatalf("expected %d, got %d", tt.output, actual)
			}
		})
	}
}

func TestBackend(t *testing.T) {
	t.Run("OK: default", func(t *testing.T) {
		t.Setenv("MESSAGE_BROKER", "")

		actual, err := cmdinternal.Backend(envvar.New(nil), "MESSAGE_BROKER", "none", "kafka", "rabbitmq")
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		if actual != "none" {
			t.Fatalf("expected none, got %s", actual)
		}
	})

	t.Run("OK: allowed", func(t *testing.T) {
		t.Setenv("MESSAGE_BROKER", "kafka")

		actual, err := cmdinternal.Backend(envvar.New(nil), "MESSAGE_BROKER", "none", "kafka", "rabbitmq")
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		if actual != "kafka" {
			t.Fatalf("expected kafka, got %s", actual)
		}
	})

	t.Run("ERR: unknown", func(t *testing.T) {
		t.Setenv("MESSAGE_BROKER", "nats")

		_, err := cmdinternal.Backend(envvar.New(nil), "MESSAGE_BROKER", "none", "kafka", "rabbitmq")
		assertCode(t, err, internal.ErrorCodeInvalidArgument)
	})

	t.Run("ERR: secure without provider", func(t *testing.T) {
		t.Setenv("MESSAGE_BROKER", "")
		t.Setenv("MESSAGE_BROKER_SECURE", "/broker:name")

		_, err := cmdinternal.Backend(envvar.New(nil), "MESSAGE_BROKER", "none", "kafka", "rabbitmq")
		assertCode(t, err, internal.ErrorCodeUnknown)
	})
}

func TestNewBackends(t *testing.T) {
	tests := []struct {
		name   string
		search string
		broker string
		code   *internal.ErrorCode
	}{
		{"OK: defaults", "", "", nil},
		{"OK: postgresql without broker", "postgresql", "none", nil},
		{"OK: elasticsearch with kafka", "elasticsearch", "kafka", nil},
		{"OK: elasticsearch with rabbitmq", "elasticsearch", "rabbitmq", nil},
		{"ERR: elasticsearch without broker", "elasticsearch", "none", codePtr(internal.ErrorCodeInvalidArgument)},
		{"ERR: elasticsearch with default broker", "elasticsearch", "", codePtr(internal.ErrorCodeInvalidArgument)},
		{"ERR: unknown search", "solr", "kafka", codePtr(internal.ErrorCodeInvalidArgument)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SEARCH_BACKEND", tt.search)
			t.Setenv("MESSAGE_BROKER", tt.broker)

			search, broker, err := cmdinternal.NewBackends(envvar.New(nil))
			if tt.code != nil {
				assertCode(t, err, *tt.code)
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %s", err)
			}

			if search == "" || broker == "" {
				t.Fatalf("expected backends, got %q %q", search, broker)
			}
		})
	}
}

func codePtr(c internal.ErrorCode) *internal.ErrorCode {
	return &c
}
