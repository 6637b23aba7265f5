package envvar_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aryasaumitra/projecthub-backend/internal/envvar"
)

type fakeProvider map[string]string

func (f fakeProvider) Get(key string) (string, error) {
	v, ok := f[key]
	if !ok {
		return "", errors.New("missing")
	}

	return v, nil
}

func TestConfiguration_Get(t *testing.T) {
	t.Setenv("PROJECTHUB_PLAIN", "plain")
	t.Setenv("PROJECTHUB_SECRET", "ignored")
	t.Setenv("PROJECTHUB_SECRET_SECURE", "database:password")
	t.Setenv("PROJECTHUB_MISSING_SECURE", "database:nope")

	conf := envvar.New(fakeProvider{"database:password": "s3cr3t"})

	tests := []struct {
		name     string
		key      string
		expected string
		withErr  bool
	}{
		{"plain value", "PROJECTHUB_PLAIN", "plain", false},
		{"unset value", "PROJECTHUB_UNSET", "", false},
		{"secure value", "PROJECTHUB_SECRET", "s3cr3t", false},
		{"secure value missing", "PROJECTHUB_MISSING", "", true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			actual, err := conf.Get(tt.key)
			if (err != nil) != tt.withErr {
				t.Fatalf("expected error %t, got %v", tt.withErr, err)
			}

			if actual != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, actual)
			}
		})
	}

	if _, err := envvar.New(nil).Get("PROJECTHUB_SECRET"); err == nil {
		t.Fatalf("expected error without provider")
	}
}

func TestLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.env")

	if err := os.WriteFile(filename, []byte("PROJECTHUB_FROM_FILE=loaded\n"), 0o600); err != nil {
		t.Fatalf("Couldn't write file: %s", err)
	}

	t.Setenv("PROJECTHUB_FROM_FILE", "")
	os.Unsetenv("PROJECTHUB_FROM_FILE")

	if err := envvar.Load(filename); err != nil {
		t.Fatalf("expected no error, got %s", err)
	}

	if v := os.Getenv("PROJECTHUB_FROM_FILE"); v != "loaded" {
		t.Fatalf("expected value from file, got %q", v)
	}

	if err := envvar.Load(""); err != nil {
		t.Fatalf("expected empty filename to be ignored, got %s", err)
	}

	if err := envvar.Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
