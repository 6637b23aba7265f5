package postgresql_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/postgresql"
)

// newTestPool connects to the database named by PROJECTHUB_TEST_DATABASE_URL and migrates a
// throwaway schema that is dropped when the test completes.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("PROJECTHUB_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("PROJECTHUB_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	admin, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("Couldn't connect: %s", err)
	}

	t.Cleanup(admin.Close)

	if _, err := admin.Exec(ctx, "CREATE SCHEMA "+schema); err != nil {
		t.Fatalf("Couldn't create schema: %s", err)
	}

	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
	})

	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("Couldn't parse config: %s", err)
	}

	conf.ConnConfig.RuntimeParams["search_path"] = schema

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		t.Fatalf("Couldn't connect: %s", err)
	}

	t.Cleanup(pool.Close)

	files, err := filepath.Glob(filepath.Join("..", "..", "db", "migrations", "*.sql"))
	if err != nil || len(files) == 0 {
		t.Fatalf("Couldn't find migrations: %v", err)
	}

	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			t.Fatalf("Couldn't read migration: %s", err)
		}

		up, _, _ := strings.Cut(string(b), "---- create above / drop below ----")

		if _, err := pool.Exec(ctx, up); err != nil {
			t.Fatalf("Couldn't migrate %s: %s", file, err)
		}
	}

	return pool
}

func TestIntegration(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	users := postgresql.NewUser(pool)
	projects := postgresql.NewProject(pool)
	tasks := postgresql.NewTask(pool)

	alice, err := users.Create(ctx, "alice", "hash", false)
	if err != nil {
		t.Fatalf("expected no error, got %s", err)
	}

	bob, _ := users.Create(ctx, "bob", "hash", false)

	if _, err := users.Create(ctx, "alice", "hash", false); !hasCode(err, internal.ErrorCodeInvalidArgument) {
		t.Fatalf("expected duplicate username to be rejected, got %v", err)
	}

	found, err := users.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("expected no error, got %s", err)
	}

	if !cmp.Equal(alice, found) {
		t.Fatalf("expected result does not match: %s", cmp.Diff(alice, found))
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	project, err := projects.Create(ctx, internal.ProjectParams{
		Name:        "Alpha 50% done",
		Description: "first",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 10),
	})
	if err != nil {
		t.Fatalf("expected no error, got %s", err)
	}

	if _, err := projects.Create(ctx, internal.ProjectParams{Name: "Beta", Description: "second", StartDate: start, EndDate: start}); err != nil {
		t.Fatalf("expected no error, got %s", err)
	}

	t.Run("Project.Search", func(t *testing.T) {
		res, err := projects.Search(ctx, internal.SearchParams{Term: "alpha 50%", Page: 1, Size: 10})
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		expected := internal.ProjectSearchResults{Projects: []internal.Project{project}, Total: 1}
		if !cmp.Equal(expected, res) {
			t.Fatalf("expected result does not match: %s", cmp.Diff(expected, res))
		}

		res, err = projects.Search(ctx, internal.SearchParams{Term: "5_%", Page: 1, Size: 10})
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		if res.Total != 0 {
			t.Fatalf("expected wildcards to be matched literally, got %+v", res)
		}

		res, err = projects.Search(ctx, internal.SearchParams{Page: 2, Size: 1})
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		if res.Total != 2 || len(res.Projects) != 1 || res.Projects[0].Name != "Beta" {
			t.Fatalf("expected second page to hold Beta, got %+v", res)
		}
	})

	due := start.AddDate(0, 0, 3)

	aliceTask, err := tasks.Create(ctx, internal.TaskParams{Title: "write docs", Description: "d", DueDate: due, ProjectID: project.ID, AssignedTo: alice.ID})
	if err != nil {
		t.Fatalf("expected no error, got %s", err)
	}

	if aliceTask.Status != internal.TaskStatusPending {
		t.Fatalf("expected default status, got %q", aliceTask.Status)
	}

	bobTask, err := tasks.Create(ctx, internal.TaskParams{Title: "review docs", Description: "d", DueDate: due, ProjectID: project.ID, AssignedTo: bob.ID})
	if err != nil {
		t.Fatalf("expected no error, got %s", err)
	}

	t.Run("Task ownership", func(t *testing.T) {
		res, err := tasks.Search(ctx, &alice.ID, internal.SearchParams{Term: "docs", Page: 1, Size: 10})
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		expected := internal.TaskSearchResults{Tasks: []internal.Task{aliceTask}, Total: 1}
		if !cmp.Equal(expected, res) {
			t.Fatalf("expected result does not match: %s", cmp.Diff(expected, res))
		}

		if _, err := tasks.Find(ctx, bobTask.ID, &alice.ID); !hasCode(err, internal.ErrorCodeNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}

		status := internal.TaskStatusCompleted

		updated, err := tasks.Update(ctx, aliceTask.ID, &alice.ID, internal.TaskUpdateParams{Status: &status})
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		if updated.Status != status || updated.Title != aliceTask.Title {
			t.Fatalf("expected only the status to change, got %+v", updated)
		}

		if err := tasks.Delete(ctx, bobTask.ID, &alice.ID); !hasCode(err, internal.ErrorCodeNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("Project.Delete cascades", func(t *testing.T) {
		if err := projects.Delete(ctx, project.ID); err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		if _, err := tasks.Find(ctx, bobTask.ID, nil); !hasCode(err, internal.ErrorCodeNotFound) {
			t.Fatalf("expected task to be removed with its project, got %v", err)
		}

		if err := projects.Delete(ctx, project.ID); !hasCode(err, internal.ErrorCodeNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func hasCode(err error, code internal.ErrorCode) bool {
	var ierr *internal.Error
	return errors.As(err, &ierr) && ierr.Code() == code
}
