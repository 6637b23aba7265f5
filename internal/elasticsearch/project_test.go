package elasticsearch_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	esv7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/google/go-cmp/cmp"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/elasticsearch"
)

type request struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

type fakeServer struct {
	mu       sync.Mutex
	requests []request
	status   int
	response string
}

func (s *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path == "/" {
		_, _ = w.Write([]byte(`{"version":{"number":"7.17.10","build_flavor":"default"},"tagline":"You Know, for Search"}`))
		return
	}

	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)

	s.mu.Lock()
	s.requests = append(s.requests, request{Method: r.Method, Path: r.URL.Path, Body: body})
	status, response := s.status, s.response
	s.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}

	w.WriteHeader(status)
	_, _ = w.Write([]byte(response))
}

func newProject(t *testing.T, srv *fakeServer) *elasticsearch.Project {
	t.Helper()

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	client, err := esv7.NewClient(esv7.Config{Addresses: []string{ts.URL}})
	if err != nil {
		t.Fatalf("NewClient failed: %s", err)
	}

	return elasticsearch.NewProject(client)
}

func TestProject_Index(t *testing.T) {
	t.Parallel()

	srv := &fakeServer{response: `{"result":"created"}`}
	repo := newProject(t, srv)

	err := repo.Index(context.Background(), internal.Project{
		ID:          7,
		Name:        "Alpha",
		Description: "first",
		StartDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected no error, got %s", err)
	}

	expected := []request{
		{
			Method: http.MethodPut,
			Path:   "/projects/_doc/7",
			Body: map[string]interface{}{
				"id":          float64(7),
				"name":        "Alpha",
				"description": "first",
				"start_date":  "2024-01-02",
				"end_date":    "2024-03-04",
			},
		},
	}

	if !cmp.Equal(expected, srv.requests) {
		t.Fatalf("expected requests do not match: %s", cmp.Diff(expected, srv.requests))
	}
}

func TestProject_Delete(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		srv := &fakeServer{response: `{"result":"deleted"}`}
		repo := newProject(t, srv)

		if err := repo.Delete(context.Background(), 9); err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		if len(srv.requests) != 1 || srv.requests[0].Method != http.MethodDelete || srv.requests[0].Path != "/projects/_doc/9" {
			t.Fatalf("unexpected requests %v", srv.requests)
		}
	})

	t.Run("ERR: status", func(t *testing.T) {
		t.Parallel()

		srv := &fakeServer{status: http.StatusInternalServerError, response: `{}`}
		repo := newProject(t, srv)

		err := repo.Delete(context.Background(), 9)

		var ierr *internal.Error
		if !errors.As(err, &ierr) || ierr.Code() != internal.ErrorCodeUnknown {
			t.Fatalf("expected unknown error, got %v", err)
		}
	})
}

func TestProject_Search(t *testing.T) {
	t.Parallel()

	t.Run("OK: words", func(t *testing.T) {
		t.Parallel()

		srv := &fakeServer{
			response: `{"hits":{"total":{"value":11},"hits":[{"_source":{"id":3,"name":"Alpha","description":"soup","start_date":"2024-01-02","end_date":"2024-03-04"}}]}}`,
		}
		repo := newProject(t, srv)

		res, err := repo.Search(context.Background(), internal.SearchParams{Term: "Al*, soup", Page: 2, Size: 10})
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		expected := internal.ProjectSearchResults{
			Projects: []internal.Project{
				{
					ID:          3,
					Name:        "Alpha",
					Description: "soup",
					StartDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
					EndDate:     time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
				},
			},
			Total: 11,
		}

		if !cmp.Equal(expected, res) {
			t.Fatalf("expected result does not match: %s", cmp.Diff(expected, res))
		}

		if len(srv.requests) != 1 {
			t.Fatalf("expected one request, got %d", len(srv.requests))
		}

		body := srv.requests[0].Body

		if body["from"] != float64(10) || body["size"] != float64(10) {
			t.Fatalf("unexpected paging %v %v", body["from"], body["size"])
		}

		raw, _ := json.Marshal(body["query"])
		query := string(raw)

		for _, pattern := range []string{`"*al\\**"`, `"*soup*"`} {
			if !strings.Contains(query, pattern) {
				t.Fatalf("expected query to contain %s, got %s", pattern, query)
			}
		}
	})

	t.Run("OK: match all", func(t *testing.T) {
		t.Parallel()

		srv := &fakeServer{response: `{"hits":{"total":{"value":0},"hits":[]}}`}
		repo := newProject(t, srv)

		res, err := repo.Search(context.Background(), internal.SearchParams{Page: 1, Size: 10})
		if err != nil {
			t.Fatalf("expected no error, got %s", err)
		}

		if res.Total != 0 || len(res.Projects) != 0 {
			t.Fatalf("expected empty result, got %v", res)
		}

		if _, ok := srv.requests[0].Body["query"].(map[string]interface{})["match_all"]; !ok {
			t.Fatalf("expected match_all query, got %v", srv.requests[0].Body["query"])
		}
	})

	t.Run("ERR: status", func(t *testing.T) {
		t.Parallel()

		srv := &fakeServer{status: http.StatusBadRequest, response: `{}`}
		repo := newProject(t, srv)

		_, err := repo.Search(context.Background(), internal.SearchParams{Page: 1, Size: 10})

		var ierr *internal.Error
		if !errors.As(err, &ierr) || ierr.Code() != internal.ErrorCodeUnknown {
			t.Fatalf("expected unknown error, got %v", err)
		}
	})
}
