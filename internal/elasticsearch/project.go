package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	esv7 "github.com/elastic/go-elasticsearch/v7"
	esv7api "github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/mercari/go-circuitbreaker"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

const (
	otelName   = "github.com/aryasaumitra/projecthub-backend/internal/elasticsearch"
	dateLayout = "2006-01-02"
)

// Project represents the repository used for interacting with indexed Project records.
type Project struct {
	client *esv7.Client
	index  string
	cb     *circuitbreaker.CircuitBreaker
}

type indexedProject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// NewProject instantiates the Project repository.
func NewProject(client *esv7.Client) *Project {
	return &Project{
		client: client,
		index:  "projects",
		cb: circuitbreaker.New(
			circuitbreaker.WithOpenTimeout(10*time.Second),
			circuitbreaker.WithTripFunc(circuitbreaker.NewTripFuncConsecutiveFailures(3)),
		),
	}
}

// Index creates or updates a project in the index.
func (p *Project) Index(ctx context.Context, project internal.Project) error {
	defer newOTELSpan(ctx, "Project.Index").End()

	body := indexedProject{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate.Format(dateLayout),
		EndDate:     project.EndDate.Format(dateLayout),
	}

	var buf bytes.Buffer

	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.NewEncoder.Encode")
	}

	req := esv7api.IndexRequest{
		Index:      p.index,
		Body:       &buf,
		DocumentID: strconv.FormatInt(project.ID, 10),
		Refresh:    "true",
	}

	resp, err := req.Do(ctx, p.client)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "IndexRequest.Do")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return internal.NewErrorf(internal.ErrorCodeUnknown, "IndexRequest.Do %d", resp.StatusCode)
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// Delete removes a project from the index.
func (p *Project) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Project.Delete").End()

	req := esv7api.DeleteRequest{
		Index:      p.index,
		DocumentID: strconv.FormatInt(id, 10),
	}

	resp, err := req.Do(ctx, p.client)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "DeleteRequest.Do")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return internal.NewErrorf(internal.ErrorCodeUnknown, "DeleteRequest.Do %d", resp.StatusCode)
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// Search returns the page of projects whose name or description contain every search word.
func (p *Project) Search(ctx context.Context, args internal.SearchParams) (internal.ProjectSearchResults, error) {
	defer newOTELSpan(ctx, "Project.Search").End()

	res, err := p.cb.Do(ctx, func() (interface{}, error) {
		return p.search(ctx, args)
	})
	if err != nil {
		return internal.ProjectSearchResults{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "search")
	}

	return res.(internal.ProjectSearchResults), nil
}

func (p *Project) search(ctx context.Context, args internal.SearchParams) (internal.ProjectSearchResults, error) {
	var query map[string]interface{}

	if words := args.Words(); len(words) > 0 {
		must := make([]interface{}, 0, len(words))
		for _, w := range words {
			pattern := "*" + escapeWildcard(strings.ToLower(w)) + "*"

			must = append(must, map[string]interface{}{
				"bool": map[string]interface{}{
					"should": []interface{}{
						map[string]interface{}{
							"wildcard": map[string]interface{}{
								"name": map[string]interface{}{"value": pattern, "case_insensitive": true},
							},
						},
						map[string]interface{}{
							"wildcard": map[string]interface{}{
								"description": map[string]interface{}{"value": pattern, "case_insensitive": true},
							},
						},
					},
				},
			})
		}

		query = map[string]interface{}{
			"query": map[string]interface{}{
				"bool": map[string]interface{}{
					"must": must,
				},
			},
		}
	} else {
		query = map[string]interface{}{
			"query": map[string]interface{}{
				"match_all": map[string]interface{}{},
			},
		}
	}

	query["sort"] = []interface{}{
		map[string]interface{}{"id": "asc"},
	}

	query["from"] = args.Offset()
	query["size"] = args.Size
	query["track_total_hits"] = true

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return internal.ProjectSearchResults{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.NewEncoder.Encode")
	}

	req := esv7api.SearchRequest{
		Index: []string{p.index},
		Body:  &buf,
	}

	resp, err := req.Do(ctx, p.client)
	if err != nil {
		return internal.ProjectSearchResults{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "SearchRequest.Do")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return internal.ProjectSearchResults{}, internal.NewErrorf(internal.ErrorCodeUnknown, "SearchRequest.Do %d", resp.StatusCode)
	}

	var hits struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source indexedProject `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return internal.ProjectSearchResults{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.NewDecoder.Decode")
	}

	res := make([]internal.Project, len(hits.Hits.Hits))
	for i, hit := range hits.Hits.Hits {
		res[i].ID = hit.Source.ID
		res[i].Name = hit.Source.Name
		res[i].Description = hit.Source.Description
		res[i].StartDate, _ = time.Parse(dateLayout, hit.Source.StartDate)
		res[i].EndDate, _ = time.Parse(dateLayout, hit.Source.EndDate)
	}

	return internal.ProjectSearchResults{
		Projects: res,
		Total:    hits.Hits.Total.Value,
	}, nil
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func escapeWildcard(s string) string {
	return wildcardEscaper.Replace(s)
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemElasticsearch)

	return span
}
