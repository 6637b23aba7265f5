package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/aryasaumitra/projecthub-backend/internal/rest"
)

func main() {
	var address, username, password, jaegerEndpoint string

	flag.StringVar(&address, "address", "http://127.0.0.1:9234", "ProjectHub API address")
	flag.StringVar(&username, "username", "admin", "Staff username, registered when missing")
	flag.StringVar(&password, "password", "admin", "Staff password")
	flag.StringVar(&jaegerEndpoint, "jaeger", "", "Jaeger collector endpoint, for example http://localhost:14268/api/traces")
	flag.Parse()

	tp := initTracer(jaegerEndpoint)

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = tp.Shutdown(ctx)
	}()

	c := &client{
		address: address,
		http:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}

	ctx := context.Background()

	//- Authentication

	status, err := c.do(ctx, http.MethodPost, "/api/register/", rest.RegisterRequest{
		Username: username,
		Password: password,
		IsStaff:  true,
	}, nil)
	if err != nil && status != http.StatusBadRequest {
		log.Fatalf("Couldn't register: %s", err)
	}

	var pair rest.TokenResponse

	if _, err := c.do(ctx, http.MethodPost, "/api/token/", rest.TokenRequest{Username: username, Password: password}, &pair); err != nil {
		log.Fatalf("Couldn't obtain token: %s", err)
	}

	c.token = pair.Access

	userID, err := userIDFromToken(pair.Access)
	if err != nil {
		log.Fatalf("Couldn't read token: %s", err)
	}

	fmt.Printf("Authenticated\n\tUser ID: %d\n", userID)

	//- Projects

	var project rest.Project

	if _, err := c.do(ctx, http.MethodPost, "/api/projects/", rest.CreateProjectRequest{
		Name:        "Project Alpha",
		Description: "Created by the smoke client",
		StartDate:   rest.NewDate(time.Now()),
		EndDate:     rest.NewDate(time.Now().AddDate(0, 0, 10)),
	}, &project); err != nil {
		log.Fatalf("Couldn't create project: %s", err)
	}

	fmt.Printf("New Project\n\tID: %d\n\tName: %s\n\tStart: %s\n\tEnd: %s\n", project.ID, project.Name, project.StartDate, project.EndDate)

	var projects rest.Page[rest.Project]

	if _, err := c.do(ctx, http.MethodGet, "/api/projects/?search=alpha", nil, &projects); err != nil {
		log.Fatalf("Couldn't search projects: %s", err)
	}

	fmt.Printf("Projects matching \"alpha\": %d\n", projects.Count)

	//- Tasks

	var task rest.Task

	if _, err := c.do(ctx, http.MethodPost, "/api/tasks/", rest.CreateTaskRequest{
		Title:       "Write the release notes",
		Description: "Created by the smoke client",
		DueDate:     rest.NewDate(time.Now().AddDate(0, 0, 3)),
		ProjectID:   project.ID,
		AssignedTo:  userID,
	}, &task); err != nil {
		log.Fatalf("Couldn't create task: %s", err)
	}

	fmt.Printf("New Task\n\tID: %d\n\tTitle: %s\n\tStatus: %s\n", task.ID, task.Title, task.Status)

	completed := "Completed"

	if _, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/", task.ID), rest.UpdateTaskRequest{Status: &completed}, &task); err != nil {
		log.Fatalf("Couldn't update task: %s", err)
	}

	fmt.Printf("Updated Task\n\tID: %d\n\tStatus: %s\n", task.ID, task.Status)

	//- Refresh and clean up

	var refreshed rest.RefreshResponse

	if _, err := c.do(ctx, http.MethodPost, "/api/token/refresh/", rest.RefreshRequest{Refresh: pair.Refresh}, &refreshed); err != nil {
		log.Fatalf("Couldn't refresh token: %s", err)
	}

	c.token = refreshed.Access

	if _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d/", project.ID), nil, nil); err != nil {
		log.Fatalf("Couldn't delete project: %s", err)
	}

	status, _ = c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d/", task.ID), nil, nil)

	fmt.Printf("Deleted Project\n\tTask lookup after delete: %d\n", status)
}

type client struct {
	address string
	token   string
	http    *http.Client
}

// do sends req as JSON and decodes the response into res, it returns the status code and an error
// for any non 2xx response.
func (c *client) do(ctx context.Context, method, path string, req, res interface{}) (int, error) {
	var body io.Reader

	if req != nil {
		b, err := json.Marshal(req)
		if err != nil {
			return 0, fmt.Errorf("json.Marshal: %w", err)
		}

		body = bytes.NewReader(b)
	}

	r, err := http.NewRequestWithContext(ctx, method, c.address+path, body)
	if err != nil {
		return 0, fmt.Errorf("http.NewRequest: %w", err)
	}

	r.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		r.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(r)
	if err != nil {
		return 0, fmt.Errorf("http.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp rest.ErrorResponse

		_ = json.NewDecoder(resp.Body).Decode(&errResp)

		return resp.StatusCode, fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, errResp.Error)
	}

	if res != nil {
		if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
			return resp.StatusCode, fmt.Errorf("json.Decode: %w", err)
		}
	}

	return resp.StatusCode, nil
}

// userIDFromToken reads the caller id from the access token claims, the server already verified it.
func userIDFromToken(token string) (int64, error) {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, fmt.Errorf("jwt.ParseUnverified: %w", err)
	}

	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("user_id claim missing")
	}

	return int64(id), nil
}

// initTracer initializes OpenTelemetry tracing printing spans to stdout and, when set, sending them to Jaeger.
func initTracer(jaegerEndpoint string) *sdktrace.TracerProvider {
	stdoutExporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Fatalf("Couldn't initialize stdout exporter: %s", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(stdoutExporter),
	}

	if jaegerEndpoint != "" {
		jaegerExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
		if err != nil {
			log.Fatalf("Couldn't initialize jaeger exporter: %s", err)
		}

		opts = append(opts, sdktrace.WithBatcher(jaegerExporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp
}
