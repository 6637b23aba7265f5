// Package rest exposes the HTTP API.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

const otelName = "github.com/aryasaumitra/projecthub-backend/internal/rest"

// dateLayout is the format used for every date field, YYYY-MM-DD.
const dateLayout = "2006-01-02"

// ErrorResponse represents a response containing an error message.
type ErrorResponse struct {
	Error       string            `json:"error"`
	Validations validation.Errors `json:"validations,omitempty"`
}

func renderErrorResponse(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	status := http.StatusInternalServerError

	var ierr *internal.Error
	if !errors.As(err, &ierr) {
		resp.Error = "internal error"
	} else {
		switch ierr.Code() {
		case internal.ErrorCodeNotFound:
			status = http.StatusNotFound
		case internal.ErrorCodeInvalidArgument:
			status = http.StatusBadRequest

			var verrors validation.Errors
			if errors.As(ierr, &verrors) {
				resp.Validations = verrors
			}
		case internal.ErrorCodeUnauthenticated:
			status = http.StatusUnauthorized
			resp.Error = ierr.Message()
		case internal.ErrorCodePermissionDenied:
			status = http.StatusForbidden
			resp.Error = ierr.Message()
		case internal.ErrorCodeUnknown:
			fallthrough
		default:
			resp.Error = "internal error"
		}
	}

	if err != nil {
		_, span := otel.Tracer(otelName).Start(ctx, "rest.renderErrorResponse")
		defer span.End()

		span.RecordError(err)

		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, resp.Error)
		}
	}

	renderResponse(w, resp, status)
}

func renderResponse(w http.ResponseWriter, res interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)

	_, _ = w.Write(content)
}

// decodeRequest reads the JSON body of r into v.
func decodeRequest(r *http.Request, v interface{}) error {
	defer r.Body.Close()

	if err := render.DecodeJSON(r.Body, v); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder")
	}

	return nil
}

// pathID returns the numeric "id" URL parameter, unknown identifiers are reported as not found.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, internal.NewErrorf(internal.ErrorCodeNotFound, "not found")
	}

	return id, nil
}

// Date is a calendar date encoded as YYYY-MM-DD.
type Date string

// NewDate converts a time into its Date representation.
func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// parseDate adds a validation error for field to verrs when d is set but malformed.
func parseDate(d Date, field string, verrs validation.Errors) time.Time {
	if d == "" {
		return time.Time{}
	}

	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		verrs[field] = errors.New("date has wrong format, use YYYY-MM-DD")
		return time.Time{}
	}

	return t
}

// parseNullDate is the optional version of parseDate.
func parseNullDate(d *Date, field string, verrs validation.Errors) *time.Time {
	if d == nil {
		return nil
	}

	t := parseDate(*d, field, verrs)
	if t.IsZero() {
		if _, ok := verrs[field]; !ok {
			verrs[field] = errors.New("cannot be blank")
		}
	}

	return &t
}

// nullFields returns the keys of the JSON object in data, limited to fields, that are explicitly null.
func nullFields(data []byte, fields ...string) ([]string, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var res []string

	for _, f := range fields {
		if v, ok := raw[f]; ok && v == nil {
			res = append(res, f)
		}
	}

	return res, nil
}

// rejectNulls records a validation failure for every explicitly null field.
func rejectNulls(nulls []string, verrs validation.Errors) {
	for _, f := range nulls {
		verrs[f] = errors.New("may not be null")
	}
}

// checkValidations returns an error when verrs contains failures.
func checkValidations(verrs validation.Errors) error {
	if err := verrs.Filter(); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "invalid values")
	}

	return nil
}
