package form

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Validate collects the request values and runs validate on them. The error
// is a ValidationError when a field fails, or wraps ErrFailedToParseForm /
// ErrUnsupportedMediaType when the body cannot be read.
func Validate(r *http.Request, validate validator.RecordValidator) (validator.Values, error) {
	values, err := Values(r)
	if err != nil {
		return nil, err
	}
	if verr := NewValidationError(validate(values)); verr != nil {
		return values, verr
	}
	return values, nil
}

type valuesKey struct{}

// FromContext returns the values stored by Middleware.
func FromContext(ctx context.Context) (validator.Values, bool) {
	values, ok := ctx.Value(valuesKey{}).(validator.Values)
	return values, ok
}

// ErrorResponse is the JSON body written for rejected requests.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// Option configures Middleware.
type Option func(*middlewareConfig)

type middlewareConfig struct {
	log     *slog.Logger
	onError func(w http.ResponseWriter, r *http.Request, err error)
}

// WithLogger logs rejected requests at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(c *middlewareConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithErrorHandler replaces the default JSON error response.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) Option {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// Middleware validates every request with validate. Valid requests continue
// with the collected values available through FromContext; invalid ones get
// 422 with the failing fields, unreadable bodies get 400.
//
//	r := chi.NewRouter()
//	r.With(form.Middleware(signup)).Post("/signup", handleSignup)
func Middleware(validate validator.RecordValidator, opts ...Option) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		log:     logger.Nop(),
		onError: writeError,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	log := cfg.log.With(logger.Component("form"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			values, err := Validate(r, validate)
			if err != nil {
				var verr ValidationError
				if errors.As(err, &verr) {
					log.DebugContext(r.Context(), "request rejected",
						requestAttr(r),
						logger.Fields(verr),
					)
				} else {
					log.WarnContext(r.Context(), "failed to read request values",
						requestAttr(r),
						logger.Error(err),
					)
				}
				cfg.onError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), valuesKey{}, values)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestAttr(r *http.Request) slog.Attr {
	return logger.Group("request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}

func writeError(w http.ResponseWriter, _ *http.Request, err error) {
	status := http.StatusBadRequest
	body := ErrorResponse{Error: ErrorDetail{Code: "bad_request", Message: err.Error()}}

	var verr ValidationError
	if errors.As(err, &verr) {
		status = http.StatusUnprocessableEntity
		body.Error = ErrorDetail{
			Code:    "validation_failed",
			Message: "Validation failed",
			Details: verr,
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// RequestIDExtractor adds the id set by chi's middleware.RequestID to log
// records written through the *Context methods.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := middleware.GetReqID(ctx)
		return logger.RequestID(id), id != ""
	}
}
