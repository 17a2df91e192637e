package form

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Values collects request input into a record: query parameters first, then
// the form body, then chi route parameters, each overriding the previous one.
// Single values become strings and repeated values []string.
//
// Requests without a body or with a non-form content type contribute only
// query and route parameters.
func Values(r *http.Request) (validator.Values, error) {
	values := make(validator.Values)
	merge(values, r.URL.Query())

	body, err := bodyValues(r)
	if err != nil {
		return nil, err
	}
	merge(values, body)

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			values[key] = rctx.URLParams.Values[i]
		}
	}
	return values, nil
}

func bodyValues(r *http.Request) (url.Values, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return r.PostForm, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		if r.MultipartForm == nil {
			return nil, nil
		}
		return url.Values(r.MultipartForm.Value), nil
	}
	return nil, nil
}

func merge(dst validator.Values, src url.Values) {
	for key, vals := range src {
		switch len(vals) {
		case 0:
		case 1:
			dst[key] = vals[0]
		default:
			dst[key] = append([]string(nil), vals...)
		}
	}
}
