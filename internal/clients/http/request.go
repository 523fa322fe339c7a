package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

func init() {
	// Report fields by their wire names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// decode fills v from a JSON or form-encoded body and validates it. Query
// parameters are merged in underneath body values, so DELETE requests can
// carry their arguments in the URL. Failures are ErrInvalidArgument.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if r.Method == http.MethodDelete {
			if err := assign(firstValues(r.URL.Query()), v); err != nil {
				return err
			}
		}
		if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return domain.Wrap(domain.ErrInvalidArgument, "decode", err, "invalid JSON in request body")
		}
	default:
		if err := decodeForm(r, mediaType, v); err != nil {
			return err
		}
	}

	if err := validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

// decodeForm maps form and query values onto v's JSON field names. Only
// string fields are supported.
func decodeForm(r *http.Request, mediaType string, v any) error {
	if err := r.ParseForm(); err != nil {
		return domain.Wrap(domain.ErrInvalidArgument, "decode", err, "invalid form in request body")
	}

	fields := firstValues(r.Form)

	// ParseForm only reads bodies of POST, PUT and PATCH.
	if r.Method == http.MethodDelete && mediaType == "application/x-www-form-urlencoded" {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return domain.Wrap(domain.ErrInvalidArgument, "decode", err, "unable to read request body")
		}
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return domain.Wrap(domain.ErrInvalidArgument, "decode", err, "invalid form in request body")
		}
		for key := range values {
			fields[key] = values.Get(key)
		}
	}
	return assign(fields, v)
}

func firstValues(values url.Values) map[string]string {
	fields := make(map[string]string, len(values))
	for key := range values {
		fields[key] = values.Get(key)
	}
	return fields
}

// assign sets v's fields from fields keyed by JSON name.
func assign(fields map[string]string, v any) error {
	if len(fields) == 0 {
		return nil
	}

	// Round-trip through JSON so the struct tags drive the mapping.
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return domain.Wrap(domain.ErrInvalidArgument, "decode", err, "invalid form in request body")
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Wrap(domain.ErrInvalidArgument, "validate", err, "invalid request")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.Errorf(domain.ErrInvalidArgument, "validate", "%s is required", fe.Field())
	default:
		return domain.Errorf(domain.ErrInvalidArgument, "validate", "%s is invalid", fe.Field())
	}
}
