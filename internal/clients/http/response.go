package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/pkg/clientsdk"
	"github.com/aussiebroadwan/clients/pkg/httpx"
	"github.com/aussiebroadwan/clients/pkg/slogx"
)

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  any    `json:"result"`
	Version string `json:"version"`
}

// writeResult writes the envelope, indented when the query asks for
// pretty=true.
func writeResult(w http.ResponseWriter, r *http.Request, code int, version, msg string, result any) {
	env := envelope{
		Status:  clientsdk.StatusSuccess,
		Message: msg,
		Result:  result,
		Version: version,
	}
	if code >= http.StatusBadRequest {
		env.Status = clientsdk.StatusError
	}

	if r.URL.Query().Get("pretty") == "true" {
		httpx.WriteJSONIndent(w, code, env)
		return
	}
	httpx.WriteJSON(w, code, env)
}

// writeError maps err onto a status code and writes its message. Errors
// outside the domain taxonomy are logged and reported as fallback.
func writeError(w http.ResponseWriter, r *http.Request, version string, err error, fallback string) {
	code := statusFor(err)

	var de *domain.Error
	msg := fallback
	if errors.As(err, &de) {
		msg = de.Message
	}

	log := slogx.FromContext(r.Context())
	switch {
	case code >= http.StatusInternalServerError:
		log.Error(fallback, "op", domain.Op(err), "error", err)
	default:
		log.Info("request failed", "op", domain.Op(err), "status", code, "error", err)
	}

	writeResult(w, r, code, version, msg, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrUpstreamRejected):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAuthenticationFailure):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
