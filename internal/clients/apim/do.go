package apim

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

// errorFlag decodes the store's "error" field. It is a bool in practice, but
// strings and numbers have been seen from older store versions.
type errorFlag bool

func (f *errorFlag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*f = errorFlag(t)
	case string:
		*f = errorFlag(t != "" && !strings.EqualFold(t, "false"))
	case float64:
		*f = t != 0
	default:
		*f = false
	}
	return nil
}

// envelope is the part of every store response that signals failure. The
// store answers 200 OK with error=true for most failures.
type envelope struct {
	Error   errorFlag `json:"error"`
	Message string    `json:"message"`
}

// call describes a single store request.
type call struct {
	op     string     // operation name, used in errors and metrics
	what   string     // subject for messages, e.g. "create application"
	method string     // GET or POST
	path   string     // endpoint path
	params url.Values // action and arguments
	query  bool       // send params in the query string even for POST
}

type reply struct {
	status  int
	body    []byte
	cookies []*http.Cookie
	env     envelope
	json    bool
}

// do sends the call. Only transport faults are returned as errors here; the
// response is classified by check.
func (c *Client) do(ctx context.Context, sess *Session, cl call) (*reply, error) {
	target := c.baseURL + cl.path

	var body io.Reader
	if cl.method == http.MethodGet || cl.query {
		target += "?" + cl.params.Encode()
	} else {
		body = strings.NewReader(cl.params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, domain.Wrap(domain.ErrUpstreamUnavailable, cl.op, err, "unable to %s", cl.what)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")
	if sess != nil {
		sess.apply(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.Wrap(domain.ErrUpstreamUnavailable, cl.op, err, "unable to %s", cl.what)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Wrap(domain.ErrUpstreamUnavailable, cl.op, err, "unable to %s", cl.what)
	}

	r := &reply{
		status:  resp.StatusCode,
		body:    data,
		cookies: resp.Cookies(),
	}
	if err := json.Unmarshal(data, &r.env); err == nil {
		r.json = true
	}
	return r, nil
}

// check applies the uniform failure rules: the status code first, then the
// presence of a JSON body, then the embedded error flag.
func (r *reply) check(cl call) error {
	switch {
	case r.status == http.StatusUnauthorized || r.status == http.StatusForbidden:
		return domain.Errorf(domain.ErrAuthenticationFailure, cl.op,
			"unable to %s: session rejected by the API manager (status code %d)", cl.what, r.status)
	case r.status != http.StatusOK:
		return domain.Errorf(domain.ErrUpstreamRejected, cl.op,
			"unable to %s: status code %d", cl.what, r.status)
	case !r.json:
		return domain.Errorf(domain.ErrMalformedResponse, cl.op,
			"unable to %s: no JSON received", cl.what)
	case bool(r.env.Error):
		msg := r.env.Message
		if msg == "" {
			msg = "the API manager reported an error"
		}
		return domain.Errorf(domain.ErrUpstreamRejected, cl.op, "unable to %s: %s", cl.what, msg)
	}
	return nil
}

func (r *reply) decode(cl call, target any) error {
	if err := json.Unmarshal(r.body, target); err != nil {
		return domain.Wrap(domain.ErrMalformedResponse, cl.op, err, "unable to %s: unexpected response", cl.what)
	}
	return nil
}
