// Package apimtest runs an in-process fake of the API manager store for
// tests. It keeps users, applications, keys and subscriptions in memory,
// speaks the store's form-encoded protocol including its habit of answering
// 200 OK with an embedded error, and can inject faults per action.
package apimtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

// SessionCookie is the cookie the fake hands out at login.
const SessionCookie = "JSESSIONID"

// DefaultApplication is seeded for every user without credentials, like the
// store does on first login.
const DefaultApplication = "DefaultApplication"

// Fault selects how an action misbehaves.
type Fault int

const (
	FaultNone         Fault = iota
	FaultRejected           // 200 OK with error=true
	FaultStatus             // 500 Internal Server Error
	FaultMalformed          // 200 OK with an HTML body
	FaultUnauthorized       // 401 as if the session expired
)

// Call is one request received by the fake.
type Call struct {
	Action string
	User   string
	Params url.Values
}

type application struct {
	id            int64
	name          string
	tier          string
	description   string
	callbackURL   string
	key           map[string]any
	subscriptions []subscription
}

type subscription struct {
	api  domain.API
	tier string
}

type publishedAPI struct {
	domain.API
	context string
}

type Server struct {
	*httptest.Server

	endpoints apim.Endpoints

	mu       sync.Mutex
	users    map[string]string
	sessions map[string]string
	apps     map[string][]*application
	apis     []publishedAPI
	nextID   int64
	faults   map[string]Fault
	calls    []Call
	hooks    []func(Event) error
}

// New starts a fake store that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		endpoints: apim.DefaultEndpoints,
		users:     make(map[string]string),
		sessions:  make(map[string]string),
		apps:      make(map[string][]*application),
		faults:    make(map[string]Fault),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Config returns a client configuration pointing at the fake.
func (s *Server) Config() apim.Config {
	return apim.Config{BaseURL: s.URL}
}

// AddUser registers a store user and seeds their DefaultApplication.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[username] = password
	if _, ok := s.findApp(username, DefaultApplication); !ok {
		s.apps[username] = append(s.apps[username], &application{
			id:   s.newID(),
			name: DefaultApplication,
			tier: string(domain.TierUnlimited),
		})
	}
}

// PublishAPI makes api available for subscription under the given context
// path (e.g. "/jobs/v2").
func (s *Server) PublishAPI(api domain.API, context string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apis = append(s.apis, publishedAPI{API: api, context: context})
}

// PublishAPIs publishes every API of set with a "/<name>/<version>" context.
func (s *Server) PublishAPIs(set domain.APISet) {
	for _, api := range set.All() {
		s.PublishAPI(api, "/"+strings.ToLower(api.Name)+"/"+api.Version)
	}
}

// Fail makes every subsequent request for action misbehave. FaultNone
// clears it.
func (s *Server) Fail(action string, f Fault) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f == FaultNone {
		delete(s.faults, action)
		return
	}
	s.faults[action] = f
}

// ExpireSessions forgets every session, so calls fail with 401.
func (s *Server) ExpireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.sessions)
}

// Calls returns the requests received so far. Passwords are redacted.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.calls)
}

// Actions returns the action of every request received so far, optionally
// skipping logins.
func (s *Server) Actions(skipLogin bool) []string {
	var out []string
	for _, c := range s.Calls() {
		if skipLogin && c.Action == "login" {
			continue
		}
		out = append(out, c.Action)
	}
	return out
}

// ResetCalls clears the call log.
func (s *Server) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// HasApplication reports whether the user owns an application called name.
func (s *Server) HasApplication(username, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.findApp(username, name)
	return ok
}

// ApplicationID returns the store id of the user's application.
func (s *Server) ApplicationID(username, name string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.findApp(username, name)
	if !ok {
		return 0, false
	}
	return app.id, true
}

// Subscriptions returns the APIs the application is subscribed to, in
// subscription order.
func (s *Server) Subscriptions(username, name string) []domain.API {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.findApp(username, name)
	if !ok {
		return nil
	}
	out := make([]domain.API, len(app.subscriptions))
	for i, sub := range app.subscriptions {
		out[i] = sub.api
	}
	return out
}

func (s *Server) newID() int64 {
	s.nextID++
	return s.nextID
}

func (s *Server) findApp(username, name string) (*application, bool) {
	for _, app := range s.apps[username] {
		if app.name == name {
			return app, true
		}
	}
	return nil, false
}

func (s *Server) findAPI(api domain.API) (publishedAPI, bool) {
	for _, p := range s.apis {
		if p.API == api {
			return p, true
		}
	}
	return publishedAPI{}, false
}

// serve dispatches on the action parameter after checking the endpoint,
// method, injected faults and session, in that order.
func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	action := r.Form.Get("action")

	s.mu.Lock()
	defer s.mu.Unlock()

	user := ""
	if c, err := r.Cookie(SessionCookie); err == nil {
		user = s.sessions[c.Value]
	}

	params := cloneValues(r.Form)
	if params.Has("password") {
		params.Set("password", "REDACTED")
	}
	s.calls = append(s.calls, Call{Action: action, User: user, Params: params})

	route, ok := s.routes()[action]
	if !ok || route.path != r.URL.Path {
		http.NotFound(w, r)
		return
	}
	if route.method != r.Method {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch s.faults[action] {
	case FaultRejected:
		writeJSON(w, map[string]any{"error": true, "message": "injected failure for " + action})
		return
	case FaultStatus:
		http.Error(w, "injected failure", http.StatusInternalServerError)
		return
	case FaultMalformed:
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Gateway timeout</body></html>"))
		return
	case FaultUnauthorized:
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if action != "login" && user == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	route.handle(w, user, r.Form)
}

type route struct {
	path   string
	method string
	handle func(w http.ResponseWriter, user string, form url.Values)
}

func (s *Server) routes() map[string]route {
	e := s.endpoints
	return map[string]route{
		"login":                  {e.Login, http.MethodPost, s.login},
		"addApplication":         {e.AddApplication, http.MethodPost, s.addApplication},
		"removeApplication":      {e.RemoveApplication, http.MethodPost, s.removeApplication},
		"getApplications":        {e.ListApplications, http.MethodGet, s.getApplications},
		"generateApplicationKey": {e.Subscription, http.MethodPost, s.generateKey},
		"addAPISubscription":     {e.Subscription, http.MethodPost, s.addSubscription},
		"removeSubscription":     {e.RemoveSubscription, http.MethodPost, s.removeSubscription},
		"getAllSubscriptions":    {e.ListSubscriptions, http.MethodGet, s.getAllSubscriptions},
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = slices.Clone(vs)
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, msg string) {
	writeJSON(w, map[string]any{"error": true, "message": msg})
}
