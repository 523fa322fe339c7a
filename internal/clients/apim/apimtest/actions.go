package apimtest

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

func (s *Server) login(w http.ResponseWriter, _ string, form url.Values) {
	username := form.Get("username")
	password, ok := s.users[username]
	if !ok || password != form.Get("password") {
		writeError(w, "Login failed. Please recheck the username and password and try again.")
		return
	}

	token := rand.Text()
	s.sessions[token] = username
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: token, Path: "/", HttpOnly: true})
	writeJSON(w, map[string]any{"error": false})
}

func validTier(tier string) bool {
	return slices.Contains(domain.Tiers, domain.Tier(tier))
}

func (s *Server) addApplication(w http.ResponseWriter, user string, form url.Values) {
	name := form.Get("application")
	tier := form.Get("tier")

	switch {
	case name == "":
		writeError(w, "Application name is required")
		return
	case !validTier(tier):
		writeError(w, "Invalid tier "+tier)
		return
	}
	if _, ok := s.findApp(user, name); ok {
		writeError(w, "A duplicate application already exists by the name - "+name)
		return
	}

	s.apps[user] = append(s.apps[user], &application{
		id:          s.newID(),
		name:        name,
		tier:        tier,
		description: form.Get("description"),
		callbackURL: form.Get("callbackUrl"),
	})
	writeJSON(w, map[string]any{"error": false, "status": "APPROVED"})
}

func (s *Server) removeApplication(w http.ResponseWriter, user string, form url.Values) {
	name := form.Get("application")
	app, ok := s.findApp(user, name)
	if !ok {
		writeError(w, "Error while removing the application "+name)
		return
	}

	consumerKey := ""
	if app.key != nil {
		consumerKey, _ = app.key["consumerKey"].(string)
	}
	if err := s.emit(Event{
		Kind:            EventApplicationRemoved,
		Username:        user,
		ApplicationID:   app.id,
		ApplicationName: app.name,
		ConsumerKey:     consumerKey,
	}); err != nil {
		writeError(w, err.Error())
		return
	}

	s.apps[user] = slices.DeleteFunc(s.apps[user], func(a *application) bool { return a == app })
	writeJSON(w, map[string]any{"error": false})
}

func (s *Server) getApplications(w http.ResponseWriter, user string, _ url.Values) {
	apps := make([]map[string]any, 0, len(s.apps[user]))
	for _, app := range s.apps[user] {
		apps = append(apps, map[string]any{
			"id":          app.id,
			"name":        app.name,
			"tier":        app.tier,
			"status":      "APPROVED",
			"callbackUrl": app.callbackURL,
			"description": app.description,
			"groupId":     "",
			"apiCount":    len(app.subscriptions),
		})
	}
	writeJSON(w, map[string]any{"error": false, "applications": apps})
}

func (s *Server) generateKey(w http.ResponseWriter, user string, form url.Values) {
	name := form.Get("application")
	app, ok := s.findApp(user, name)
	if !ok {
		writeError(w, "Error while generating the keys for application "+name)
		return
	}

	keyType := form.Get("keytype")
	if keyType == "" {
		keyType = domain.KeyTypeProduction
	}
	callbackURL := form.Get("callbackUrl")
	if callbackURL == "" {
		callbackURL = app.callbackURL
	}

	consumerKey, consumerSecret := rand.Text(), rand.Text()
	validity, _ := strconv.Atoi(form.Get("validityTime"))

	if err := s.emit(Event{
		Kind:            EventKeyGenerated,
		Username:        user,
		ApplicationID:   app.id,
		ApplicationName: app.name,
		ConsumerKey:     consumerKey,
		ConsumerSecret:  consumerSecret,
		CallbackURL:     callbackURL,
		KeyType:         keyType,
	}); err != nil {
		writeError(w, err.Error())
		return
	}

	app.key = map[string]any{
		"consumerKey":        consumerKey,
		"consumerSecret":     consumerSecret,
		"accessToken":        rand.Text(),
		"validityTime":       validity,
		"keyState":           domain.KeyStateCompleted,
		"tokenScope":         "am_application_scope default",
		"tokenDetails":       map[string]any{"validityTime": validity},
		"appDetails":         fmt.Sprintf(`{"application":"%s","keytype":"%s"}`, app.name, keyType),
		"accessallowdomains": []string{form.Get("authorizedDomains")},
		"enableRegenarate":   true,
	}
	writeJSON(w, map[string]any{"error": false, "data": map[string]any{"key": app.key}})
}

func apiFromForm(form url.Values) domain.API {
	return domain.API{
		Name:     form.Get("name"),
		Version:  form.Get("version"),
		Provider: form.Get("provider"),
	}
}

func (s *Server) addSubscription(w http.ResponseWriter, user string, form url.Values) {
	name := form.Get("applicationName")
	api := apiFromForm(form)
	tier := form.Get("tier")

	app, ok := s.findApp(user, name)
	if !ok {
		writeError(w, "Error while adding the subscription: application "+name+" not found")
		return
	}
	if !validTier(tier) {
		writeError(w, "Error while adding the subscription: invalid tier "+tier)
		return
	}
	if _, ok := s.findAPI(api); !ok {
		writeError(w, fmt.Sprintf("Error while adding the subscription: API %s-%s-%s not found",
			api.Provider, api.Name, api.Version))
		return
	}
	for _, sub := range app.subscriptions {
		if sub.api == api {
			writeError(w, fmt.Sprintf(
				"Error while adding the subscription for user: %s. Subscription already exists for API %s-%s-%s in Application %s",
				user, api.Provider, api.Name, api.Version, name))
			return
		}
	}

	app.subscriptions = append(app.subscriptions, subscription{api: api, tier: tier})
	writeJSON(w, map[string]any{"error": false, "status": "UNBLOCKED"})
}

func (s *Server) removeSubscription(w http.ResponseWriter, user string, form url.Values) {
	name := form.Get("applicationName")
	api := apiFromForm(form)

	app, ok := s.findApp(user, name)
	if !ok {
		writeError(w, "Error while removing the subscription: application "+name+" not found")
		return
	}
	idx := slices.IndexFunc(app.subscriptions, func(sub subscription) bool { return sub.api == api })
	if idx < 0 {
		writeError(w, "Error while removing the subscription of API "+api.Name)
		return
	}

	app.subscriptions = slices.Delete(app.subscriptions, idx, idx+1)
	writeJSON(w, map[string]any{"error": false})
}

// getAllSubscriptions lists every application of the user, as the store
// does; selectedApp only affects which one the store UI would highlight.
func (s *Server) getAllSubscriptions(w http.ResponseWriter, user string, _ url.Values) {
	apps := make([]map[string]any, 0, len(s.apps[user]))
	for _, app := range s.apps[user] {
		prodKey, prodConsumerKey, prodConsumerSecret := "", "", ""
		if app.key != nil {
			prodKey, _ = app.key["accessToken"].(string)
			prodConsumerKey, _ = app.key["consumerKey"].(string)
			prodConsumerSecret, _ = app.key["consumerSecret"].(string)
		}

		subs := make([]map[string]any, 0, len(app.subscriptions))
		for _, sub := range app.subscriptions {
			published, _ := s.findAPI(sub.api)
			subs = append(subs, map[string]any{
				"name":                      sub.api.Name,
				"version":                   sub.api.Version,
				"provider":                  sub.api.Provider,
				"context":                   published.context,
				"status":                    "PUBLISHED",
				"tier":                      sub.tier,
				"subStatus":                 "UNBLOCKED",
				"thumburl":                  "images/api-default.png",
				"hasMultipleEndpoints":      "false",
				"prodKey":                   prodKey,
				"prodConsumerKey":           prodConsumerKey,
				"prodConsumerSecret":        prodConsumerSecret,
				"prodAuthorizedDomains":     "ALL",
				"prodValidityTime":          14400,
				"prodValidityRemainingTime": 14400,
				"sandboxKey":                "",
				"sandboxConsumerKey":        "",
				"sandboxConsumerSecret":     "",
				"sandAuthorizedDomains":     "",
				"sandValidityTime":          0,
				"sandValidityRemainingTime": 0,
			})
		}
		apps = append(apps, map[string]any{"id": app.id, "name": app.name, "subscriptions": subs})
	}
	writeJSON(w, map[string]any{"error": false, "subscriptions": map[string]any{"applications": apps}})
}
