package http

import (
	"net/http"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/internal/clients/service"
	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

// SubscriptionsHandler handles the subscription endpoints of a client.
type SubscriptionsHandler struct {
	SubscriptionService *service.SubscriptionService
	Version             string
}

// HandleList handles GET /clients/v2/{name}/subscriptions
//
//	@Summary		List Subscriptions
//	@Tags			Subscriptions
//	@Produce		json
//	@Security		BasicAuth
//	@Param			name	path		string				true	"Client name"
//	@Success		200		{object}	clientsdk.Response	"result: []clientsdk.Subscription"
//	@Failure		401		{object}	clientsdk.Response	"status, message"
//	@Failure		404		{object}	clientsdk.Response	"status, message"
//	@Router			/clients/v2/{name}/subscriptions [get].
func (h *SubscriptionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFromContext(r.Context())

	subs, err := h.SubscriptionService.List(r.Context(), sess, r.PathValue("name"))
	if err != nil {
		writeError(w, r, h.Version, err, "Unable to retrieve subscriptions.")
		return
	}

	out := make([]clientsdk.Subscription, len(subs))
	for i, s := range subs {
		out[i] = toSubscription(s)
	}
	writeResult(w, r, http.StatusOK, h.Version, "Client subscriptions retrieved successfully.", out)
}

// HandleAdd handles POST /clients/v2/{name}/subscriptions
//
//	@Summary		Add Subscription
//	@Description	Subscribes the client to an API. apiName "*" subscribes it to every default API.
//	@Description	Version and provider default to those of the default API of the same name.
//	@Tags			Subscriptions
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Security		BasicAuth
//	@Param			name	path		string							true	"Client name"
//	@Param			request	body		clientsdk.SubscriptionRequest	true	"Subscription"
//	@Success		200		{object}	clientsdk.Response				"status, message"
//	@Failure		400		{object}	clientsdk.Response				"status, message"
//	@Failure		401		{object}	clientsdk.Response				"status, message"
//	@Router			/clients/v2/{name}/subscriptions [post].
func (h *SubscriptionsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFromContext(r.Context())
	client := r.PathValue("name")

	var req clientsdk.SubscriptionRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, h.Version, err, "Invalid request.")
		return
	}

	if err := h.SubscriptionService.Subscribe(r.Context(), sess, client, params(req)); err != nil {
		writeError(w, r, h.Version, err, "Unable to subscribe client to APIs.")
		return
	}

	msg := "Client " + client + " has been subscribed to " + req.APIName + "."
	if req.APIName == domain.WildcardAPI {
		msg = "Client " + client + " has been subscribed to Agave APIs."
	}
	writeResult(w, r, http.StatusOK, h.Version, msg, nil)
}

// HandleRemove handles DELETE /clients/v2/{name}/subscriptions
//
//	@Summary		Remove Subscription
//	@Description	Removes a subscription. apiName "*" removes every current subscription.
//	@Description	Arguments may be sent in the body or the query string.
//	@Tags			Subscriptions
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Security		BasicAuth
//	@Param			name		path		string				true	"Client name"
//	@Param			apiName		query		string				false	"API name, or *"
//	@Param			apiVersion	query		string				false	"API version"
//	@Param			apiProvider	query		string				false	"API provider"
//	@Success		200			{object}	clientsdk.Response	"status, message"
//	@Failure		400			{object}	clientsdk.Response	"status, message"
//	@Failure		401			{object}	clientsdk.Response	"status, message"
//	@Router			/clients/v2/{name}/subscriptions [delete].
func (h *SubscriptionsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFromContext(r.Context())
	client := r.PathValue("name")

	var req clientsdk.SubscriptionRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, h.Version, err, "Invalid request.")
		return
	}

	if err := h.SubscriptionService.Unsubscribe(r.Context(), sess, client, params(req)); err != nil {
		writeError(w, r, h.Version, err, "Unable to remove API from client.")
		return
	}

	msg := req.APIName + " has been removed from the client " + client + "."
	if req.APIName == domain.WildcardAPI {
		msg = "All APIs have been removed from the client " + client + "."
	}
	writeResult(w, r, http.StatusOK, h.Version, msg, nil)
}

func params(req clientsdk.SubscriptionRequest) service.SubscribeParams {
	return service.SubscribeParams{
		APIName:     req.APIName,
		APIVersion:  req.APIVersion,
		APIProvider: req.APIProvider,
		Tier:        req.Tier,
	}
}
