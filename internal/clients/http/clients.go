package http

import (
	"net/http"

	"github.com/aussiebroadwan/clients/internal/clients/service"
	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

// ClientsHandler handles the client management endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
	Version       string
}

// HandleList handles GET /clients/v2
//
//	@Summary		List Clients
//	@Description	Returns the caller's client applications with their consumer keys.
//	@Tags			Clients
//	@Produce		json
//	@Security		BasicAuth
//	@Param			pretty	query		bool				false	"Indent the response"
//	@Success		200		{object}	clientsdk.Response	"result: []clientsdk.Client"
//	@Failure		401		{object}	clientsdk.Response	"status, message"
//	@Failure		502		{object}	clientsdk.Response	"status, message"
//	@Failure		503		{object}	clientsdk.Response	"status, message"
//	@Router			/clients/v2 [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFromContext(r.Context())

	clients, err := h.ClientService.List(r.Context(), sess)
	if err != nil {
		writeError(w, r, h.Version, err, "Unable to retrieve clients.")
		return
	}

	out := make([]clientsdk.Client, len(clients))
	for i, c := range clients {
		out[i] = toClient(c)
	}
	writeResult(w, r, http.StatusOK, h.Version, "Clients retrieved successfully.", out)
}

// HandleCreate handles POST /clients/v2
//
//	@Summary		Create Client
//	@Description	Creates a client, generates its credentials and subscribes it to the default APIs.
//	@Description	The consumer secret is only ever returned by this call.
//	@Tags			Clients
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Security		BasicAuth
//	@Param			request	body		clientsdk.CreateClientRequest	true	"Client creation request"
//	@Success		201		{object}	clientsdk.Response				"result: clientsdk.Client with consumerSecret"
//	@Failure		400		{object}	clientsdk.Response				"status, message"
//	@Failure		401		{object}	clientsdk.Response				"status, message"
//	@Failure		502		{object}	clientsdk.Response				"status, message"
//	@Failure		503		{object}	clientsdk.Response				"status, message"
//	@Router			/clients/v2 [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFromContext(r.Context())

	var req clientsdk.CreateClientRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, h.Version, err, "Invalid request.")
		return
	}

	client, err := h.ClientService.Create(r.Context(), sess, service.CreateClientParams{
		Name:        req.ClientName,
		Description: req.Description,
		Tier:        req.Tier,
		CallbackURL: req.CallbackURL,
	})
	if err != nil {
		writeError(w, r, h.Version, err, "Unable to create client.")
		return
	}

	writeResult(w, r, http.StatusCreated, h.Version, "Client created successfully.", toClient(client))
}

// HandleGet handles GET /clients/v2/{name}
//
//	@Summary		Get Client
//	@Description	Returns one client. Names match exactly.
//	@Tags			Clients
//	@Produce		json
//	@Security		BasicAuth
//	@Param			name	path		string				true	"Client name"
//	@Success		200		{object}	clientsdk.Response	"result: clientsdk.Client"
//	@Failure		401		{object}	clientsdk.Response	"status, message"
//	@Failure		404		{object}	clientsdk.Response	"status, message"
//	@Router			/clients/v2/{name} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFromContext(r.Context())

	client, err := h.ClientService.Get(r.Context(), sess, r.PathValue("name"))
	if err != nil {
		writeError(w, r, h.Version, err, "Unable to retrieve client details.")
		return
	}

	writeResult(w, r, http.StatusOK, h.Version, "Client details retrieved successfully.", toClient(client))
}

// HandleDelete handles DELETE /clients/v2/{name}
//
//	@Summary		Delete Client
//	@Description	Removes the client's subscriptions, then the client.
//	@Tags			Clients
//	@Produce		json
//	@Security		BasicAuth
//	@Param			name	path		string				true	"Client name"
//	@Success		200		{object}	clientsdk.Response	"status, message"
//	@Failure		400		{object}	clientsdk.Response	"status, message"
//	@Failure		401		{object}	clientsdk.Response	"status, message"
//	@Router			/clients/v2/{name} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFromContext(r.Context())

	if err := h.ClientService.Delete(r.Context(), sess, r.PathValue("name")); err != nil {
		writeError(w, r, h.Version, err, "Unable to remove client.")
		return
	}

	writeResult(w, r, http.StatusOK, h.Version, "Client removed successfully.", nil)
}
