package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buyyourkawa/kawa-backend/api/responses"
	"github.com/buyyourkawa/kawa-backend/api/validators"
	clientstore "github.com/buyyourkawa/kawa-backend/internal/clients"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/logger"
)

// CreateClient registers a new customer.
func CreateClient(store *clientstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "client store unavailable"))
			return
		}

		var payload clientstore.ClientRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		client, err := store.Create(r.Context(), payload.Model())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		logg.Info(logg.WithClientID(r.Context(), client.ID.String()), "client.registered")

		responses.WriteSuccessStatus(w, http.StatusCreated, client)
	}
}

// GetClient returns one customer by id.
func GetClient(store *clientstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "clientID"), "client_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		client, err := store.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, client)
	}
}

// ListClients returns a page of customers in registration order.
func ListClients(store *clientstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		clients, err := store.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, clients)
	}
}

// UpdateClient overwrites an existing customer record.
func UpdateClient(store *clientstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "clientID"), "client_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload clientstore.ClientRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		client, err := store.Update(r.Context(), id, payload.Fields())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		logg.Info(logg.WithClientID(r.Context(), client.ID.String()), "client.updated")

		responses.WriteSuccess(w, client)
	}
}
