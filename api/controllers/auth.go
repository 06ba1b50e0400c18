package controllers

import (
	"mime"
	"net/http"

	"github.com/buyyourkawa/kawa-backend/api/responses"
	"github.com/buyyourkawa/kawa-backend/api/validators"
	authsvc "github.com/buyyourkawa/kawa-backend/internal/auth"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/logger"
)

// Login exchanges a staff credential for a bearer token.
func Login(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		payload, err := decodeLogin(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, token)
	}
}

// decodeLogin accepts either a JSON body or a form-encoded one, so both
// API clients and the OAuth2-style password flow work against /token.
func decodeLogin(r *http.Request) (authsvc.LoginRequest, error) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if contentType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return authsvc.LoginRequest{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body")
		}
		payload := authsvc.LoginRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}
		if payload.Username == "" || payload.Password == "" {
			return payload, pkgerrors.New(pkgerrors.CodeValidation, "username and password are required")
		}
		return payload, nil
	}

	var payload authsvc.LoginRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}
