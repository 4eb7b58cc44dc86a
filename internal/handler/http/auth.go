// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// maxBodyBytes caps the size of a credentials body.
const maxBodyBytes = 1 << 20

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.Signup(r.Context(), creds)
	resp := service.NewResponse(service.MessageSignupSucceeded, user, err)
	if !resp.IsSuccess() {
		log.Info().Str("email", creds.Email).Str("reason", resp.Error).Msg("signup rejected")
	}

	writeEnvelope(w, r, resp, http.StatusOK)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.Signin(r.Context(), creds)
	resp := service.NewResponse(service.MessageSigninSucceeded, user, err)
	if !resp.IsSuccess() {
		log.Info().Str("email", creds.Email).Str("reason", resp.Error).Msg("signin rejected")
	}

	writeEnvelope(w, r, resp, http.StatusOK)
}

// decodeCredentials reads the JSON body. An empty body decodes to empty
// credentials so that the service reports the missing fields. Malformed
// JSON is answered with 400 and ok=false.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (creds models.Credentials, ok bool) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	err := json.NewDecoder(body).Decode(&creds)
	if err == nil || errors.Is(err, io.EOF) {
		return creds, true
	}

	logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
	writeEnvelope(w, r, service.NewFailedResponse(service.MessageInvalidJSON), http.StatusBadRequest)

	return models.Credentials{}, false
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, resp models.Response, status int) {
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
