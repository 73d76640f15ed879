// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/absmach/errcheck"
	"github.com/absmach/errcheck/faults"
	"github.com/absmach/errcheck/internal/api"
	"github.com/absmach/errcheck/internal/apiutil"
	"github.com/absmach/errcheck/logger"
	"github.com/absmach/errcheck/pkg/errors"
)

const svcName = "faults"

// MakeHandler returns a HTTP handler for the fault-injection API.
func MakeHandler(svc faults.Service, logger logger.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, encodeError)),
	}

	r := chi.NewRouter()

	r.Route("/faults", func(r chi.Router) {
		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			statusEndpoint(svc),
			decodeEmptyRequest,
			api.EncodeResponse,
			opts...,
		), "status").ServeHTTP)

		r.Post("/arm", otelhttp.NewHandler(kithttp.NewServer(
			armEndpoint(svc),
			decodeArmRequest,
			api.EncodeResponse,
			opts...,
		), "arm").ServeHTTP)

		r.Post("/disarm", otelhttp.NewHandler(kithttp.NewServer(
			disarmEndpoint(svc),
			decodeEmptyRequest,
			api.EncodeResponse,
			opts...,
		), "disarm").ServeHTTP)

		r.Get("/codes", otelhttp.NewHandler(kithttp.NewServer(
			listCodesEndpoint(svc),
			decodeEmptyRequest,
			api.EncodeResponse,
			opts...,
		), "list_codes").ServeHTTP)

		r.Post("/reset", otelhttp.NewHandler(kithttp.NewServer(
			resetEndpoint(svc),
			decodeEmptyRequest,
			api.EncodeResponse,
			opts...,
		), "reset").ServeHTTP)
	})

	r.Get("/health", errcheck.Health(svcName, instanceID))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func decodeArmRequest(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}
	var req armReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(err, errors.ErrMalformedEntity))
	}

	return req, nil
}

func decodeEmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", api.ContentType)
	switch {
	case errors.Contains(err, apiutil.ErrUnsupportedContentType):
		w.WriteHeader(http.StatusUnsupportedMediaType)
	case errors.Contains(err, faults.ErrUnknownCode):
		w.WriteHeader(http.StatusNotFound)
	case errors.Contains(err, errcheck.ErrInjectionDisabled):
		w.WriteHeader(http.StatusConflict)
	case errors.Contains(err, faults.ErrReservedCode),
		errors.Contains(err, errors.ErrMalformedEntity),
		errors.Contains(err, apiutil.ErrValidation):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if errorVal, ok := err.(errors.Error); ok {
		if err := json.NewEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
