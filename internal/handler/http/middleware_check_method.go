// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package http

import (
	"net/http"

	"github.com/divinoviana/planoespecialindividualizado/internal/app"
	"github.com/divinoviana/planoespecialindividualizado/internal/utils"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// MsgRouteNotFound is written for unknown routes and unsupported methods.
const MsgRouteNotFound = "route not found"

// RouteNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router. A path requested with a method it does not serve
// answers 404, like an unknown path, with a JSON [models.ErrorResponse] body.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.NotFound(RouteNotFound)
//	router.MethodNotAllowed(RouteNotFound)
func RouteNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Kind: app.KindNotFound, Error: MsgRouteNotFound}, http.StatusNotFound)
}
