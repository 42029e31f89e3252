// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package http implements the REST API of the plan server.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, response compression and method checks are handled here
// before requests are delegated to the service layer. Failures are written as
// models.ErrorResponse with a status derived from the models error kind.
package http
