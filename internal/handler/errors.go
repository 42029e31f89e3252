// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP address, so no transport would serve the
// plan API. The server refuses to start in that case.
var errNoHandlersAreCreated = errors.New("no handlers are created")
