// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package workflow drives a plan through its lifecycle on the client: the
// saved plan list, the draft form, the generated preview and the read-only
// view of a saved plan.
//
// [Controller] is a state machine independent of any user interface. It
// talks to the generator and the plan store through small interfaces and
// asks its host for confirmation before destructive actions through a
// [Confirmer], so every transition can be exercised with plain stubs.
package workflow
