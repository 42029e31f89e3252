// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package tui is the terminal front end of the plan workflow.
//
// A single bubbletea program renders the four workflow screens (plan list,
// draft form, generated preview and saved plan view) from snapshots of a
// [Workflow]. Workflow operations that reach the generator or the store run
// as tea commands; while one is in flight a spinner is shown and further
// keys are ignored.
//
// The package also provides [Confirmer], the workflow's confirmation
// capability, as an overlay answered with y/n.
package tui
