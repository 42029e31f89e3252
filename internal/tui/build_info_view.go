// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package tui

import (
	"strings"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Aplicação: Gerador de PEI\n")
	b.WriteString("Versão: ")
	b.WriteString(valueOrNA(info.Version()))
	b.WriteString("\n")
	b.WriteString("Data: ")
	b.WriteString(valueOrNA(info.Date()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.Commit()))

	return renderPage("SOBRE O PROGRAMA", b.String(), "esc: voltar")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
