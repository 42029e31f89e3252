// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package tui

import (
	"errors"
	"strings"

	"github.com/divinoviana/planoespecialindividualizado/internal/workflow"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// humanizeError turns a workflow failure into a notice for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var (
		validationErr *models.ValidationError
		generationErr *models.GenerationError
	)
	switch {
	case isNetworkError(err):
		return "Sem conexão ou servidor indisponível"
	case errors.As(err, &validationErr):
		return "Preencha os campos obrigatórios: " + strings.Join(fieldLabels(validationErr.Fields), ", ")
	case errors.Is(err, workflow.ErrRefreshFailed):
		return "A operação foi concluída, mas a lista não pôde ser atualizada. Tente recarregar (r)."
	case errors.Is(err, models.ErrPlanNotFound):
		return "PEI não encontrado. Ele pode já ter sido excluído."
	case errors.As(err, &generationErr):
		if generationErr.Reason == models.ReasonInvalidFormat {
			return "A resposta do gerador veio em formato inválido. Tente gerar novamente."
		}
		return "Falha ao gerar o PEI: " + generationErr.Reason
	case errors.Is(err, models.ErrStore):
		return "Falha ao acessar os planos salvos: " + err.Error()
	default:
		return err.Error()
	}
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
