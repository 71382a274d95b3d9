// Package report desenha e exporta o flash report. Todas as funções recebem as
// linhas e o resumo explicitamente e escrevem no io.Writer informado.
package report

import (
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	FormatConsole Format = "console"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
)

var ErrInvalidFormat = errors.New("invalid output format")

// ParseFormat valida o formato de saída informado pelo usuário
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatConsole, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (use console, csv ou json)", ErrInvalidFormat, s)
	}
}

// IsFile indica se o formato gera arquivo
func (f Format) IsFile() bool {
	return f == FormatCSV || f == FormatJSON
}

// DefaultFileName é usado quando nenhum caminho de arquivo é informado
func (f Format) DefaultFileName() string {
	return "cashier_report." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}
