package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON escreve as linhas como um array de registros com indentação de 4 espaços.
// Datas saem em ISO 8601 e valores indefinidos como null.
func WriteJSON(w io.Writer, rows []domain.EnrichedRecord) error {
	if rows == nil {
		rows = []domain.EnrichedRecord{}
	}

	data, err := json.MarshalIndent(rows, "", "    ")
	if err != nil {
		return err
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}
