package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vfg2006/cashier-flash-report/internal/domain"
)

// Write escreve o relatório no formato de arquivo pedido
func Write(w io.Writer, format Format, flash *domain.FlashReport) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, flash.Rows)
	case FormatJSON:
		return WriteJSON(w, flash.Rows)
	default:
		return fmt.Errorf("%w: %q não gera arquivo", ErrInvalidFormat, format)
	}
}

// ExportFile grava o relatório em path, criando os diretórios que faltarem.
// Sem path usa o nome padrão do formato no diretório atual. Devolve o caminho gravado.
func ExportFile(path string, format Format, flash *domain.FlashReport) (string, error) {
	if !format.IsFile() {
		return "", fmt.Errorf("%w: %q não gera arquivo", ErrInvalidFormat, format)
	}
	if path == "" {
		path = format.DefaultFileName()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("erro ao criar o diretório %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("erro ao criar o arquivo %s: %w", path, err)
	}
	defer file.Close()

	buffered := bufio.NewWriter(file)
	if err := Write(buffered, format, flash); err != nil {
		return "", fmt.Errorf("erro ao escrever o relatório: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return "", fmt.Errorf("erro ao escrever o relatório: %w", err)
	}

	return path, file.Close()
}
