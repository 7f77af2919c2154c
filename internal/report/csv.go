package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Sena-ops/reviewguard/internal/model"
)

// Cabeçalho do CSV. Nomes e ordem das colunas fazem parte do contrato
// do relatório.
var csvHeader = []string{
	"Category",
	"File",
	"Issue",
	"Severity",
	"Description",
	"Recommendation",
	"Line_Reference",
}

// WriteCSV cria (ou sobrescreve) o arquivo em path e grava o cabeçalho
// seguido de uma linha por registro, na ordem recebida. Erros de I/O
// são devolvidos ao chamador.
func WriteCSV(records []model.FlatRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("criar arquivo CSV: %w", err)
	}
	if err := writeCSVTo(f, records); err != nil {
		f.Close()
		return fmt.Errorf("escrever CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("fechar arquivo CSV: %w", err)
	}
	return nil
}

func writeCSVTo(w io.Writer, records []model.FlatRecord) error {
	out := csv.NewWriter(w)
	if err := out.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		err := out.Write([]string{
			r.Category,
			r.File,
			r.Issue,
			string(r.Severity),
			r.Description,
			r.Recommendation,
			r.LineRef,
		})
		if err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
