package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sena-ops/reviewguard/internal/catalog"
	"github.com/Sena-ops/reviewguard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVCatalogoPadrao(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code_review_findings.csv")
	records := Flatten(catalog.Default())

	require.NoError(t, WriteCSV(records, path))

	rows := readCSV(t, path)
	require.Len(t, rows, 10) // cabeçalho + 9 apontamentos
	assert.Equal(t, csvHeader, rows[0])
}

func TestWriteCSVRoundTrip(t *testing.T) {
	// campos com vírgula, aspas e quebra de linha precisam voltar
	// idênticos após o parse
	records := []model.FlatRecord{
		{
			Category:       "Security Issues",
			File:           "auth.js",
			Issue:          `Uso de "eval", perigoso`,
			Severity:       model.SevCritical,
			Description:    "Primeira linha\nsegunda linha",
			Recommendation: "Remover eval, sanitizar entrada",
			LineRef:        "Lines 11-17",
		},
		{
			Category:       "Ui Ux Issues",
			File:           "style.css",
			Issue:          "Contraste insuficiente",
			Severity:       model.SevMedium,
			Description:    "d",
			Recommendation: "r",
			LineRef:        "N/A",
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(records, path))

	rows := readCSV(t, path)
	require.Len(t, rows, len(records)+1)
	for i, r := range records {
		expected := []string{
			r.Category,
			r.File,
			r.Issue,
			string(r.Severity),
			r.Description,
			r.Recommendation,
			r.LineRef,
		}
		assert.Equal(t, expected, rows[i+1])
	}
}

func TestWriteCSVDeterministico(t *testing.T) {
	dir := t.TempDir()
	records := Flatten(catalog.Default())

	pathA := filepath.Join(dir, "a.csv")
	pathB := filepath.Join(dir, "b.csv")
	require.NoError(t, WriteCSV(records, pathA))
	require.NoError(t, WriteCSV(records, pathB))

	a, err := os.ReadFile(pathA)
	require.NoError(t, err)
	b, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriteCSVCaminhoInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nao-existe", "out.csv")
	err := WriteCSV(Flatten(catalog.Default()), path)
	assert.Error(t, err)
}
