package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sena-ops/reviewguard/internal/catalog"
	"github.com/Sena-ops/reviewguard/internal/model"
)

// noLineRef é o valor gravado quando o apontamento não tem referência
// de linha.
const noLineRef = "N/A"

// Flatten achata o catálogo em uma sequência única de registros, na
// ordem das categorias e, dentro de cada categoria, na ordem dos
// apontamentos.
func Flatten(c catalog.Catalog) []model.FlatRecord {
	out := make([]model.FlatRecord, 0, c.Total())
	for _, g := range c {
		label := g.Category.Label()
		for _, f := range g.Findings {
			ref := strings.TrimSpace(f.LineRef)
			if ref == "" {
				ref = noLineRef
			}
			out = append(out, model.FlatRecord{
				Category:       label,
				File:           f.File,
				Issue:          f.Issue,
				Severity:       f.Severity,
				Description:    f.Description,
				Recommendation: f.Recommendation,
				LineRef:        ref,
			})
		}
	}
	return out
}

// CategoryCount é uma linha do resumo: categoria e quantidade.
type CategoryCount struct {
	Category model.Category
	Count    int
}

type Summary struct {
	Counts []CategoryCount // na ordem do catálogo
	Total  int
}

// Summarize conta os apontamentos por categoria e o total geral.
// Função pura, sem efeitos colaterais.
func Summarize(c catalog.Catalog) Summary {
	s := Summary{Counts: make([]CategoryCount, 0, len(c))}
	for _, g := range c {
		s.Counts = append(s.Counts, CategoryCount{
			Category: g.Category,
			Count:    len(g.Findings),
		})
		s.Total += len(g.Findings)
	}
	return s
}

// Fprint escreve o resumo legível: uma linha por categoria, linha em
// branco e o total.
func (s Summary) Fprint(w io.Writer) {
	for _, cc := range s.Counts {
		fmt.Fprintf(w, "- %s: %d\n", cc.Category.Label(), cc.Count)
	}
	fmt.Fprintf(w, "\nTotal de problemas encontrados: %d\n", s.Total)
}
