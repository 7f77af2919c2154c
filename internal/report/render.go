package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sena-ops/reviewguard/internal/catalog"
	"github.com/Sena-ops/reviewguard/internal/sarif"
)

const (
	toolName    = "ReviewGuard"
	toolVersion = "0.1.0"
)

type RenderFunc func(c catalog.Catalog) (string, error)

var renderers = map[string]RenderFunc{
	"json":     renderJSON,
	"markdown": renderMarkdown,
	"sarif":    renderSarif,
}

// Render gera o relatório no formato indicado (json, markdown, sarif).
func Render(format string, c catalog.Catalog) (string, error) {
	fn, ok := renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return "", fmt.Errorf("formato '%s' não suportado", format)
	}
	return fn(c)
}

func renderJSON(c catalog.Catalog) (string, error) {
	encoded, err := json.MarshalIndent(Flatten(c), "", "  ")
	if err != nil {
		return "", fmt.Errorf("gerar JSON: %w", err)
	}
	return string(encoded), nil
}

func renderMarkdown(c catalog.Catalog) (string, error) {
	var builder strings.Builder
	builder.WriteString("## 📋 Resultado do Code Review\n\n")
	for _, g := range c {
		builder.WriteString(fmt.Sprintf("### %s (%d problema(s))\n", g.Category.Label(), len(g.Findings)))
		for _, f := range g.Findings {
			builder.WriteString(fmt.Sprintf("- **[%s]** %s: %s\n", f.Severity, f.File, f.Issue))
		}
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

func renderSarif(c catalog.Catalog) (string, error) {
	log := sarif.Build(Flatten(c), toolName, toolVersion)
	encoded, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", fmt.Errorf("gerar SARIF: %w", err)
	}
	return string(encoded), nil
}
