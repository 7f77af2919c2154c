package model

import "strings"

type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevHigh     Severity = "HIGH"
	SevMedium   Severity = "MEDIUM"
	SevLow      Severity = "LOW"
	SevInfo     Severity = "INFO"
)

// ParseSeverity normaliza severidades vindas de dados livres.
// O conjunto não é fechado: valores desconhecidos viram INFO.
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return SevCritical
	case "HIGH":
		return SevHigh
	case "MEDIUM":
		return SevMedium
	case "LOW":
		return SevLow
	default:
		return SevInfo
	}
}

type Category string

const (
	CatSecurity        Category = "security_issues"
	CatPerformance     Category = "performance_issues"
	CatMaintainability Category = "maintainability_issues"
	CatUIUX            Category = "ui_ux_issues"
)

// Label converte a chave da categoria em rótulo de exibição:
// underscores viram espaços e cada palavra é capitalizada
// (ex: "ui_ux_issues" -> "Ui Ux Issues").
func (c Category) Label() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

type Finding struct {
	File           string   // arquivo a que o apontamento se refere
	Issue          string   // título curto
	Severity       Severity // severidade normalizada
	Description    string
	Recommendation string
	LineRef        string // opcional ("" = sem referência de linha)
}

// FlatRecord é um apontamento achatado no formato das colunas do
// relatório. A ordem dos campos segue o cabeçalho do CSV.
type FlatRecord struct {
	Category       string   `json:"category"`
	File           string   `json:"file"`
	Issue          string   `json:"issue"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	LineRef        string   `json:"line_reference"`
}
