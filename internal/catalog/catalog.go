package catalog

import "github.com/Sena-ops/reviewguard/internal/model"

// Group agrupa os apontamentos de uma categoria.
type Group struct {
	Category model.Category
	Findings []model.Finding
}

// Catalog é um slice (e não um map) porque a ordem das categorias e dos
// apontamentos dentro de cada grupo define a ordem das linhas do relatório.
type Catalog []Group

// Default retorna o catálogo fixo do review. Somente leitura após a
// construção.
func Default() Catalog {
	return Catalog{
		{
			Category: model.CatSecurity,
			Findings: []model.Finding{
				{
					File:           "auth.js",
					Issue:          "Hardcoded sensitive credentials",
					Severity:       model.SevCritical,
					Description:    "Okta domain, client ID, and redirect URI are hardcoded in client-side code",
					Recommendation: "Move sensitive configuration to environment variables or secure server-side endpoint",
					LineRef:        "Lines 11-17",
				},
				{
					File:           "auth.js",
					Issue:          "Syntax error in configuration object",
					Severity:       model.SevHigh,
					Description:    "Missing closing brace in helpLinks object causing runtime errors",
					Recommendation: "Fix syntax by adding missing closing brace",
					LineRef:        "Lines 36-43",
				},
				{
					File:           "auth.js",
					Issue:          "Insufficient error handling",
					Severity:       model.SevMedium,
					Description:    "Silent failures in authentication state checking",
					Recommendation: "Add proper error logging and user feedback",
					LineRef:        "checkAuthState method",
				},
			},
		},
		{
			Category: model.CatPerformance,
			Findings: []model.Finding{
				{
					File:           "app.js",
					Issue:          "Multiple DOM queries",
					Severity:       model.SevMedium,
					Description:    "Repeated querySelector calls without caching",
					Recommendation: "Cache DOM elements in constructor or init methods",
				},
				{
					File:           "app.js",
					Issue:          "Excessive session checking",
					Severity:       model.SevLow,
					Description:    "Session validation every 5 minutes may be too frequent",
					Recommendation: "Consider increasing interval to 15-30 minutes",
					LineRef:        "Line ~700",
				},
			},
		},
		{
			Category: model.CatMaintainability,
			Findings: []model.Finding{
				{
					File:           "auth.js",
					Issue:          "Missing JSDoc documentation",
					Severity:       model.SevMedium,
					Description:    "Complex authentication logic lacks proper documentation",
					Recommendation: "Add comprehensive JSDoc comments for all methods",
				},
				{
					File:           "app.js",
					Issue:          "Code duplication",
					Severity:       model.SevMedium,
					Description:    "Similar DOM manipulation patterns repeated across classes",
					Recommendation: "Create utility functions for common DOM operations",
				},
			},
		},
		{
			Category: model.CatUIUX,
			Findings: []model.Finding{
				{
					File:           "style.css",
					Issue:          "Accessibility concerns",
					Severity:       model.SevMedium,
					Description:    "Insufficient color contrast ratios and missing focus indicators",
					Recommendation: "Ensure WCAG 2.1 AA compliance for accessibility",
				},
				{
					File:           "index.html",
					Issue:          "Missing semantic HTML",
					Severity:       model.SevLow,
					Description:    "Limited use of semantic HTML5 elements",
					Recommendation: "Use proper semantic tags like <main>, <article>, <section>",
				},
			},
		},
	}
}

// Total soma os apontamentos de todas as categorias.
func (c Catalog) Total() int {
	total := 0
	for _, g := range c {
		total += len(g.Findings)
	}
	return total
}

// Count retorna a quantidade de apontamentos de uma categoria (0 se a
// categoria não existe no catálogo).
func (c Catalog) Count(cat model.Category) int {
	for _, g := range c {
		if g.Category == cat {
			return len(g.Findings)
		}
	}
	return 0
}
