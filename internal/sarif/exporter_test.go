package sarif

import (
	"testing"

	"github.com/Sena-ops/reviewguard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartLine(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected int
	}{
		{"intervalo", "Lines 11-17", 11},
		{"aproximado", "Line ~700", 700},
		{"sem_numero", "checkAuthState method", 1},
		{"nao_aplicavel", "N/A", 1},
		{"vazio", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, startLine(tt.ref))
		})
	}
}

func TestSevToLevel(t *testing.T) {
	assert.Equal(t, "error", sevToLevel(model.SevCritical))
	assert.Equal(t, "error", sevToLevel(model.SevHigh))
	assert.Equal(t, "warning", sevToLevel(model.SevMedium))
	assert.Equal(t, "note", sevToLevel(model.SevLow))
	assert.Equal(t, "note", sevToLevel(model.SevInfo))
}

func TestBuild(t *testing.T) {
	records := []model.FlatRecord{
		{
			Category:       "Security Issues",
			File:           "./auth.js",
			Issue:          "Hardcoded sensitive credentials",
			Severity:       model.SevCritical,
			Description:    "Credenciais no código cliente",
			Recommendation: "Mover para variáveis de ambiente",
			LineRef:        "Lines 11-17",
		},
		{
			Category:    "Ui Ux Issues",
			File:        "",
			Issue:       "Missing semantic HTML",
			Severity:    model.SevLow,
			Description: "Poucos elementos semânticos",
			LineRef:     "N/A",
		},
	}

	log := Build(records, "ReviewGuard", "0.1.0")

	assert.Equal(t, "2.1.0", log.Version)
	require.Len(t, log.Runs, 1)
	assert.Equal(t, "ReviewGuard", log.Runs[0].Tool.Driver.Name)
	assert.Equal(t, "0.1.0", log.Runs[0].Tool.Driver.Version)

	results := log.Runs[0].Results
	require.Len(t, results, 2)

	assert.Equal(t, "Hardcoded sensitive credentials", results[0].RuleID)
	assert.Equal(t, "error", results[0].Level)
	assert.Equal(t, "Credenciais no código cliente Recomendação: Mover para variáveis de ambiente", results[0].Message.Text)
	assert.Equal(t, "auth.js", results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 11, results[0].Locations[0].PhysicalLocation.Region.StartLine)

	assert.Equal(t, "note", results[1].Level)
	assert.Equal(t, "UNKNOWN", results[1].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 1, results[1].Locations[0].PhysicalLocation.Region.StartLine)
}
