package sarif

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Sena-ops/reviewguard/internal/model"
)

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Message   Message    `json:"message"`
	Level     string     `json:"level"` // error, warning, note
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine int `json:"startLine"`
}

// Build converte os registros achatados do review em um log SARIF 2.1.0.
// O título do apontamento vira a regra e a referência de linha livre é
// interpretada para extrair a linha inicial.
func Build(records []model.FlatRecord, toolName, toolVersion string) *Log {
	results := make([]Result, 0, len(records))
	for _, r := range records {
		msg := strings.TrimSpace(r.Description)
		if rec := strings.TrimSpace(r.Recommendation); rec != "" {
			msg = msg + " Recomendação: " + rec
		}
		fileURI := toURI(r.File)
		if fileURI == "" {
			fileURI = "UNKNOWN"
		}

		results = append(results, Result{
			RuleID: r.Issue,
			Level:  sevToLevel(r.Severity),
			Message: Message{
				Text: msg,
			},
			Locations: []Location{
				{
					PhysicalLocation: PhysicalLocation{
						ArtifactLocation: ArtifactLocation{
							URI: fileURI,
						},
						Region: Region{
							StartLine: startLine(r.LineRef),
						},
					},
				},
			},
		})
	}

	return &Log{
		Version: "2.1.0",
		// schema RTM reconhecido por GitHub/VSCode
		Schema: "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    toolName,
						Version: toolVersion,
					},
				},
				Results: results,
			},
		},
	}
}

func sevToLevel(s model.Severity) string {
	switch s {
	case model.SevCritical, model.SevHigh:
		return "error"
	case model.SevMedium:
		return "warning"
	default:
		return "note"
	}
}

var lineNumber = regexp.MustCompile(`\d+`)

// startLine extrai o primeiro número da referência de linha livre
// (ex: "Lines 11-17" -> 11). Sem número, assume 1.
func startLine(ref string) int {
	m := lineNumber.FindString(ref)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

func toURI(p string) string {
	p = strings.TrimSpace(p)
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return strings.TrimPrefix(p, "./")
}
