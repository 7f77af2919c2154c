package cmd

import (
	"fmt"
	"os"

	"github.com/Sena-ops/reviewguard/internal/catalog"
	"github.com/Sena-ops/reviewguard/internal/logging"
	"github.com/Sena-ops/reviewguard/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var outputFormat string
var csvPath string
var debugMode bool

var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "reviewguard",
	Short: "ReviewGuard - Relatório de apontamentos de code review",
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		logger, err = logging.InitLogger(debugMode)
		if err != nil {
			fmt.Println("Erro ao iniciar logger:", err)
			os.Exit(1)
		}
		defer logger.Sync()

		cat := catalog.Default()
		logger.Debugf("Catálogo carregado: %d categoria(s), %d apontamento(s)", len(cat), cat.Total())

		// Formatos alternativos saem no stdout e não gravam CSV.
		if outputFormat != "" {
			rendered, err := report.Render(outputFormat, cat)
			if err != nil {
				logger.Errorw("Erro ao gerar relatório", "erro", err)
				os.Exit(1)
			}
			fmt.Println(rendered)
			return
		}

		fmt.Println("=== RESUMO DO CODE REVIEW ===")
		report.Summarize(cat).Fprint(os.Stdout)

		records := report.Flatten(cat)
		if err := report.WriteCSV(records, csvPath); err != nil {
			logger.Errorw("Erro ao exportar CSV", "erro", err)
			os.Exit(1)
		}
		fmt.Printf("\n✅ Apontamentos exportados para %s (%d linha(s))\n", csvPath, len(records))
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Imprime o relatório no formato indicado (json, markdown, sarif) sem gravar CSV")
	rootCmd.Flags().StringVarP(&csvPath, "saida", "s", "code_review_findings.csv", "Caminho do arquivo CSV gerado")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
}
