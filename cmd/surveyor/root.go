package main

import (
	"os"
	"strings"

	"github.com/SAP-F-2025/surveyor-service/internal/config"
	"github.com/SAP-F-2025/surveyor-service/internal/utils"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "surveyor",
		Short: "Administer psychometric questionnaires to simulated respondents",
		Long: `surveyor administers psychometric questionnaires (GSE, SPIN, STAI-Y1 and others)
to a roster of respondents, scores their answers and stores per-respondent results.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newInstrumentsCmd(), newAdministerCmd())
	return root
}

// newLogger follows the configured environment: text at debug level in
// development, JSON at info level elsewhere.
func newLogger(cfg *config.Config) utils.Logger {
	level := "info"
	if strings.EqualFold(cfg.Environment, "development") {
		level = "debug"
	}
	return utils.NewLogger(os.Stderr, cfg.Environment, level)
}
