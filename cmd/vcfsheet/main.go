package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apperrors "vcfsheet/pkg/common/errors"
)

var (
	// Global flags
	verbose    bool
	configPath string
	vcfPath    string

	// convert flags
	filterTags []string
	filterOp   string
	outputDir  string

	// Logger
	logger *zap.Logger
)

// rootCmd runs the conversion pipeline; subcommands cover inspection.
var rootCmd = &cobra.Command{
	Use:   "vcfsheet",
	Short: "Export VCF contacts to a spreadsheet, filtered by category tags",
	Long: `vcfsheet reads a vCard (VCF) contact file, keeps the contacts whose
category tags satisfy the requested combination, and writes the result
as an Excel workbook plus a JSON dump.

Tags are compared exactly (case-sensitive). The operator "&" keeps
contacts carrying every requested tag; "|" keeps contacts carrying at
least one. With no tags requested, every parsed contact is exported.

Without --vcf, the input defaults to the Contacts.vcf inside the newest
BusyContacts backup under the configured backup root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&vcfPath, "vcf", "", "path to the VCF file (default: latest backup)")

	rootCmd.Flags().StringSliceVar(&filterTags, "tags", nil, "tags identifying contacts of interest (repeatable or comma-separated)")
	rootCmd.Flags().StringVar(&filterOp, "op", "|", `logical operator combining the tags: "&" (all) or "|" (any)`)
	rootCmd.Flags().StringVar(&outputDir, "out", "", "output directory (overrides config)")

	rootCmd.AddCommand(tagsCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperrors.ExitCode(err))
	}
}
