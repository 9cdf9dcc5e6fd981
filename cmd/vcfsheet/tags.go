package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vcfsheet/internal/config"
	"vcfsheet/pkg/vcard"
)

// tagsCmd lists the distinct category tags present in a VCF file, with
// how many contacts carry each. Useful for finding the exact spelling a
// filter needs, since matching is case-sensitive.
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the distinct tags present in a VCF file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		input, err := resolveInput(cfg)
		if err != nil {
			return err
		}

		logger.Info("reading VCF file", zap.String("path", input))
		data, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("failed to read VCF file: %w", err)
		}

		contacts, report := vcard.Parse(data, logger)
		counts := vcard.CollectTags(contacts)

		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Printf("%s\t%d\n", name, counts[name])
		}
		fmt.Fprintf(os.Stderr, "%d contacts parsed, %d blocks skipped, %d distinct tags\n",
			report.Parsed, report.Skipped(), len(names))
		return nil
	},
}
