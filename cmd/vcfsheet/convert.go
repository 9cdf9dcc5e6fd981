package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"vcfsheet/internal/config"
	apperrors "vcfsheet/pkg/common/errors"
	"vcfsheet/pkg/discover"
	"vcfsheet/pkg/export"
	"vcfsheet/pkg/filter"
	"vcfsheet/pkg/vcard"
)

// runConvert wires flags and config into the pipeline run.
func runConvert() error {
	// Validate the filter before touching the input file (fail fast on
	// bad config, not mid-stream).
	op, err := filter.ParseOperator(filterOp)
	if err != nil {
		return apperrors.NewRunError(apperrors.ExitUsage, "bad --op flag", err)
	}
	spec := filter.Spec{Tags: filterTags, Op: op}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	input, err := resolveInput(cfg)
	if err != nil {
		return err
	}

	report, err := convert(input, spec, cfg, logger)
	if err != nil {
		return err
	}
	fmt.Println(report.Summary())
	return nil
}

// convert runs the whole pipeline once: read, parse, filter, project,
// write. Every stage fully consumes its input before the next begins.
func convert(input string, spec filter.Spec, cfg config.Config, log *zap.Logger) (*vcard.Report, error) {
	if log == nil {
		log = zap.NewNop()
	}

	log.Info("reading VCF file", zap.String("path", input))
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read VCF file: %w", err)
	}

	contacts, report := vcard.Parse(data, log)
	matched := filter.Apply(contacts, spec)
	report.Matched = len(matched)
	report.Suggestions = filter.Suggest(spec.Tags, contacts)

	proj := export.Project(matched)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	w := export.NewWorkbookWriter(log)
	w.SheetName = cfg.SheetName
	if err := w.Write(cfg.WorkbookPath(), proj); err != nil {
		return nil, err
	}
	if err := export.WriteJSON(cfg.JSONPath(), proj); err != nil {
		return nil, err
	}

	log.Info("run complete",
		zap.String("run_id", report.RunID),
		zap.Int("blocks", report.BlocksSeen),
		zap.Int("parsed", report.Parsed),
		zap.Int("skipped", report.Skipped()),
		zap.Int("matched", report.Matched),
		zap.String("workbook", cfg.WorkbookPath()),
		zap.String("json", cfg.JSONPath()),
	)
	return report, nil
}

// resolveInput picks the input file: --vcf flag, then the configured
// path, then the newest backup under the backup root.
func resolveInput(cfg config.Config) (string, error) {
	if vcfPath != "" {
		return vcfPath, nil
	}
	if cfg.VCFPath != "" {
		return cfg.VCFPath, nil
	}
	if cfg.BackupRoot == "" {
		return "", apperrors.NewRunError(apperrors.ExitUsage,
			"no input file: pass --vcf or configure vcf_path/backup_root",
			apperrors.ErrInvalidInput)
	}
	return discover.LatestBackupVCF(cfg.BackupRoot)
}
