// Package config holds the file-level settings of a run: where the input
// comes from and where the outputs go. Precedence is flags over
// environment over config file over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variable overrides.
const (
	envBackupRoot = "VCFSHEET_BACKUP_ROOT"
	envVCFPath    = "VCFSHEET_VCF_PATH"
	envOutputDir  = "VCFSHEET_OUTPUT_DIR"
)

// Config is the structure of the optional YAML config file.
type Config struct {
	BackupRoot   string `yaml:"backup_root"`
	VCFPath      string `yaml:"vcf_path"`
	OutputDir    string `yaml:"output_dir"`
	WorkbookName string `yaml:"workbook_name"`
	SheetName    string `yaml:"sheet_name"`
	JSONName     string `yaml:"json_name"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutputDir:    "out",
		WorkbookName: "contacts.xlsx",
		SheetName:    "Sheet1",
		JSONName:     "contacts.json",
	}
}

// Load reads the YAML file at path (when non-empty) over the defaults,
// then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envBackupRoot); v != "" {
		c.BackupRoot = v
	}
	if v := os.Getenv(envVCFPath); v != "" {
		c.VCFPath = v
	}
	if v := os.Getenv(envOutputDir); v != "" {
		c.OutputDir = v
	}
}

// WorkbookPath is the full output path of the Excel workbook.
func (c Config) WorkbookPath() string {
	return filepath.Join(c.OutputDir, c.WorkbookName)
}

// JSONPath is the full output path of the JSON dump.
func (c Config) JSONPath() string {
	return filepath.Join(c.OutputDir, c.JSONName)
}
