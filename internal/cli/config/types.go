// Package config provides configuration management for the cbioingest CLI.
//
// Configuration is merged from defaults, an optional YAML config file,
// CBIOINGEST_* environment variables, and command-line flags, in
// increasing order of precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	Schema       string `koanf:"schema"`
	ClinicalData string `koanf:"clinical_data"`
	StudyInfo    string `koanf:"study_info"`
	Tags         string `koanf:"tags"`
	MafDir       string `koanf:"maf_dir"`
	OutDir       string `koanf:"out_dir"`
	Verbose      bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultSchema = "NYCU OSCC"
	DefaultMafDir = "maf"
	DefaultOutDir = "cbioportal_study"
)
