package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the run configuration read from YAML and PMROLLUP_* variables.
type Config struct {
	Env        string `yaml:"env" env:"PMROLLUP_ENV" env-default:"prod"`
	Dir        string `yaml:"dir" env:"PMROLLUP_DIR" env-default:"."`
	MasterFile string `yaml:"master_file" env:"PMROLLUP_MASTER_FILE" env-default:"Resource & Projects.xlsx"`
	Output     string `yaml:"output" env:"PMROLLUP_OUTPUT" env-default:"output.xml"`
	Format     string `yaml:"format" env:"PMROLLUP_FORMAT" env-default:"xml"`
	Pretty     bool   `yaml:"pretty" env:"PMROLLUP_PRETTY" env-default:"false"`
	// DedupePersonnel loads a timesheet once per distinct name instead of
	// once per personnel row.
	DedupePersonnel bool `yaml:"dedupe_personnel" env:"PMROLLUP_DEDUPE_PERSONNEL" env-default:"false"`

	Layout `yaml:"layout"`
}

// Layout overrides the fixed row offsets of the source sheets.
type Layout struct {
	RegistryStartRow   int `yaml:"registry_start_row" env:"PMROLLUP_REGISTRY_START_ROW" env-default:"6"`
	WBSStartRow        int `yaml:"wbs_start_row" env:"PMROLLUP_WBS_START_ROW" env-default:"7"`
	TimesheetHeaderRow int `yaml:"timesheet_header_row" env:"PMROLLUP_TIMESHEET_HEADER_ROW" env-default:"4"`
	TimesheetDateCol   int `yaml:"timesheet_date_col" env:"PMROLLUP_TIMESHEET_DATE_COL" env-default:"5"`
	TimesheetStartRow  int `yaml:"timesheet_start_row" env:"PMROLLUP_TIMESHEET_START_ROW" env-default:"8"`
}

// Load reads the YAML file at path, or only the environment when path is empty.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return &cfg, nil
}
