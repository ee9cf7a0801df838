// Package main provides the CLI entry point for pmrollup.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pmrollup-go/internal/config"
	"github.com/ukaji3/pmrollup-go/internal/logger"
	"github.com/ukaji3/pmrollup-go/pkg/pmrollup"
	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/output"
	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/parser"
)

var (
	configPath      string
	dir             string
	masterFile      string
	outputPath      string
	format          string
	pretty          bool
	env             string
	dedupePersonnel bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pmrollup",
		Short: "Consolidate project, work-breakdown and timesheet workbooks",
		Long: `pmrollup reads the project registry workbook, every RD-<code>-WBS.xlsx
and Timesheet-<name>.xlsx it references, and writes one hierarchical document.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file (default: environment only)")
	rootCmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory holding the workbooks (default: .)")
	rootCmd.Flags().StringVar(&masterFile, "master", "", "Master workbook name (default: Resource & Projects.xlsx)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path, relative to --dir (default: output.xml)")
	rootCmd.Flags().StringVar(&format, "format", "", "Output format: xml, json, or yaml (default: xml)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	rootCmd.Flags().StringVar(&env, "env", "", "Logging environment: local, dev, or prod (default: prod)")
	rootCmd.Flags().BoolVar(&dedupePersonnel, "dedupe-personnel", false, "Load a timesheet once per name, not once per personnel row")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	log := logger.Setup(cfg.Env, cmd.ErrOrStderr())

	outFormat, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	res, err := pmrollup.Run(cfg.Dir, optionsFrom(cfg), log)
	if err != nil {
		return fmt.Errorf("rollup failed: %w", err)
	}

	target := cfg.Output
	if !filepath.IsAbs(target) {
		target = filepath.Join(cfg.Dir, target)
	}
	if err := pmrollup.Export(res, target, outFormat, cfg.Pretty); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	log.Debug("output written", slog.String("file", target), slog.String("format", string(outFormat)))

	fmt.Fprintf(cmd.OutOrStdout(), "Data written to %s\n", target)
	return nil
}

// applyFlags overrides loaded configuration with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = dir
	}
	if flags.Changed("master") {
		cfg.MasterFile = masterFile
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("pretty") {
		cfg.Pretty = pretty
	}
	if flags.Changed("env") {
		cfg.Env = env
	}
	if flags.Changed("dedupe-personnel") {
		cfg.DedupePersonnel = dedupePersonnel
	}
}

func optionsFrom(cfg *config.Config) pmrollup.Options {
	opts := pmrollup.DefaultOptions()
	opts.MasterFile = cfg.MasterFile
	opts.DedupePersonnel = cfg.DedupePersonnel
	opts.RegistryStartRow = cfg.RegistryStartRow
	opts.WBSStartRow = cfg.WBSStartRow
	opts.Timesheet = parser.TimesheetLayout{
		HeaderRow:    cfg.TimesheetHeaderRow,
		FirstDateCol: cfg.TimesheetDateCol,
		StartRow:     cfg.TimesheetStartRow,
	}
	return opts
}
