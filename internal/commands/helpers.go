package commands

import (
	"fmt"
	"path/filepath"

	"github.com/Gamezxz/crypto-price-tracker/generator"
	"github.com/Gamezxz/crypto-price-tracker/internal/config"
	"github.com/Gamezxz/crypto-price-tracker/output"
	"github.com/spf13/cobra"
)

// writeFlags are shared by every command that writes files.
type writeFlags struct {
	out    string
	dryRun bool
	force  bool
	skip   bool
	diff   bool
}

func (f *writeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.out, "out", "o", ".", "Output root directory")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Preview changes without writing files")
	cmd.Flags().BoolVar(&f.force, "force", false, "Overwrite existing files without prompting")
	cmd.Flags().BoolVar(&f.skip, "skip", false, "Keep existing files that differ")
	cmd.Flags().BoolVar(&f.diff, "diff", false, "Show diffs and ask before overwriting")
}

// root is --out when given, the configured output root otherwise.
func (f *writeFlags) root(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("out") {
		return f.out
	}
	return cfg.Output.Root
}

// loadConfig reads .env and the --config file. The default file may be
// absent; a file named explicitly must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := config.LoadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}
	output.Verbose(fmt.Sprintf("Config: root=%s icons=%s project=%s", cfg.Output.Root, cfg.Output.Icons, cfg.Project.Name))
	return cfg, nil
}

// execute resolves conflicts and commits ops, then prints a summary.
func execute(cmd *cobra.Command, ops []generator.Operation, f *writeFlags) error {
	resolver, err := generator.NewResolver(f.force, f.skip, f.diff)
	if err != nil {
		return err
	}
	resolver.WithOutput(cmd.OutOrStdout())

	output.Verbose(fmt.Sprintf("Executing %d operations (dry-run=%v)", len(ops), f.dryRun))
	sum, err := generator.ExecuteWithSummary(cmd.Context(), ops, generator.ExecuteOptions{
		DryRun:   f.dryRun,
		Resolver: resolver,
		Writer:   cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	if f.dryRun {
		output.Info(fmt.Sprintf("Dry run: %d files would be written", sum.Written))
		return nil
	}
	output.Success(fmt.Sprintf("Wrote %d files (%d identical, %d skipped)", sum.Written, sum.Identical, sum.Skipped))
	return nil
}
