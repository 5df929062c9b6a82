package commands

import (
	"fmt"

	"github.com/Gamezxz/crypto-price-tracker/generator"
	"github.com/Gamezxz/crypto-price-tracker/internal/config"
	"github.com/Gamezxz/crypto-price-tracker/output"
	"github.com/spf13/cobra"
)

// InitCmd creates the 'init' command
func InitCmd() *cobra.Command {
	var flags writeFlags

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default appgen.yml",
		Long: `Write the default configuration to the --config path (appgen.yml).

The file lists every setting with the value appgen uses when it is absent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			data, err := config.Marshal(config.Default())
			if err != nil {
				return err
			}
			ops := []generator.Operation{&generator.WriteFileOp{Path: path, Content: data, Mode: 0644}}
			if err := execute(cmd, ops, &flags); err != nil {
				return err
			}
			if !flags.dryRun {
				output.Step(fmt.Sprintf("Edit %s, then run: appgen all", path))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Preview changes without writing files")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&flags.skip, "skip", false, "Keep an existing config file")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "Show the diff and ask before overwriting")

	return cmd
}
