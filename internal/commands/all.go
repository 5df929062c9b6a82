package commands

import (
	"github.com/Gamezxz/crypto-price-tracker/generator"
	"github.com/spf13/cobra"
)

// AllCmd creates the 'all' command
func AllCmd() *cobra.Command {
	var flags writeFlags
	var project projectFlags
	var workers int

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Render the icon set and write the Xcode project",
		Long: `Run 'icons' and 'xcodeproj' together. All files are written in one
transaction: if any write fails, nothing is left half-generated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Render.Workers = workers
			}
			project.apply(cmd, &cfg.Project)
			root := flags.root(cmd, cfg)

			icons, err := iconOps(cmd.Context(), cfg, root)
			if err != nil {
				return err
			}
			manifest, err := manifestOps(cfg, root, project.template)
			if err != nil {
				return err
			}
			return execute(cmd, merge(icons, manifest), &flags)
		},
	}

	flags.register(cmd)
	project.register(cmd)
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel renders (0 = one per CPU)")

	return cmd
}

// merge concatenates groups, dropping writes to a path that an earlier
// operation already writes. Both generators emit Contents.json.
func merge(groups ...[]generator.Operation) []generator.Operation {
	seen := make(map[string]bool)
	var out []generator.Operation
	for _, group := range groups {
		for _, op := range group {
			if w, ok := op.(*generator.WriteFileOp); ok {
				if seen[w.Path] {
					continue
				}
				seen[w.Path] = true
			}
			out = append(out, op)
		}
	}
	return out
}
