package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Gamezxz/crypto-price-tracker/generator"
	"github.com/Gamezxz/crypto-price-tracker/internal/config"
	"github.com/Gamezxz/crypto-price-tracker/internal/icon"
	"github.com/Gamezxz/crypto-price-tracker/output"
	"github.com/spf13/cobra"
)

// IconsCmd creates the 'icons' command
func IconsCmd() *cobra.Command {
	var flags writeFlags
	var workers int

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Render the AppIcon set",
		Long: `Render the application icon at every macOS size.

Writes icon_<S>x<S>.png for 16, 32, 64, 128, 256, 512 and 1024 pixels, an
@2x variant for every size up to 512, and the Contents.json that lists them:

  Assets.xcassets/AppIcon.appiconset/icon_16x16.png
  Assets.xcassets/AppIcon.appiconset/icon_16x16@2x.png
  ...
  Assets.xcassets/AppIcon.appiconset/Contents.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Render.Workers = workers
			}

			ops, err := iconOps(cmd.Context(), cfg, flags.root(cmd, cfg))
			if err != nil {
				return err
			}
			return execute(cmd, ops, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel renders (0 = one per CPU)")

	return cmd
}

func iconOps(ctx context.Context, cfg *config.Config, root string) ([]generator.Operation, error) {
	if cfg.Render.Workers < 0 {
		return nil, fmt.Errorf("--workers must not be negative, got %d", cfg.Render.Workers)
	}
	dir := filepath.Join(root, cfg.Output.Icons)
	output.Verbose(fmt.Sprintf("Rendering icons into %s", dir))

	ops, err := icon.NewGenerator().Generate(ctx, icon.Options{
		Dir:     dir,
		Workers: cfg.Render.Workers,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering icons: %w", err)
	}
	return ops, nil
}
