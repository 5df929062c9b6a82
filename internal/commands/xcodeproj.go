package commands

import (
	"fmt"

	"github.com/Gamezxz/crypto-price-tracker/generator"
	"github.com/Gamezxz/crypto-price-tracker/internal/config"
	"github.com/Gamezxz/crypto-price-tracker/internal/xcodeproj"
	"github.com/Gamezxz/crypto-price-tracker/output"
	"github.com/spf13/cobra"
)

// projectFlags override the project section of the config.
type projectFlags struct {
	name        string
	displayName string
	bundleID    string
	template    string
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Project and target name")
	cmd.Flags().StringVar(&f.displayName, "display-name", "", "CFBundleDisplayName of the app")
	cmd.Flags().StringVar(&f.bundleID, "bundle-id", "", "Bundle identifier")
	cmd.Flags().StringVar(&f.template, "template", "", "Manifest template file replacing the built-in one")
}

func (f *projectFlags) apply(cmd *cobra.Command, p *xcodeproj.Project) {
	if cmd.Flags().Changed("name") {
		p.Name = f.name
	}
	if cmd.Flags().Changed("display-name") {
		p.DisplayName = f.displayName
	}
	if cmd.Flags().Changed("bundle-id") {
		p.BundleID = f.bundleID
	}
}

// XcodeprojCmd creates the 'xcodeproj' command
func XcodeprojCmd() *cobra.Command {
	var flags writeFlags
	var project projectFlags

	cmd := &cobra.Command{
		Use:   "xcodeproj",
		Short: "Write the Xcode project manifest",
		Long: `Write <Name>.xcodeproj/project.pbxproj with a fresh identifier for each of
its 20 objects, plus the icon set's Contents.json.

Every run draws new identifiers, so regenerating always changes the
manifest; use --skip to keep an existing one.

Examples:
  appgen xcodeproj
  appgen xcodeproj --name EthTicker --bundle-id com.example.eth
  appgen xcodeproj --dry-run -o build`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			project.apply(cmd, &cfg.Project)

			ops, err := manifestOps(cfg, flags.root(cmd, cfg), project.template)
			if err != nil {
				return err
			}
			return execute(cmd, ops, &flags)
		},
	}

	flags.register(cmd)
	project.register(cmd)

	return cmd
}

func manifestOps(cfg *config.Config, root, template string) ([]generator.Operation, error) {
	output.Verbose(fmt.Sprintf("Generating %s.xcodeproj in %s", cfg.Project.Name, root))

	ops, err := xcodeproj.NewGenerator().Generate(xcodeproj.Options{
		Root:     root,
		Project:  cfg.Project,
		IconDir:  cfg.Output.Icons,
		Template: template,
	})
	if err != nil {
		return nil, fmt.Errorf("generating project: %w", err)
	}
	return ops, nil
}
