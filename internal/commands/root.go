package commands

import (
	pricetracker "github.com/Gamezxz/crypto-price-tracker"
	"github.com/Gamezxz/crypto-price-tracker/internal/config"
	"github.com/Gamezxz/crypto-price-tracker/internal/logger"
	"github.com/Gamezxz/crypto-price-tracker/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the appgen CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "appgen",
		Short: "Generate the icon set and Xcode project for the crypto price tracker",
		Long: `appgen writes the build assets of the Crypto Price Tracker status bar app.

• icons      renders the AppIcon set (PNG files plus Contents.json)
• xcodeproj  writes <Name>.xcodeproj/project.pbxproj with fresh object identifiers
• all        does both in one transaction

Settings come from appgen.yml, APPGEN_* environment variables (a .env file
is honoured) and finally command-line flags.`,
		Version:       pricetracker.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetWriter(cmd.OutOrStdout())
			output.SetVerbose(verbose)

			level := logger.LevelWarn
			if verbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.NewLogger(level, cmd.ErrOrStderr()))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("config", config.DefaultFile, "Path to the appgen config file")

	return cmd
}

// NewApp builds the root command with every subcommand registered.
func NewApp() *cobra.Command {
	root := RootCmd()
	root.AddCommand(IconsCmd())
	root.AddCommand(XcodeprojCmd())
	root.AddCommand(AllCmd())
	root.AddCommand(InitCmd())
	root.AddCommand(VersionCmd())
	return root
}
