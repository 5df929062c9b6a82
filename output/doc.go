// Package output prints styled status lines for the appgen CLI.
//
// Every command reports through this package so that icon and project
// generation look the same in the terminal:
//
//	output.Success("Icon set written")
//	output.Info("Next steps:")
//	output.Step("open BitcoinPriceStatusBar.xcodeproj")
//	output.Error("cannot write Contents.json: permission denied")
//
// Verbose lines are hidden unless SetVerbose(true) was called, which the
// root command does for --verbose.
//
// Styles:
//
//   - Success: ✨ green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
