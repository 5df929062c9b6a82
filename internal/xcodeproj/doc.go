// Package xcodeproj generates the project.pbxproj manifest of the status bar
// app. The manifest is a fixed template; only object identifiers and a few
// project settings vary between runs.
package xcodeproj
