// Package pricetracker holds build metadata for the appgen tool, which
// generates the icon set and Xcode project of the crypto price status bar app.
package pricetracker

// Version is the appgen release. Overridden at build time with
// -ldflags "-X github.com/Gamezxz/crypto-price-tracker.Version=...".
var Version = "0.3.0"
