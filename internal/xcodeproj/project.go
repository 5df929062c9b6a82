package xcodeproj

import (
	"errors"
	"fmt"
	"regexp"
)

// Project holds the settings substituted into the manifest.
type Project struct {
	Name             string `yaml:"name"`
	DisplayName      string `yaml:"display_name"`
	BundleID         string `yaml:"bundle_id"`
	MarketingVersion string `yaml:"marketing_version"`
	DeploymentTarget string `yaml:"deployment_target"`
	Category         string `yaml:"category"`
}

// DefaultProject describes the crypto price status bar app.
func DefaultProject() Project {
	return Project{
		Name:             "BitcoinPriceStatusBar",
		DisplayName:      "Crypto Price Tracker",
		BundleID:         "com.crypto.pricetracker",
		MarketingVersion: "1.0.0",
		DeploymentTarget: "13.0",
		Category:         "public.app-category.finance",
	}
}

// Name, versions and deployment target are written unquoted, so they are
// restricted to characters the manifest format accepts bare.
var (
	bareValue = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)
	bundleID  = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)
)

// Validate reports every setting that would produce a broken manifest.
func (p Project) Validate() error {
	var errs []error
	check := func(field, value string, re *regexp.Regexp) {
		switch {
		case value == "":
			errs = append(errs, fmt.Errorf("%s is required", field))
		case re != nil && !re.MatchString(value):
			errs = append(errs, fmt.Errorf("%s %q is not valid", field, value))
		}
	}

	check("name", p.Name, bareValue)
	check("display name", p.DisplayName, nil)
	check("bundle id", p.BundleID, bundleID)
	check("marketing version", p.MarketingVersion, bareValue)
	check("deployment target", p.DeploymentTarget, bareValue)
	check("category", p.Category, nil)

	return errors.Join(errs...)
}
