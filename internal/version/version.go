// Package version holds the application version, overridden at build time with
//
//	go build -ldflags "-X github.com/michaeljamescarne/property-fee-calculator-sub002/internal/version.Version=1.2.0"
package version

// Version is the application version.
var Version = "dev"
