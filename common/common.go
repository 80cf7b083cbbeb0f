// Package common holds identifiers shared across the protover binaries.
package common

// PackageName identifies this module in metrics and logs.
const PackageName = "github.com/flashbots/protover"

// Version is the release version of the protover binaries.
var Version = "dev"
