// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The server reads [GetStructuredConfig]. The CLI reads [GetClientConfig],
// which skips the JSON file and returns the positional arguments left after
// its flags.
package config
