// Package config loads application configuration from environment
// variables with development defaults. Validate reports every failure at
// once so a misconfigured deployment surfaces all problems in one pass.
package config
