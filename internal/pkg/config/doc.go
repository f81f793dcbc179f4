// Package config provides the settings structs for the CLI and the REST API.
//
// Settings are read from a YAML file, optionally overlaid by a .env file and
// TOYRSA_* environment variables, and validated before use.
package config
