// Package config provides configuration loading, merging, and validation
// facilities for the user auth server and its command line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables (a .env file in the working directory is loaded first)
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
