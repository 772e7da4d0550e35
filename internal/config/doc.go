// Package config provides configuration loading, merging, and validation
// facilities for the model-hub client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. JSON config file
//  4. Command-line overrides
//
// Remaining empty fields get defaults: API URL "/api", server address
// "localhost:8000", request timeout 30s.
//
// The main entry point is [GetClientConfig].
package config
