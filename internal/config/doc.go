// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the
// first source with a non-zero value wins:
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file in appsettings shape
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. A missing connection
// string, JWT issuer, audience, secret key or origin list is reported as an
// error so the process can fail at startup.
package config
