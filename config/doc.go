// Package config loads configuration for the example applications from a
// YAML file with environment variable overrides.
//
// Expected layout:
//
//	environment: development
//	host: 127.0.0.1
//	port: 8080
//	logger:
//	  level: 4
//	  format: text
//	data:
//	  database:
//	    driver: sqlite3
//	    source: file:example.db?cache=shared
//
// Environment variables prefixed with RELAY_ override file values, e.g.
// RELAY_PORT=9090.
package config
