// Package config provides configuration management for smscctl.
//
// Configuration is loaded from multiple sources and merged in a specific
// order, with later sources overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (embedded in binary)
//  2. User Configuration (~/.config/smscctl/config.yaml)
//  3. Project Configuration (./.smscctl/config.yaml)
//  4. The file passed with --config, if any
//  5. Environment: SMSCCTL_API_URL and SMSCCTL_TOKEN
//
// Command-line flags are applied on top by the cmd package.
//
// # Configuration Structure
//
//	api:
//	  baseURL: "http://localhost:8080/api/v1"
//	  token: "${GATEWAY_TOKEN}"
//	  requestTimeout: 10s
//	notifications:
//	  duration: 6s
//	logging:
//	  level: info
//	  format: text   # or json
//	mockGateway:
//	  listen: "127.0.0.1:8080"
//	  seed: true
//
// # Environment Variable Expansion
//
// api.baseURL, api.token and mockGateway.token support ${VAR} and
// ${VAR:-default} references.
package config
