// Package api provides the HTTP API layer for the version identifier service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes
// parsing, comparison, and bulk sorting of version identifiers via REST API.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/toolver/toolver/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Setting up route handlers (e.g., /v1/parse)
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET/POST /v1/parse   - Parse a version string into its structured form
//   - GET/POST /v1/compare - Compare two version strings under the total order
//   - POST     /v1/sort    - Sort a list of version strings ascending
//   - GET      /v1/info    - Service build and toolchain version info
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters
//
// GET /v1/parse accepts:
//   - version: The version string to parse (may be empty, which means
//     the unspecified version)
//
// GET /v1/compare accepts:
//   - left: The left-hand version string
//   - right: The right-hand version string
//
// # Request Body
//
// POST requests accept JSON (application/json) and YAML
// (application/x-yaml) bodies.
//
// Example parse request body:
//
//	{"version": "2.13.4-RC2"}
//
// Example sort request body:
//
//	{"versions": ["2.13.4", "2.11.7-M3", "any"]}
//
// Example curl command:
//
//	curl -X POST http://localhost:8080/v1/sort \
//	  -H "Content-Type: application/json" \
//	  -d '{"versions": ["3-cross", "2.13.4", "2.13.4-RC1"]}'
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/toolver/toolver/pkg/api.version=1.0.0'"
package api
