// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP host for the version identifier API.
//
// The package is domain agnostic: callers register handlers by path and
// the server supplies the middleware, probes, metrics, and lifecycle
// around them.
//
// # Architecture
//
// The server implements a stateless HTTP API with the following key components:
//
//   - Handler registration by path with a shared middleware chain
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - API version negotiation via vendor MIME type
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//   - Prometheus metrics on /metrics
//
// # Usage
//
// Basic server startup:
//
//	package main
//
//	import (
//	    "context"
//	    "net/http"
//
//	    "github.com/toolver/toolver/pkg/server"
//	)
//
//	func main() {
//	    s := server.New(
//	        server.WithName("toolver-api"),
//	        server.WithVersion("v1.2.3"),
//	        server.WithHandler(map[string]http.HandlerFunc{
//	            "/v1/parse": parseHandler,
//	        }),
//	    )
//	    if err := s.Run(context.Background()); err != nil {
//	        panic(err)
//	    }
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 200 // 200 requests/sec
//	cfg.RateLimitBurst = 400
//	cfg.MaxBulkVersions = 50
//
//	s := server.New(server.WithConfig(cfg))
//
// # API Endpoints
//
// The handlers registered by pkg/api expose:
//
//	GET|POST /v1/parse   - Parse a version string into its structured form
//	GET|POST /v1/compare - Compare two version strings under the total order
//	POST     /v1/sort    - Sort a list of version strings ascending
//	GET      /v1/info    - Service build and toolchain version info
//
//	Example:
//	  curl -X POST -d '{"version":"2.13.4-RC2"}' http://localhost:8080/v1/parse
//
// GET /health - Health check (for liveness probe)
//
//	Always returns 200 OK with {"status": "healthy", "timestamp": "..."}
//
// GET /ready - Readiness check (for readiness probe)
//
//	Returns 200 OK when ready, 503 when not ready
//
// GET /metrics - Prometheus metrics in text exposition format
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with Retry-After header.
//
// Metrics:
//
//	The /metrics endpoint serves request counts, latency histograms,
//	in-flight gauges, rate limit rejects, and panic recoveries under
//	the toolver_ prefix.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "MALFORMED_VERSION",
//	  "message": "Bad version (2.x) not major[.minor[.revision]][-suffix]",
//	  "details": {"input": "2.x"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes:
//   - INVALID_REQUEST: Invalid request payload (400)
//   - MALFORMED_VERSION: Version string failed to parse (400)
//   - NOT_FOUND: Unknown resource (404)
//   - METHOD_NOT_ALLOWED: Unsupported HTTP method (405)
//   - RATE_LIMIT_EXCEEDED: Too many requests (429)
//   - TIMEOUT: Handler deadline exceeded (504)
//   - INTERNAL: Server error (500)
//
// # Deployment
//
// Kubernetes deployment example:
//
//	apiVersion: apps/v1
//	kind: Deployment
//	metadata:
//	  name: toolver-api
//	spec:
//	  replicas: 3
//	  selector:
//	    matchLabels:
//	      app: toolver-api
//	  template:
//	    metadata:
//	      labels:
//	        app: toolver-api
//	    spec:
//	      containers:
//	      - name: api
//	        image: toolver-api:latest
//	        ports:
//	        - containerPort: 8080
//	        env:
//	        - name: PORT
//	          value: "8080"
//	        livenessProbe:
//	          httpGet:
//	            path: /health
//	            port: 8080
//	          initialDelaySeconds: 5
//	          periodSeconds: 10
//	        readinessProbe:
//	          httpGet:
//	            path: /ready
//	            port: 8080
//	          initialDelaySeconds: 5
//	          periodSeconds: 5
//	        resources:
//	          requests:
//	            cpu: 100m
//	            memory: 128Mi
//	          limits:
//	            cpu: 1000m
//	            memory: 512Mi
//
// # Performance
//
// Benchmarks (on M1 Mac):
//
//	BenchmarkParseVersion-8    2000000    600 ns/op    250 B/op    5 allocs/op
//	BenchmarkCompare-8        20000000     60 ns/op      0 B/op    0 allocs/op
//
// The server is designed to handle thousands of requests per second with
// proper horizontal scaling. Rate limiting prevents resource exhaustion.
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
//   - Prometheus instrumentation: https://pkg.go.dev/github.com/prometheus/client_golang/prometheus/promhttp
//   - HTTP best practices: https://datatracker.ietf.org/doc/html/rfc7807
//   - Kubernetes probes: https://kubernetes.io/docs/tasks/configure-pod-container/configure-liveness-readiness-startup-probes/
package server
