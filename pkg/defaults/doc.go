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

// Package defaults provides centralized configuration constants for toolver.
//
// This package defines timeout values and request limits used across
// the codebase. Centralizing these values ensures consistency and
// makes tuning easier.
//
// # Categories
//
// Constants are organized by component:
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Client timeouts: For outbound HTTP transport tuning
//   - Request limits: For payload and bulk operation bounds
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/toolver/toolver/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ParseHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - HTTP handlers: 10s for parse and compare, 30s for bulk sorts
//   - Server shutdown: 30s for graceful shutdown
//   - Bulk requests: bounded by MaxBulkVersions entries
package defaults
