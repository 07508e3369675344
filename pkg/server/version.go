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

package server

import (
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is the default API version if none is negotiated
	DefaultAPIVersion = "v1"

	// vendorMIMEPrefix marks the custom vendor MIME type used for
	// version negotiation in the Accept header.
	vendorMIMEPrefix = "application/vnd.toolver.v"
)

// negotiateAPIVersion extracts the API version from the request.
// It supports version negotiation via Accept header like:
// Accept: application/vnd.toolver.v1+json
// and falls back to the X-API-Version request header.
// If neither names a supported version, it returns the default (v1).
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")

	// Parse Accept header for custom vendor MIME type
	// Format: application/vnd.toolver.v1+json
	if strings.Contains(accept, vendorMIMEPrefix) {
		parts := strings.Split(accept, ".")
		for _, part := range parts {
			if strings.HasPrefix(part, "v") {
				// Extract version (e.g., "v1+json" -> "v1")
				version := strings.Split(part, "+")[0]
				if isValidAPIVersion(version) {
					return version
				}
			}
		}
	}

	if version := r.Header.Get("X-API-Version"); isValidAPIVersion(version) {
		return version
	}

	return DefaultAPIVersion
}

// isValidAPIVersion checks if the provided version string is a valid API version.
// Currently supports: v1
func isValidAPIVersion(version string) bool {
	validVersions := map[string]bool{
		"v1": true,
		// Add future versions here as they become available
		// "v2": true,
	}
	return validVersions[version]
}

// SetAPIVersionHeader sets the API version header in the response.
// This helps clients understand which version of the API is being used.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
