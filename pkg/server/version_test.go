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
	"net/http/httptest"
	"testing"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name          string
		accept        string
		versionHeader string
		want          string
	}{
		{"empty accept defaults", "", "", DefaultAPIVersion},
		{"non-vendor accept defaults", "application/json", "", DefaultAPIVersion},
		{"vendor v1", "application/vnd.toolver.v1+json", "", "v1"},
		{"vendor v2 unsupported defaults", "application/vnd.toolver.v2+json", "", DefaultAPIVersion},
		{"vendor malformed defaults", "application/vnd.toolver.vBAD+json", "", DefaultAPIVersion},
		{"version header v1", "", "v1", "v1"},
		{"version header unsupported defaults", "", "v9", DefaultAPIVersion},
		{"vendor beats version header", "application/vnd.toolver.v1+json", "v9", "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if tt.versionHeader != "" {
				req.Header.Set("X-API-Version", tt.versionHeader)
			}
			if got := negotiateAPIVersion(req); got != tt.want {
				t.Fatalf("negotiateAPIVersion(Accept=%q, X-API-Version=%q) = %q, want %q",
					tt.accept, tt.versionHeader, got, tt.want)
			}
		})
	}
}

func TestIsValidAPIVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{"v1 valid", "v1", true},
		{"v2 invalid", "v2", false},
		{"empty invalid", "", false},
		{"random invalid", "nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidAPIVersion(tt.version); got != tt.want {
				t.Fatalf("isValidAPIVersion(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestSetAPIVersionHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAPIVersionHeader(rec, "v1")

	if got := rec.Header().Get("X-API-Version"); got != "v1" {
		t.Fatalf("expected X-API-Version v1, got %q", got)
	}
}
