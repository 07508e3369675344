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

// Package serializer provides encoding and decoding of report data in multiple formats.
//
// # Overview
//
// The serializer package handles conversion between report data structures and
// various output formats including JSON, YAML, and human-readable tables. It supports
// both encoding (writing data) and decoding (reading data) operations with automatic
// format detection.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for configuration files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value text representation
//   - Suitable for terminal/console viewing
//   - Read-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout (YAML):
//
//	writer := serializer.NewStdoutWriter(serializer.FormatYAML)
//
//	data := map[string]any{"version": "2.13.4", "status": "ok"}
//	if err := writer.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to file, falling back to stdout when the path is empty:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "report.json")
//	if closer, ok := writer.(serializer.Closer); ok {
//	    defer closer.Close()
//	}
//
//	if err := writer.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// # Usage - Decoding
//
// Read from file with automatic format detection:
//
//	reader, err := serializer.NewFileReaderAuto("versions.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
//
//	var versions []string
//	if err := reader.Deserialize(&versions); err != nil {
//	    log.Fatal(err)
//	}
//
// Read with custom io.Reader:
//
//	reader, err := serializer.NewReader(serializer.FormatYAML, strings.NewReader(yamlData))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var versions []string
//	if err := reader.Deserialize(&versions); err != nil {
//	    log.Fatal(err)
//	}
//
// Load a typed value in one call (local path or HTTP/HTTPS URL):
//
//	versions, err := serializer.FromFile[[]string]("https://example.com/versions.json")
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
//
// Format detection is automatic when using:
//   - NewFileReaderAuto(path)
//   - FromFile[T](path)
//
// # Resource Management
//
// Always close writers and readers that manage files:
//
//	reader, err := serializer.NewFileReaderAuto("versions.json")
//	if err != nil {
//	    return err
//	}
//	defer reader.Close()  // Required for file resources
//
// Stdout writers don't require closing but Close() is safe to call.
//
// # Error Handling
//
// Errors are returned when:
//   - Format is unknown or unsupported
//   - File cannot be opened or created
//   - Data cannot be marshaled/unmarshaled
//   - Table format used for deserialization
//
// All errors include context for debugging.
//
// # Integration
//
// Used throughout toolver for data I/O:
//   - pkg/cli - Command output formatting and version list input
//   - pkg/api - HTTP response encoding
package serializer
