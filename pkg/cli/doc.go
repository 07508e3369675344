// Package cli implements the command-line interface for the toolver tool.
//
// # Overview
//
// The toolver CLI provides commands for parsing textual version identifiers,
// comparing them under a total order, and ordering whole lists. It is designed
// for build tooling and release scripts that need one authoritative answer to
// "which of these versions is newer".
//
// # Commands
//
// parse - Parse a version string:
//
//	toolver parse 2.13.4-RC2 [--output FILE] [--format yaml|json|table]
//
// Parses a single version string and prints its structured form: kind, numeric
// components, build suffix classification, and canonical rendering. Sentinel
// spellings ("", "none", "3-cross", "any") are recognized before the numeric
// grammar. Malformed input fails with the parser diagnostic.
//
// compare - Compare two versions:
//
//	toolver compare 2.13.4-RC2 2.13.4 [--quiet]
//
// Reports the relation between two versions: both parsed forms, the normalized
// result (-1, 0, 1), and the relation label (before, equal, after). With
// --quiet the relation is encoded in the exit code for scripting.
//
// sort - Order a list of versions:
//
//	toolver sort 2.13.4 2.11.0-M7 any [--reverse] [--input FILE_OR_URL]
//
// Sorts version spellings in ascending order, stably, preserving the original
// spellings. Input can come from arguments, from a YAML/JSON list in a file or
// at an http(s) URL, or both.
//
// latest - Select the greatest version:
//
//	toolver latest 2.13.3 2.13.4 2.12.20 [--input FILE_OR_URL]
//
// Prints the canonical rendering of the greatest version in the list.
//
// check - Gate on ordering bounds:
//
//	toolver check 2.13.4 --at-least 2.12.0 [--below 3.0.0]
//
// Checks a version against an inclusive lower bound and an exclusive upper
// bound. Exits 0 when satisfied, 1 otherwise.
//
// version - Print build information:
//
//	toolver version
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -f   Output format: yaml, json, table (default: yaml)
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default):
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// JSON:
//   - Machine-parseable, compact
//   - Matches the shapes served by the toolverd HTTP API
//
// Table:
//   - Hierarchical text representation
//   - Suitable for terminal viewing
//
// # Usage Examples
//
// Parse a milestone as JSON:
//
//	toolver parse --format json 2.11.0-M7
//
// Gate a deployment script on a minimum version:
//
//	toolver check "$TOOLCHAIN_VERSION" --at-least 2.12.0 || exit 1
//
// Sort a published release list:
//
//	toolver sort --input https://releases.example.com/versions.yaml
//
// # Environment Variables
//
//	LOG_LEVEL       Set logging verbosity (debug, info, warn, error)
//	TOOLVER_FORMAT  Default output format when --format is not given
//
// # Exit Codes
//
//	0  Success; for compare --quiet: versions are order-equal;
//	   for check: all bounds satisfied
//	1  General error (invalid arguments, malformed version, execution
//	   failure); for check: a bound was not satisfied
//	2  compare --quiet: left orders before right
//	3  compare --quiet: left orders after right
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/version - Parsing, total order, toolchain version
//   - pkg/api - Wire shapes shared with the toolverd HTTP API
//   - pkg/serializer - Output formatting and list loading
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/toolver/toolver/pkg/cli.version=1.0.0'"
package cli
