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

package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// versionPattern matches major[.minor[.revision]][-suffix]. The
	// suffix is unconstrained and may span lines.
	versionPattern = regexp.MustCompile(`(?s)^(\d+)(?:\.(\d+)(?:\.(\d+))?)?(?:-(.*))?$`)

	// rcPattern and milestonePattern classify the suffix, whole match
	// only: "RC1.5" and "RCCola" fall through to Development.
	rcPattern        = regexp.MustCompile(`(?i)^rc(\d*)$`)
	milestonePattern = regexp.MustCompile(`(?i)^m(\d*)$`)
)

// ErrMalformedVersion matches, via errors.Is, any error returned by
// ParseVersion. The concrete error is a *MalformedVersionError.
var ErrMalformedVersion = errors.New("malformed version")

// MalformedVersionError carries the input rejected by ParseVersion.
type MalformedVersionError struct {
	Input string
}

// Error returns the grammar diagnostic for the rejected input.
func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("Bad version (%s) not major[.minor[.revision]][-suffix]", e.Input)
}

// Is reports whether target is ErrMalformedVersion.
func (e *MalformedVersionError) Is(target error) bool {
	return target == ErrMalformedVersion
}

// ParseVersion parses a version string into a Version.
//
// Three literals are recognized before the general grammar: "none" and
// the empty string parse to None, "3-cross" to Cross, and "any" to
// Any. Everything else must match major[.minor[.revision]][-suffix],
// where missing minor and revision default to zero and the suffix
// classifies the build: none or exactly "FINAL" is a final release,
// "RC" or "M" with an optional number (any case) is a candidate or
// milestone, and any other suffix is a Development build carried
// verbatim.
//
// Returns a *MalformedVersionError when the input matches neither the
// literals nor the grammar.
func ParseVersion(s string) (Version, error) {
	v, ok := parseVersion(s)
	if !ok {
		return nil, &MalformedVersionError{Input: s}
	}
	return v, nil
}

// ParseVersionWith parses like ParseVersion but reports malformed
// input to onError instead of returning an error. When onError
// returns, or is nil, the input is treated as the oldest possible
// version and Any is returned.
func ParseVersionWith(s string, onError func(msg string)) Version {
	v, ok := parseVersion(s)
	if !ok {
		if onError != nil {
			onError((&MalformedVersionError{Input: s}).Error())
		}
		return Any
	}
	return v
}

// MustParseVersion parses a version string and panics if parsing
// fails. This function is useful for initializing package-level
// constants or test data where the version string is known to be
// valid at compile time.
//
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use ParseVersion and handle errors explicitly.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

func parseVersion(s string) (Version, bool) {
	switch s {
	case "", string(None):
		return None, true
	case string(Cross):
		return Cross, true
	case string(Any):
		return Any, true
	}

	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}

	major, ok := parseNumeral(m[1])
	if !ok {
		return nil, false
	}
	minor, ok := parseNumeral(m[2])
	if !ok {
		return nil, false
	}
	revision, ok := parseNumeral(m[3])
	if !ok {
		return nil, false
	}
	build, ok := parseBuild(m[4])
	if !ok {
		return nil, false
	}

	return Specific{Major: major, Minor: minor, Revision: revision, Build: build}, true
}

// parseNumeral converts a grammar digit group, defaulting an empty
// group to zero. Numerals past the native int range are rejected.
func parseNumeral(digits string) (int, bool) {
	if digits == "" {
		return 0, true
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseBuild classifies the dash suffix. Only the exact uppercase
// "FINAL" names a final release; "rc" and "m" match in any case when
// followed by nothing but digits.
func parseBuild(suffix string) (Build, bool) {
	if suffix == "" || suffix == "FINAL" {
		return Final, true
	}
	if m := rcPattern.FindStringSubmatch(suffix); m != nil {
		n, ok := parseNumeral(m[1])
		if !ok {
			return nil, false
		}
		return RC(n), true
	}
	if m := milestonePattern.FindStringSubmatch(suffix); m != nil {
		n, ok := parseNumeral(m[1])
		if !ok {
			return nil, false
		}
		return Milestone(n), true
	}
	return Development(suffix), true
}
