// Package version parses toolchain version strings and defines a
// total order over the parsed values.
//
// # Overview
//
// A version string is either one of three reserved literals or a
// concrete version of the form major[.minor[.revision]][-suffix]:
//
//   - "none" (or the empty string) parses to None, the unbounded
//     maximum
//   - "3-cross" parses to Cross, a second spelling of the maximum
//   - "any" parses to Any, the unbounded minimum
//   - anything else must match the grammar, e.g. "2.11.7-RC3"
//
// Missing minor and revision components default to zero, so "2.11"
// and "2.11.0" parse to equal values. The suffix classifies the
// build: absent or exactly "FINAL" is a final release, "RC<n>" a
// release candidate, "M<n>" a milestone (both matched in any case,
// whole suffix only), and everything else a Development build carried
// verbatim. "RC1.5" and "RCCola" are Development builds, not release
// candidates.
//
// # Ordering
//
// Compare defines a total order. Sentinels bound it on both ends:
// Any orders before every other version and None/Cross after. Concrete
// versions order by major, minor, and revision numerals, then by
// build maturity:
//
//	Milestone < RC < Final < Development
//
// A Development build orders after Final: an unrecognized build is
// assumed newest. Same-kind milestones and candidates compare by
// number, development builds by identifier bytes.
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.ParseVersion("2.11.7-RC3")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 2.11.7-RC3
//
// Compare versions:
//
//	required := version.MustParseVersion("2.12")
//	if version.GreaterOrEqual(v, required) {
//	    fmt.Println("Version requirement met")
//	}
//
// Bound a check with a sentinel:
//
//	if version.Less(v, version.None) {
//	    // Always true for concrete versions
//	}
//
// # Error Handling
//
// ParseVersion returns a *MalformedVersionError, which matches
// ErrMalformedVersion under errors.Is, for input that fits neither
// the reserved literals nor the grammar. ParseVersionWith routes the
// diagnostic to a caller-supplied handler instead and degrades to
// Any, for callers that prefer "oldest possible" over a hard failure.
// MustParseVersion panics and is intended for constants and tests.
package version
