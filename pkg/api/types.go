package api

import (
	ver "github.com/toolver/toolver/pkg/version"
)

// Version kind labels used in API payloads.
const (
	KindNone     = "none"
	KindCross    = "cross"
	KindAny      = "any"
	KindSpecific = "specific"
)

// Build kind labels used in API payloads.
const (
	BuildMilestone   = "milestone"
	BuildRC          = "rc"
	BuildFinal       = "final"
	BuildDevelopment = "development"
)

// ParseRequest is the body for POST /v1/parse.
// Version is a pointer so an explicit empty string (meaning the
// unspecified version) is distinguishable from an absent field.
type ParseRequest struct {
	Version *string `json:"version" yaml:"version"`
}

// BuildPayload describes the build suffix of a specific version.
type BuildPayload struct {
	Kind   string `json:"kind" yaml:"kind"`
	Number *int   `json:"number,omitempty" yaml:"number,omitempty"`
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
}

// VersionPayload is the structured form of a parsed version.
type VersionPayload struct {
	Input     string        `json:"input" yaml:"input"`
	Canonical string        `json:"canonical" yaml:"canonical"`
	Kind      string        `json:"kind" yaml:"kind"`
	Major     *int          `json:"major,omitempty" yaml:"major,omitempty"`
	Minor     *int          `json:"minor,omitempty" yaml:"minor,omitempty"`
	Revision  *int          `json:"revision,omitempty" yaml:"revision,omitempty"`
	Build     *BuildPayload `json:"build,omitempty" yaml:"build,omitempty"`
}

// CompareRequest is the body for POST /v1/compare.
type CompareRequest struct {
	Left  *string `json:"left" yaml:"left"`
	Right *string `json:"right" yaml:"right"`
}

// CompareResponse reports the ordering of two versions.
// Result is normalized to -1, 0, or 1.
type CompareResponse struct {
	Left     VersionPayload `json:"left" yaml:"left"`
	Right    VersionPayload `json:"right" yaml:"right"`
	Result   int            `json:"result" yaml:"result"`
	Relation string         `json:"relation" yaml:"relation"`
}

// SortRequest is the body for POST /v1/sort.
type SortRequest struct {
	Versions []string `json:"versions" yaml:"versions"`
}

// SortResponse returns the input spellings in ascending version order.
type SortResponse struct {
	Versions []string `json:"versions" yaml:"versions"`
}

// InfoResponse reports service build details and the toolchain version
// the binary was stamped with.
type InfoResponse struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	Toolchain string `json:"toolchain" yaml:"toolchain"`
}

// NewVersionPayload converts a parsed version into its API form. It is
// shared by the HTTP handlers and the CLI so both surfaces emit the same
// shape for a given input.
func NewVersionPayload(input string, v ver.Version) VersionPayload {
	p := VersionPayload{
		Input:     input,
		Canonical: v.String(),
		Kind:      KindNone,
	}

	switch t := v.(type) {
	case ver.Specific:
		p.Kind = KindSpecific
		major, minor, revision := t.Major, t.Minor, t.Revision
		p.Major = &major
		p.Minor = &minor
		p.Revision = &revision
		p.Build = toBuildPayload(t.Build)
	case ver.Minimal:
		p.Kind = KindAny
	case ver.Maximal:
		if t == ver.Cross {
			p.Kind = KindCross
		}
	}

	return p
}

// toBuildPayload converts a build suffix into its API form.
func toBuildPayload(b ver.Build) *BuildPayload {
	switch t := b.(type) {
	case ver.Milestone:
		n := int(t)
		return &BuildPayload{Kind: BuildMilestone, Number: &n}
	case ver.RC:
		n := int(t)
		return &BuildPayload{Kind: BuildRC, Number: &n}
	case ver.Development:
		return &BuildPayload{Kind: BuildDevelopment, ID: string(t)}
	default:
		return &BuildPayload{Kind: BuildFinal}
	}
}

// NewCompareResponse compares two parsed versions and builds the wire
// representation of the outcome. Result is normalized to -1, 0, or 1.
func NewCompareResponse(leftInput, rightInput string, left, right ver.Version) CompareResponse {
	result := 0
	switch raw := left.Compare(right); {
	case raw < 0:
		result = -1
	case raw > 0:
		result = 1
	}

	return CompareResponse{
		Left:     NewVersionPayload(leftInput, left),
		Right:    NewVersionPayload(rightInput, right),
		Result:   result,
		Relation: relationFromResult(result),
	}
}

// relationFromResult maps a normalized comparison result to its label.
func relationFromResult(result int) string {
	switch {
	case result < 0:
		return "before"
	case result > 0:
		return "after"
	default:
		return "equal"
	}
}
