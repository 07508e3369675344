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
	"fmt"
)

// Version is a parsed toolchain version: either a Specific release or
// one of the unbounded sentinels used as open-ended comparison bounds.
// The set of implementations is closed, so Compare is total over it.
type Version interface {
	// Compare orders v against other. The result is negative when v is
	// older, positive when v is newer, and zero when the two order
	// equal. Only the sign is defined.
	Compare(other Version) int

	// String renders the canonical text form, which parses back to an
	// equal value.
	String() string

	isVersion()
}

// Maximal is the unbounded maximum sentinel. It orders after every
// other kind of version and equal to any other Maximal regardless of
// spelling; the spelling is carried for display only.
type Maximal string

// Minimal is the unbounded minimum sentinel. It orders before every
// other kind of version and equal to any other Minimal.
type Minimal string

// Sentinel spellings recognized by ParseVersion.
const (
	// None is the maximum sentinel produced for "none" and for the
	// empty string.
	None Maximal = "none"

	// Cross is the alternate maximum sentinel spelling. It orders
	// equal to None but renders as "3-cross".
	Cross Maximal = "3-cross"

	// Any is the minimum sentinel, spelled "any". It is also the
	// result of parsing malformed input when the caller elects to
	// continue past the error.
	Any Minimal = "any"
)

// Specific is a concrete version: major, minor, and revision numerals
// plus the Build classification of the text after the dash.
type Specific struct {
	Major    int
	Minor    int
	Revision int
	Build    Build
}

// Compare implements Version. The two Maximal spellings are
// interchangeable for ordering.
func (v Maximal) Compare(other Version) int {
	if _, ok := other.(Maximal); ok {
		return 0
	}
	return 1
}

// String returns the sentinel spelling.
func (v Maximal) String() string { return string(v) }

func (v Maximal) isVersion() {}

// Compare implements Version. A Minimal orders before everything
// except another Minimal.
func (v Minimal) Compare(other Version) int {
	if _, ok := other.(Minimal); ok {
		return 0
	}
	return -1
}

// String returns the sentinel spelling.
func (v Minimal) String() string { return string(v) }

func (v Minimal) isVersion() {}

// Compare implements Version. Specifics order by major, then minor,
// then revision, then by build.
func (v Specific) Compare(other Version) int {
	switch o := other.(type) {
	case Specific:
		if v.Major < o.Major {
			return -1
		}
		if v.Major > o.Major {
			return 1
		}
		if v.Minor < o.Minor {
			return -1
		}
		if v.Minor > o.Minor {
			return 1
		}
		if v.Revision < o.Revision {
			return -1
		}
		if v.Revision > o.Revision {
			return 1
		}
		return v.build().Compare(o.build())
	case Maximal:
		return -1
	default:
		// Minimal
		return 1
	}
}

// String returns the canonical "major.minor.revision" form followed by
// the build suffix, if any.
func (v Specific) String() string {
	return fmt.Sprintf("%d.%d.%d%s", v.Major, v.Minor, v.Revision, v.build().Suffix())
}

func (v Specific) isVersion() {}

// build treats a zero-value Specific as a final release.
func (v Specific) build() Build {
	if v.Build == nil {
		return Final
	}
	return v.Build
}
