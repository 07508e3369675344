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
	"strings"
)

// Build classifies the text after the dash in a version string. The
// four kinds form a total order from least to most mature:
// Milestone, RC, Final, Development.
type Build interface {
	// Compare orders b against other. Same-kind numeric builds compare
	// by subtraction, so only the sign is defined.
	Compare(other Build) int

	// Suffix renders the canonical dash-prefixed form, empty for a
	// final release.
	Suffix() string

	isBuild()
}

// Milestone is a pre-release milestone build, the least mature kind.
type Milestone int

// RC is a release candidate build.
type RC int

// Development is an unofficial or snapshot build, carried verbatim.
// An unrecognized build is assumed newest, so Development orders after
// every other kind, including Final.
type Development string

// Final marks a finished release. It renders with no suffix.
var Final Build = finalBuild{}

type finalBuild struct{}

// Compare implements Build. Two milestones compare by number; a
// milestone is older than every other kind.
func (b Milestone) Compare(other Build) int {
	if o, ok := other.(Milestone); ok {
		return int(b) - int(o)
	}
	return -1
}

// Suffix returns "-M" followed by the milestone number.
func (b Milestone) Suffix() string { return fmt.Sprintf("-M%d", int(b)) }

func (b Milestone) isBuild() {}

// Compare implements Build. Two candidates compare by number; a
// candidate is newer than any milestone and older than everything
// else.
func (b RC) Compare(other Build) int {
	switch o := other.(type) {
	case RC:
		return int(b) - int(o)
	case Milestone:
		return 1
	default:
		return -1
	}
}

// Suffix returns "-RC" followed by the candidate number.
func (b RC) Suffix() string { return fmt.Sprintf("-RC%d", int(b)) }

func (b RC) isBuild() {}

// Compare implements Build. A final release is newer than everything
// except a development build.
func (b finalBuild) Compare(other Build) int {
	switch other.(type) {
	case finalBuild:
		return 0
	case Development:
		return -1
	default:
		return 1
	}
}

// Suffix returns the empty string.
func (b finalBuild) Suffix() string { return "" }

func (b finalBuild) isBuild() {}

// Compare implements Build. Two development builds compare by their
// identifiers, byte-wise; a development build is newer than everything
// else.
func (b Development) Compare(other Build) int {
	if o, ok := other.(Development); ok {
		return strings.Compare(string(b), string(o))
	}
	return 1
}

// Suffix returns the identifier prefixed with a dash.
func (b Development) Suffix() string { return "-" + string(b) }

func (b Development) isBuild() {}
