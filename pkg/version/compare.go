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
	"sort"
)

// Less reports whether a orders strictly before b.
func Less(a, b Version) bool {
	return a.Compare(b) < 0
}

// LessOrEqual reports whether a orders before b or equal to it.
func LessOrEqual(a, b Version) bool {
	return a.Compare(b) <= 0
}

// Greater reports whether a orders strictly after b.
func Greater(a, b Version) bool {
	return a.Compare(b) > 0
}

// GreaterOrEqual reports whether a orders after b or equal to it.
func GreaterOrEqual(a, b Version) bool {
	return a.Compare(b) >= 0
}

// Min returns the older of a and b, preferring a on ties.
func Min(a, b Version) Version {
	if LessOrEqual(a, b) {
		return a
	}
	return b
}

// Max returns the newer of a and b, preferring a on ties.
func Max(a, b Version) Version {
	if GreaterOrEqual(a, b) {
		return a
	}
	return b
}

// Sort orders versions oldest first, keeping the original order of
// elements that compare equal.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) < 0
	})
}
