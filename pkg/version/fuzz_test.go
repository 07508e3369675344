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
	"testing"
)

// FuzzParseVersion performs fuzz testing on ParseVersion to find edge cases
func FuzzParseVersion(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("2.11.3")
	f.Add("2.11")
	f.Add("2")
	f.Add("0.0.0")
	f.Add("2.11.3-rc4")
	f.Add("2.11.3-RC4")
	f.Add("2.11.3-rc")
	f.Add("2.11.7-M3")
	f.Add("2.11.7-m")
	f.Add("2.11.7-FINAL")
	f.Add("2.11.7-final")
	f.Add("2.11.7-RCCola")
	f.Add("2.11.7-RC1.5")
	f.Add("7.3.2-SNAPSHOT")
	f.Add("1-rc1")
	f.Add("2.11.7-")
	f.Add("1.0-a\nb")
	f.Add("")
	f.Add("none")
	f.Add("any")
	f.Add("3-cross")
	f.Add("2.11.7.2")
	f.Add("v1.2.3")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("-RC4")
	f.Add("   1.2.3")
	f.Add("1.2.3   ")
	f.Add("01.02.03")
	f.Add("99999999999999999999")
	f.Add("1.0-rc99999999999999999999")

	f.Fuzz(func(t *testing.T, input string) {
		// ParseVersion should never panic
		v, err := ParseVersion(input)

		if err != nil {
			// The error matches the sentinel and renders the exact
			// grammar diagnostic.
			if !errors.Is(err, ErrMalformedVersion) {
				t.Errorf("error for %q does not match ErrMalformedVersion: %v", input, err)
			}
			want := fmt.Sprintf("Bad version (%s) not major[.minor[.revision]][-suffix]", input)
			if err.Error() != want {
				t.Errorf("error for %q: got %q, want %q", input, err.Error(), want)
			}

			// The degrading entry point must agree and fall back to Any.
			if got := ParseVersionWith(input, nil); got != Any {
				t.Errorf("ParseVersionWith(%q) = %v, want %v", input, got, Any)
			}
			return
		}

		// Both entry points agree on well-formed input.
		if got := ParseVersionWith(input, func(msg string) {
			t.Errorf("unexpected handler call for %q: %s", input, msg)
		}); got != v {
			t.Errorf("entry points disagree for %q: %#v != %#v", input, got, v)
		}

		// String() should round-trip to an equal value
		s := v.String()
		v2, err2 := ParseVersion(s)
		if err2 != nil {
			t.Errorf("re-parsing %q (from %q) failed: %v", s, input, err2)
		} else if v2 != v {
			t.Errorf("round-trip mismatch for %q: %#v != %#v", input, v, v2)
		}

		// Parsing the same input twice yields equal values
		v3, err3 := ParseVersion(input)
		if err3 != nil {
			t.Errorf("second parse of %q failed: %v", input, err3)
		} else if v3 != v {
			t.Errorf("parse of %q is not deterministic: %#v != %#v", input, v, v3)
		}

		// Every value orders equal to itself
		if v.Compare(v) != 0 {
			t.Errorf("ParseVersion(%q).Compare(self) != 0", input)
		}

		// Concrete versions stay inside the sentinel bounds with
		// non-negative numerals
		if sv, ok := v.(Specific); ok {
			if sv.Major < 0 || sv.Minor < 0 || sv.Revision < 0 {
				t.Errorf("ParseVersion(%q) returned negative numeral: %#v", input, sv)
			}
			if !Less(Any, v) {
				t.Errorf("ParseVersion(%q) does not order above Any", input)
			}
			if !Less(v, None) {
				t.Errorf("ParseVersion(%q) does not order below None", input)
			}
		}
	})
}

// FuzzCompare cross-checks the comparator over pairs of arbitrary
// well-formed inputs.
func FuzzCompare(f *testing.F) {
	f.Add("2.11.7-RC3", "2.11.7")
	f.Add("2.11.7-M3", "2.11.7-RC1")
	f.Add("none", "3-cross")
	f.Add("any", "0.0.0-M0")
	f.Add("2.12", "2.12.0")
	f.Add("1.0-alpha", "1.0-beta")

	f.Fuzz(func(t *testing.T, left, right string) {
		a, errA := ParseVersion(left)
		b, errB := ParseVersion(right)
		if errA != nil || errB != nil {
			return
		}

		fwd := signOf(a.Compare(b))
		rev := signOf(b.Compare(a))
		if fwd != -rev {
			t.Errorf("Compare(%q, %q)=%d and Compare(%q, %q)=%d disagree", left, right, fwd, right, left, rev)
		}

		// Derived operations follow the sign
		if Less(a, b) != (fwd < 0) || Greater(a, b) != (fwd > 0) {
			t.Errorf("derived comparisons disagree with Compare for %q, %q", left, right)
		}
		if LessOrEqual(a, b) != (fwd <= 0) || GreaterOrEqual(a, b) != (fwd >= 0) {
			t.Errorf("derived bounds disagree with Compare for %q, %q", left, right)
		}

		// Min and Max pick from the two arguments and bracket them
		lo, hi := Min(a, b), Max(a, b)
		if lo != a && lo != b {
			t.Errorf("Min(%q, %q) returned a third value: %#v", left, right, lo)
		}
		if hi != a && hi != b {
			t.Errorf("Max(%q, %q) returned a third value: %#v", left, right, hi)
		}
		if Greater(lo, hi) {
			t.Errorf("Min(%q, %q) orders above Max", left, right)
		}
	})
}
