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
	"sync"
)

// toolchainVersion is injected at build time:
//
//	go build -ldflags "-X github.com/toolver/toolver/pkg/version.toolchainVersion=2.13.4"
var toolchainVersion string

var (
	currentOnce sync.Once
	current     Version
)

// Current returns the version of the running toolchain, parsed once
// from the build-injected version string. When the string was never
// injected it is empty and Current returns None; a malformed string
// degrades to Any.
func Current() Version {
	currentOnce.Do(func() {
		current = ParseVersionWith(toolchainVersion, nil)
	})
	return current
}
