/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestConstants(t *testing.T) {
	if name != "toolver" {
		t.Errorf("name = %v, want toolver", name)
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %v, want dev", versionDefault)
	}
	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

func TestRootCmd_CommandStructure(t *testing.T) {
	cmd := rootCmd()

	if cmd.Name != name {
		t.Errorf("Name = %v, want %v", cmd.Name, name)
	}

	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}

	if cmd.Version != version {
		t.Errorf("Version = %v, want %v", cmd.Version, version)
	}

	if cmd.Before == nil {
		t.Error("Before should not be nil")
	}

	found := false
	for _, flag := range cmd.Flags {
		if hasName(flag, "log-level") {
			found = true
			break
		}
	}
	if !found {
		t.Error("required flag \"log-level\" not found")
	}

	wantCommands := []string{"parse", "compare", "sort", "latest", "check", "version"}
	for _, wantName := range wantCommands {
		found := false
		for _, sub := range cmd.Commands {
			if sub.Name == wantName {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required command %q not found", wantName)
		}
	}
}

func TestVersionCmd_PrintsBuildLine(t *testing.T) {
	var buf bytes.Buffer

	cmd := versionCmd()
	cmd.Writer = &buf

	if err := cmd.Run(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("failed to run command: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, name+" version "+version) {
		t.Errorf("output = %q, want it to contain %q", out, name+" version "+version)
	}
	if !strings.Contains(out, "toolchain:") {
		t.Errorf("output = %q, want it to contain toolchain info", out)
	}
}
