/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/toolver/toolver/pkg/serializer"
)

// Flags shared by every command that emits a serialized report.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to file path instead of stdout",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: " + strings.Join(serializer.SupportedFormats(), ", "),
		Value:   string(serializer.FormatYAML),
		Sources: cli.EnvVars("TOOLVER_FORMAT"),
	}
)

// inputFlag builds the flag for loading version lists from files or URLs.
func inputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Load versions from a YAML or JSON list at a file path or http(s) URL",
	}
}
