/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/toolver/toolver/pkg/api"
	"github.com/toolver/toolver/pkg/serializer"
	ver "github.com/toolver/toolver/pkg/version"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a version string into its structured form",
		ArgsUsage:             "<version>",
		Description: `Parse a single version string and print its structured form including:
  - The kind of value (specific, none, cross, any)
  - Major, minor, and revision numerals for specific versions
  - The build suffix classification (milestone, rc, final, development)
  - The canonical rendering

Sentinel spellings are recognized before the numeric grammar: the empty
string and "none" produce the maximal none value, "3-cross" produces the
maximal cross value, and "any" produces the minimal wildcard value.

Malformed input fails with the parser's diagnostic and exit code 1.

# Examples

Parse a release candidate:
  toolver parse 2.13.4-RC2

Parse a sentinel as JSON:
  toolver parse --format json none

Write the result to a file:
  toolver parse --output parsed.yaml 3.1.0-M5`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 1 {
				return fmt.Errorf("parse requires exactly one version argument, got %d", cmd.Args().Len())
			}

			input := cmd.Args().First()
			v, err := ver.ParseVersion(input)
			if err != nil {
				return err
			}

			slog.Debug("parsed version", "input", input, "canonical", v.String())

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, api.NewVersionPayload(input, v))
		},
	}
}
