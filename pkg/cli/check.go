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

	"github.com/toolver/toolver/pkg/serializer"
	ver "github.com/toolver/toolver/pkg/version"
)

// exitCheckFailed is reported when one of the bounds is not satisfied.
const exitCheckFailed = 1

// checkReport is the serialized outcome of a bound check.
type checkReport struct {
	Version   string `json:"version" yaml:"version"`
	Canonical string `json:"canonical" yaml:"canonical"`
	AtLeast   string `json:"atLeast,omitempty" yaml:"atLeast,omitempty"`
	Below     string `json:"below,omitempty" yaml:"below,omitempty"`
	Satisfied bool   `json:"satisfied" yaml:"satisfied"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check a version against ordering bounds",
		ArgsUsage:             "<version>",
		Description: `Check whether a version satisfies the given bounds under the total
order. At least one bound is required:

  --at-least  the version must order at or after the bound (inclusive)
  --below     the version must order strictly before the bound (exclusive)

Bounds are plain version strings, not range expressions. Sentinel
spellings are valid bounds: "any" admits everything under --at-least and
"none" admits everything under --below except the maximal values.

The command prints a report and exits 0 when every bound is satisfied,
1 otherwise.

# Examples

Require a minimum release:
  toolver check 2.13.4 --at-least 2.12.0

Gate on a half-open interval:
  toolver check 3.0.1-RC1 --at-least 3.0.0 --below 3.1.0

Use in scripts:
  toolver check "$VERSION" --at-least 2.11.0 || exit 1`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "at-least",
				Usage: "Inclusive lower bound the version must satisfy",
			},
			&cli.StringFlag{
				Name:  "below",
				Usage: "Exclusive upper bound the version must satisfy",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 1 {
				return fmt.Errorf("check requires exactly one version argument, got %d", cmd.Args().Len())
			}

			atLeast := cmd.String("at-least")
			below := cmd.String("below")
			if atLeast == "" && below == "" {
				return fmt.Errorf("check requires at least one bound: --at-least or --below")
			}

			input := cmd.Args().First()
			v, err := ver.ParseVersion(input)
			if err != nil {
				return err
			}

			report := checkReport{
				Version:   input,
				Canonical: v.String(),
				AtLeast:   atLeast,
				Below:     below,
				Satisfied: true,
			}

			if atLeast != "" {
				bound, err := ver.ParseVersion(atLeast)
				if err != nil {
					return err
				}
				report.Satisfied = report.Satisfied && ver.GreaterOrEqual(v, bound)
			}

			if below != "" {
				bound, err := ver.ParseVersion(below)
				if err != nil {
					return err
				}
				report.Satisfied = report.Satisfied && ver.Less(v, bound)
			}

			slog.Debug("checked version bounds",
				"version", input,
				"atLeast", atLeast,
				"below", below,
				"satisfied", report.Satisfied)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			if err := ser.Serialize(ctx, report); err != nil {
				return err
			}

			if !report.Satisfied {
				return cli.Exit("", exitCheckFailed)
			}
			return nil
		},
	}
}
