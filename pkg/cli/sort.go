/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/toolver/toolver/pkg/serializer"
	ver "github.com/toolver/toolver/pkg/version"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort version strings in ascending version order",
		ArgsUsage:             "[<version>...]",
		Description: `Sort version strings under the total order and print them in
ascending order. The sort is stable: spellings that denote order-equal
values, such as "none" and "3-cross", keep their relative input order.
Output preserves the original spellings.

Versions are taken from the positional arguments, from the --input list,
or from both. The input list is a YAML or JSON array of strings loaded
from a file path or an http(s) URL.

# Examples

Sort inline arguments:
  toolver sort 2.13.4 2.11.0-M7 any 2.13.4-RC1

Descending order:
  toolver sort --reverse 2.12.0 3.0.0 2.13.4

Sort a list fetched over HTTP as JSON:
  toolver sort --input https://releases.example.com/versions.yaml --format json

Combine arguments with a local list:
  toolver sort --input versions.yaml 3.1.0-RC1`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Sort in descending order",
			},
			inputFlag(),
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			inputs, err := collectVersionInputs(cmd)
			if err != nil {
				return err
			}

			parsed, err := parseVersionInputs(inputs)
			if err != nil {
				return err
			}

			type entry struct {
				input  string
				parsed ver.Version
			}

			entries := make([]entry, len(inputs))
			for i := range inputs {
				entries[i] = entry{input: inputs[i], parsed: parsed[i]}
			}

			// Stable in both directions so order-equal spellings keep
			// their relative input order.
			if cmd.Bool("reverse") {
				sort.SliceStable(entries, func(i, j int) bool {
					return ver.Less(entries[j].parsed, entries[i].parsed)
				})
			} else {
				sort.SliceStable(entries, func(i, j int) bool {
					return ver.Less(entries[i].parsed, entries[j].parsed)
				})
			}

			sorted := make([]string, len(entries))
			for i, e := range entries {
				sorted[i] = e.input
			}

			slog.Debug("sorted versions", "count", len(sorted), "reverse", cmd.Bool("reverse"))

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, sorted)
		},
	}
}
