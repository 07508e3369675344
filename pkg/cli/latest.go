/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/toolver/toolver/pkg/serializer"
	ver "github.com/toolver/toolver/pkg/version"
)

func latestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "latest",
		EnableShellCompletion: true,
		Usage:                 "Print the greatest of the given versions",
		ArgsUsage:             "[<version>...]",
		Description: `Select the greatest version under the total order and print its
canonical rendering. When several spellings denote the same greatest
value, the first one wins.

Versions are taken from the positional arguments, from the --input list,
or from both. The input list is a YAML or JSON array of strings loaded
from a file path or an http(s) URL.

# Examples

Pick the newest release:
  toolver latest 2.13.3 2.13.4-RC2 2.13.4 2.12.20

From a published list:
  toolver latest --input https://releases.example.com/versions.yaml`,
		Flags: []cli.Flag{
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

			latest := parsed[0]
			for _, v := range parsed[1:] {
				latest = ver.Max(latest, v)
			}

			slog.Debug("selected latest version", "count", len(parsed), "latest", latest.String())

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, latest.String())
		},
	}
}
