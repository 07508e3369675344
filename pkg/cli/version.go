/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	ver "github.com/toolver/toolver/pkg/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build version information",
		Description: `Print the CLI build identity and the toolchain version baked in at
build time. The toolchain renders as "none" for builds without one.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "%s version %s (commit: %s, built: %s, toolchain: %s)\n",
				name, version, commit, date, ver.Current())
			return err
		},
	}
}
