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

// Exit codes reported by compare in quiet mode.
const (
	exitCompareLess    = 2
	exitCompareGreater = 3
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two version strings under the total order",
		ArgsUsage:             "<left> <right>",
		Description: `Compare two version strings and report their relation.

The report carries both parsed versions, the normalized comparison result
(-1, 0, or 1), and the relation label (before, equal, after). Ordering
follows the total order over versions: within a release, milestones come
before release candidates, release candidates before the final release,
and the final release before dated development builds.

With --quiet no report is written and the relation is encoded in the
exit code instead:

  0  left and right are order-equal
  2  left comes before right
  3  left comes after right

# Examples

Compare a release candidate against the final release:
  toolver compare 2.13.4-RC2 2.13.4

Scriptable comparison via exit code:
  toolver compare --quiet 2.12.0 2.13.0 || echo "not equal"

Compare sentinels:
  toolver compare any none`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress output and report the relation via the exit code",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 2 {
				return fmt.Errorf("compare requires exactly two version arguments, got %d", cmd.Args().Len())
			}

			left := cmd.Args().Get(0)
			right := cmd.Args().Get(1)

			lv, err := ver.ParseVersion(left)
			if err != nil {
				return err
			}
			rv, err := ver.ParseVersion(right)
			if err != nil {
				return err
			}

			resp := api.NewCompareResponse(left, right, lv, rv)

			slog.Debug("compared versions",
				"left", left,
				"right", right,
				"relation", resp.Relation)

			if cmd.Bool("quiet") {
				switch resp.Result {
				case -1:
					return cli.Exit("", exitCompareLess)
				case 1:
					return cli.Exit("", exitCompareGreater)
				}
				return nil
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, resp)
		},
	}
}
