/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/toolver/toolver/pkg/serializer"
	ver "github.com/toolver/toolver/pkg/version"
)

// parseOutputFormat reads and validates the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported formats: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// closeSerializer releases serializer resources when the implementation
// holds any, logging rather than failing on close errors.
func closeSerializer(ser serializer.Serializer) {
	if closer, ok := ser.(serializer.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close output serializer", "error", err)
		}
	}
}

// collectVersionInputs gathers version spellings from positional arguments
// and, when the input flag is set, from a YAML or JSON list loaded from a
// file path or http(s) URL. Positional arguments come first.
func collectVersionInputs(cmd *cli.Command) ([]string, error) {
	inputs := append([]string{}, cmd.Args().Slice()...)

	if path := cmd.String("input"); path != "" {
		loaded, err := serializer.FromFile[[]string](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load versions from %q: %w", path, err)
		}
		inputs = append(inputs, *loaded...)
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("no versions provided: pass version arguments or --input")
	}

	return inputs, nil
}

// parseVersionInputs parses every spelling, failing on the first malformed
// one with the parser's diagnostic untouched.
func parseVersionInputs(inputs []string) ([]ver.Version, error) {
	parsed := make([]ver.Version, 0, len(inputs))
	for _, in := range inputs {
		v, err := ver.ParseVersion(in)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, v)
	}
	return parsed, nil
}
