// Copyright (c) 2025, NutriAI Authors.  All rights reserved.
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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/nutriai/nutriai-api/pkg/serializer"
	"github.com/nutriai/nutriai-api/pkg/shopping"
)

func aggregateCmd() *cli.Command {
	return &cli.Command{
		Name:  "aggregate",
		Usage: "Aggregate a per-day meal plan into a shopping list",
		Description: `Read a plan document with a per_day list and print the summed quantity of
every ingredient, grouped by case-insensitive name and unit.

Days may list items directly or nest them under meals:

  {"per_day": [{"day": 1, "items": [{"name": "Rice", "qty": 100, "unit": "g"}]}]}
  {"per_day": [{"day": 1, "meals": [{"items": [{"name": "Rice", "qty": 100, "unit": "g"}]}]}]}

Output of "nutriai plan --format json" is accepted as input.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i", "f"},
				Usage:    `Plan file to read (JSON or YAML by extension), or "-" for stdin`,
				Required: true,
			},
			&cli.StringFlag{
				Name:  "input-format",
				Usage: "Input format (json, yaml); inferred from the file extension when empty",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			inFormat := serializer.Format(cmd.String("input-format"))
			if inFormat != "" && (inFormat.IsUnknown() || inFormat == serializer.FormatTable) {
				return fmt.Errorf("unsupported input format: %q", inFormat)
			}

			path := cmd.String("input")
			doc, err := serializer.FromFile(path, inFormat)
			if err != nil {
				return fmt.Errorf("failed to load plan from %q: %w", path, err)
			}

			payload, ok := doc.(map[string]any)
			if !ok {
				return fmt.Errorf("plan in %q must be an object with a per_day list", path)
			}

			res, err := shopping.AggregatePayload(payload)
			if err != nil {
				return fmt.Errorf("failed to aggregate %q: %w", path, err)
			}

			slog.Debug("aggregated plan", "input", path, "entries", res.Len())
			return writeOutput(ctx, cmd, res)
		},
	}
}
