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

	"github.com/urfave/cli/v3"

	"github.com/nutriai/nutriai-api/pkg/defaults"
	"github.com/nutriai/nutriai-api/pkg/mealplan"
)

func planCmd() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Generate a meal plan",
		Description: fmt.Sprintf(`Generate a plan of 1 to %d days.

The profile flags are validated the same way the API validates them but do
not change the plan. With --demo (or NUTRIAI_DEMO set) every day holds a
single demo meal; otherwise days are empty.`, defaults.MaxPlanDays),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Value:   7,
				Usage:   fmt.Sprintf("Number of days to plan (1..%d)", defaults.MaxPlanDays),
			},
			&cli.IntFlag{
				Name:  "age",
				Value: 30,
				Usage: "Age in years",
			},
			&cli.StringFlag{
				Name:  "gender",
				Value: "unspecified",
				Usage: "Gender",
			},
			&cli.FloatFlag{
				Name:  "weight",
				Value: 70,
				Usage: "Body weight in kg",
			},
			&cli.StringFlag{
				Name:  "goal",
				Value: "maintain",
				Usage: "Nutrition goal",
			},
			&cli.BoolFlag{
				Name:  "demo",
				Usage: "Fill every day with the demo meal (overrides NUTRIAI_DEMO)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			req, err := mealplan.ParseRequest(map[string]any{
				"age":    int(cmd.Int("age")),
				"gender": cmd.String("gender"),
				"weight": cmd.Float("weight"),
				"goal":   cmd.String("goal"),
				"days":   int(cmd.Int("days")),
			})
			if err != nil {
				return fmt.Errorf("invalid plan request: %w", err)
			}

			plan := mealplan.Generate(req, settingsFromCmd(cmd).Demo)
			return writeOutput(ctx, cmd, plan)
		},
	}
}
