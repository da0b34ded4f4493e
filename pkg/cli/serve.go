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

	"github.com/urfave/cli/v3"

	"github.com/nutriai/nutriai-api/pkg/api"
	"github.com/nutriai/nutriai-api/pkg/config"
	"github.com/nutriai/nutriai-api/pkg/defaults"
	"github.com/nutriai/nutriai-api/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the NutriAI HTTP API",
		Description: `Serve the NutriAI API until interrupted.

Settings are read once at startup: NUTRIAI_DEMO toggles demo meal fill and
PORT selects the listen port. Flags take precedence over the environment.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   defaults.ServerPort,
				Usage:   "HTTP listen port",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.BoolFlag{
				Name:  "demo",
				Usage: "Fill generated meal plans with the demo meal (overrides NUTRIAI_DEMO)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings := settingsFromCmd(cmd)
			return api.Run(ctx, settings, server.WithPort(int(cmd.Int("port"))))
		},
	}
}

// settingsFromCmd captures Settings from the environment, letting an
// explicit --demo flag override NUTRIAI_DEMO.
func settingsFromCmd(cmd *cli.Command) config.Settings {
	settings := config.FromEnv()
	if cmd.IsSet("demo") {
		settings.Demo = cmd.Bool("demo")
	}
	return settings
}
