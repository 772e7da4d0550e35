// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func (a *App) commands() []*cli.Command {
	commands := []*cli.Command{
		{
			Name:  "version",
			Usage: "print build information",
			Action: func(cctx *cli.Context) error {
				_, err := fmt.Fprint(a.stdout, a.build.String())
				return err
			},
		},
	}

	commands = append(commands, a.authCommands()...)
	commands = append(commands, a.modelCommands())
	commands = append(commands, a.interactionCommands()...)

	return commands
}

// idArg parses the n-th positional argument as a resource id.
func idArg(cctx *cli.Context, n int, name string) (uuid.UUID, error) {
	raw := cctx.Args().Get(n)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("missing %s argument", name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return id, nil
}

// optString returns the flag value when it was given explicitly.
func optString(cctx *cli.Context, name string) *string {
	if !cctx.IsSet(name) {
		return nil
	}
	v := cctx.String(name)
	return &v
}

func optInt64(cctx *cli.Context, name string) *int64 {
	if !cctx.IsSet(name) {
		return nil
	}
	v := cctx.Int64(name)
	return &v
}
