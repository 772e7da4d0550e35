// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/MKhiriev/model-hub-client/internal/adapter"
	"github.com/MKhiriev/model-hub-client/internal/config"
	"github.com/MKhiriev/model-hub-client/internal/logger"
	"github.com/MKhiriev/model-hub-client/internal/notify"
	"github.com/MKhiriev/model-hub-client/internal/session"
	"github.com/MKhiriev/model-hub-client/internal/store"
	"github.com/MKhiriev/model-hub-client/models"
	"github.com/urfave/cli/v2"
)

const appRole = "modelhub-client"

var errNotLoggedIn = errors.New("not logged in, run `modelhub login` first")

// App is the modelhub CLI. Dependencies are built on first use so that
// commands such as `version` work without a configured server.
type App struct {
	build  models.AppBuildInfo
	stdout io.Writer
	stderr io.Writer

	console  notify.Reporter
	reported atomic.Bool

	cfg      *config.ClientConfig
	logger   *logger.Logger
	storages *store.ClientStorages
	api      *adapter.Client
	session  *session.Store

	cli *cli.App
}

var _ Client = (*App)(nil)

// NewApp builds the CLI writing command results to stdout and failures to
// stderr.
func NewApp(build models.AppBuildInfo, stdout, stderr io.Writer) *App {
	a := &App{
		build:   build,
		stdout:  stdout,
		stderr:  stderr,
		console: notify.Console(stderr),
	}

	a.cli = &cli.App{
		Name:            "modelhub",
		Usage:           "command-line client of the model hub",
		Version:         build.BuildVersion(),
		HideVersion:     true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags:           globalFlags(),
		Commands:        a.commands(),
		After:           a.teardown,
		ExitErrHandler:  func(*cli.Context, error) {},
		CommandNotFound: a.commandNotFound,
	}

	return a
}

// Run implements [Client]. Errors that were not already shown to the user by
// the failure reporter are printed to stderr before being returned.
func (a *App) Run(ctx context.Context, args []string) error {
	a.reported.Store(false)

	err := a.cli.RunContext(ctx, args)
	if err != nil && !a.reported.Load() {
		a.console.Report(ctx, err.Error())
	}
	return err
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "api-url",
			Usage: "API root, absolute or a path resolved against --address (env API_URL)",
		},
		&cli.GenericFlag{
			Name:    "address",
			Aliases: []string{"a"},
			Usage:   "server `host:port` (env ADAPTER_ADDRESS)",
			Value:   &config.NetAddress{},
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "SQLite file keeping the session, \":memory:\" to keep nothing (env STORAGE_DB_DSN)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "JSON config `file` (env CONFIG)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "timeout of every request (env ADAPTER_REQUEST_TIMEOUT)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (env LOG_LEVEL)",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "log `file`, defaults to \"logs\" next to the binary (env LOG_FILE)",
		},
	}
}

// overridesFromFlags turns explicitly set global flags into the highest
// priority configuration layer.
func overridesFromFlags(cctx *cli.Context) *config.StructuredConfig {
	overrides := &config.StructuredConfig{}

	if cctx.IsSet("api-url") {
		overrides.API.URL = cctx.String("api-url")
	}
	if cctx.IsSet("address") {
		if addr, ok := cctx.Generic("address").(*config.NetAddress); ok {
			overrides.Adapter.HTTPAddress = addr.String()
		}
	}
	if cctx.IsSet("db") {
		overrides.Storage.DB.DSN = cctx.String("db")
	}
	if cctx.IsSet("config") {
		overrides.JSONFilePath = cctx.String("config")
	}
	if cctx.IsSet("timeout") {
		overrides.Adapter.RequestTimeout = cctx.Duration("timeout")
	}
	if cctx.IsSet("log-level") {
		overrides.Log.Level = cctx.String("log-level")
	}
	if cctx.IsSet("log-file") {
		overrides.Log.File = cctx.String("log-file")
	}

	return overrides
}

// setup builds configuration, logger, storage and HTTP client once.
func (a *App) setup(cctx *cli.Context) error {
	if a.api != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(overridesFromFlags(cctx))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.NewClientLogger(appRole, cfg.Log.Level, cfg.Log.File)

	storages, err := store.NewClientStorages(cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("open session storage: %w", err)
	}
	a.storages = storages

	reporter := notify.Multi(
		a.console,
		notify.Log(a.logger),
		notify.ReporterFunc(func(context.Context, string) { a.reported.Store(true) }),
	)

	api, err := adapter.NewClient(cfg.Adapter, storages.Preferences, reporter, a.logger)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}
	a.api = api

	a.logger.Debug().Str("base_url", api.BaseURL()).Msg("client ready")
	return nil
}

// sessionStore restores the session on first use and waits until the stored
// token, if any, has been checked against the server.
func (a *App) sessionStore(cctx *cli.Context) (*session.Store, error) {
	if err := a.setup(cctx); err != nil {
		return nil, err
	}

	if a.session == nil {
		s, err := session.NewStore(cctx.Context, a.api.Auth, a.storages.Preferences, a.logger)
		if err != nil {
			return nil, err
		}
		a.session = s
	}

	select {
	case <-a.session.Ready():
	case <-cctx.Context.Done():
		return nil, cctx.Context.Err()
	}

	return a.session, nil
}

// withAPI runs fn after the shared dependencies have been built.
func (a *App) withAPI(fn func(cctx *cli.Context, api *adapter.Client) error) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		if err := a.setup(cctx); err != nil {
			return err
		}
		return fn(cctx, a.api)
	}
}

func (a *App) teardown(*cli.Context) error {
	if a.session != nil {
		<-a.session.Ready()
	}
	if a.storages == nil {
		return nil
	}
	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close session storage: %w", err)
	}
	return nil
}

func (a *App) commandNotFound(cctx *cli.Context, name string) {
	fmt.Fprintf(a.stderr, "unknown command %q, see `%s help`\n", name, cctx.App.Name)
}

// printJSON writes v as indented JSON to stdout.
func (a *App) printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(a.stdout, string(out))
	return err
}
