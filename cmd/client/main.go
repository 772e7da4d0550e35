// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/model-hub-client/internal/client"
	"github.com/MKhiriev/model-hub-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var app client.Client = client.NewApp(
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		os.Stdout,
		os.Stderr,
	)

	err := app.Run(ctx, os.Args)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
