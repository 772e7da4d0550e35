// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/model-hub-client/internal/adapter"
	"github.com/MKhiriev/model-hub-client/models"
	"github.com/urfave/cli/v2"
)

// modelFieldFlags are shared by `models create` and `models update`.
func modelFieldFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Required: required},
		&cli.StringFlag{Name: "category", Required: required},
		&cli.StringFlag{Name: "description"},
		&cli.StringSliceFlag{Name: "tag", Usage: "tag, may be repeated"},
		&cli.StringFlag{Name: "framework"},
		&cli.StringFlag{Name: "model-version", Usage: "model version, \"1.0.0\" by default"},
		&cli.StringFlag{Name: "file-url"},
		&cli.Int64Flag{Name: "file-size", Usage: "file size in bytes"},
		&cli.StringFlag{Name: "file-format"},
		&cli.StringFlag{Name: "api-endpoint"},
		&cli.StringFlag{Name: "api-docs"},
	}
}

func (a *App) modelCommands() *cli.Command {
	return &cli.Command{
		Name:  "models",
		Usage: "browse and publish models",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list models",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page"},
					&cli.IntFlag{Name: "page-size"},
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "search"},
					&cli.StringFlag{Name: "sort", Usage: "latest, popular or downloads"},
				},
				Action: a.withAPI(a.listModels),
			},
			{
				Name:      "get",
				Usage:     "show a model",
				ArgsUsage: "<model-id>",
				Action:    a.withAPI(a.getModel),
			},
			{
				Name:   "create",
				Usage:  "publish a model",
				Flags:  modelFieldFlags(true),
				Action: a.withAPI(a.createModel),
			},
			{
				Name:      "update",
				Usage:     "change a model you own; omitted flags are left as they are",
				ArgsUsage: "<model-id>",
				Flags:     modelFieldFlags(false),
				Action:    a.withAPI(a.updateModel),
			},
			{
				Name:      "delete",
				Usage:     "delete a model you own",
				ArgsUsage: "<model-id>",
				Action:    a.withAPI(a.deleteModel),
			},
			{
				Name:      "download",
				Usage:     "get the download location of a model",
				ArgsUsage: "<model-id>",
				Action:    a.withAPI(a.downloadModel),
			},
		},
	}
}

func (a *App) listModels(cctx *cli.Context, api *adapter.Client) error {
	sort := models.SortOrder(cctx.String("sort"))
	switch sort {
	case "", models.SortLatest, models.SortPopular, models.SortDownloads:
	default:
		return fmt.Errorf("unknown sort %q, use latest, popular or downloads", sort)
	}

	list, err := api.Models.List(cctx.Context, models.ModelListParams{
		Page:     cctx.Int("page"),
		PageSize: cctx.Int("page-size"),
		Category: cctx.String("category"),
		Search:   cctx.String("search"),
		Sort:     sort,
	})
	if err != nil {
		return err
	}

	return a.printJSON(list)
}

func (a *App) getModel(cctx *cli.Context, api *adapter.Client) error {
	id, err := idArg(cctx, 0, "model id")
	if err != nil {
		return err
	}

	model, err := api.Models.Get(cctx.Context, id)
	if err != nil {
		return err
	}

	return a.printJSON(model)
}

func (a *App) createModel(cctx *cli.Context, api *adapter.Client) error {
	model, err := api.Models.Create(cctx.Context, models.ModelCreate{
		Name:        cctx.String("name"),
		Category:    cctx.String("category"),
		Description: optString(cctx, "description"),
		Tags:        cctx.StringSlice("tag"),
		Framework:   optString(cctx, "framework"),
		Version:     cctx.String("model-version"),
		FileURL:     optString(cctx, "file-url"),
		FileSize:    cctx.Int64("file-size"),
		FileFormat:  optString(cctx, "file-format"),
		APIEndpoint: optString(cctx, "api-endpoint"),
		APIDocs:     optString(cctx, "api-docs"),
	})
	if err != nil {
		return err
	}

	return a.printJSON(model)
}

func (a *App) updateModel(cctx *cli.Context, api *adapter.Client) error {
	id, err := idArg(cctx, 0, "model id")
	if err != nil {
		return err
	}

	update := models.ModelUpdate{
		Name:        optString(cctx, "name"),
		Category:    optString(cctx, "category"),
		Description: optString(cctx, "description"),
		Framework:   optString(cctx, "framework"),
		Version:     optString(cctx, "model-version"),
		FileURL:     optString(cctx, "file-url"),
		FileSize:    optInt64(cctx, "file-size"),
		FileFormat:  optString(cctx, "file-format"),
		APIEndpoint: optString(cctx, "api-endpoint"),
		APIDocs:     optString(cctx, "api-docs"),
	}
	if cctx.IsSet("tag") {
		tags := cctx.StringSlice("tag")
		update.Tags = &tags
	}

	model, err := api.Models.Update(cctx.Context, id, update)
	if err != nil {
		return err
	}

	return a.printJSON(model)
}

func (a *App) deleteModel(cctx *cli.Context, api *adapter.Client) error {
	id, err := idArg(cctx, 0, "model id")
	if err != nil {
		return err
	}

	msg, err := api.Models.Delete(cctx.Context, id)
	if err != nil {
		return err
	}

	return a.printJSON(msg)
}

func (a *App) downloadModel(cctx *cli.Context, api *adapter.Client) error {
	id, err := idArg(cctx, 0, "model id")
	if err != nil {
		return err
	}

	info, err := api.Models.Download(cctx.Context, id)
	if err != nil {
		return err
	}

	return a.printJSON(info)
}
