// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/model-hub-client/internal/adapter"
	"github.com/MKhiriev/model-hub-client/models"
	"github.com/urfave/cli/v2"
)

func (a *App) interactionCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "comments",
			Usage: "read and write model reviews",
			Subcommands: []*cli.Command{
				{
					Name:      "list",
					Usage:     "list comments of a model",
					ArgsUsage: "<model-id>",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "page"},
						&cli.IntFlag{Name: "page-size"},
					},
					Action: a.withAPI(a.listComments),
				},
				{
					Name:      "add",
					Usage:     "comment on a model",
					ArgsUsage: "<model-id>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "content", Required: true},
						&cli.IntFlag{Name: "rating", Usage: "1..5, 5 when omitted"},
					},
					Action: a.withAPI(a.addComment),
				},
				{
					Name:      "delete",
					Usage:     "delete your comment",
					ArgsUsage: "<comment-id>",
					Action:    a.withAPI(a.deleteComment),
				},
			},
		},
		{
			Name:      "like",
			Usage:     "like a model",
			ArgsUsage: "<model-id>",
			Action:    a.withAPI(a.like),
		},
		{
			Name:      "unlike",
			Usage:     "remove your like from a model",
			ArgsUsage: "<model-id>",
			Action:    a.withAPI(a.unlike),
		},
		{
			Name:      "like-status",
			Usage:     "tell whether you like a model",
			ArgsUsage: "<model-id>",
			Action:    a.withAPI(a.likeStatus),
		},
	}
}

func (a *App) listComments(cctx *cli.Context, api *adapter.Client) error {
	id, err := idArg(cctx, 0, "model id")
	if err != nil {
		return err
	}

	comments, err := api.Interactions.ListComments(cctx.Context, id, models.PageParams{
		Page:     cctx.Int("page"),
		PageSize: cctx.Int("page-size"),
	})
	if err != nil {
		return err
	}

	return a.printJSON(comments)
}

func (a *App) addComment(cctx *cli.Context, api *adapter.Client) error {
	id, err := idArg(cctx, 0, "model id")
	if err != nil {
		return err
	}

	comment, err := api.Interactions.CreateComment(cctx.Context, id, models.CommentCreate{
		Content: cctx.String("content"),
		Rating:  cctx.Int("rating"),
	})
	if err != nil {
		return err
	}

	return a.printJSON(comment)
}

func (a *App) deleteComment(cctx *cli.Context, api *adapter.Client) error {
	id, err := idArg(cctx, 0, "comment id")
	if err != nil {
		return err
	}

	msg, err := api.Interactions.DeleteComment(cctx.Context, id)
	if err != nil {
		return err
	}

	return a.printJSON(msg)
}

func (a *App) like(cctx *cli.Context, api *adapter.Client) error {
	id, err := idArg(cctx, 0, "model id")
	if err != nil {
		return err
	}

	like, err := api.Interactions.Like(cctx.Context, id)
	if err != nil {
		return err
	}

	return a.printJSON(like)
}

func (a *App) unlike(cctx *cli.Context, api *adapter.Client) error {
	id, err := idArg(cctx, 0, "model id")
	if err != nil {
		return err
	}

	msg, err := api.Interactions.Unlike(cctx.Context, id)
	if err != nil {
		return err
	}

	return a.printJSON(msg)
}

func (a *App) likeStatus(cctx *cli.Context, api *adapter.Client) error {
	id, err := idArg(cctx, 0, "model id")
	if err != nil {
		return err
	}

	status, err := api.Interactions.LikeStatus(cctx.Context, id)
	if err != nil {
		return err
	}

	return a.printJSON(status)
}
