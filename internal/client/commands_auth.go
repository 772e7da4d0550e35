// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"time"

	"github.com/MKhiriev/model-hub-client/internal/adapter"
	"github.com/MKhiriev/model-hub-client/models"
	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"
)

// tokenOutput is what `token` prints.
type tokenOutput struct {
	AccessToken string     `json:"access_token"`
	Subject     string     `json:"subject,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

func (a *App) authCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "register",
			Usage: "create an account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
				&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
				&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
			},
			Action: a.register,
		},
		{
			Name:  "login",
			Usage: "log in and keep the session for later commands",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
				&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
			},
			Action: a.login,
		},
		{
			Name:   "logout",
			Usage:  "end the session",
			Action: a.logout,
		},
		{
			Name:   "whoami",
			Usage:  "show the logged in user",
			Action: a.whoami,
		},
		{
			Name:  "profile",
			Usage: "manage your profile",
			Subcommands: []*cli.Command{
				{
					Name:  "update",
					Usage: "change profile fields; omitted flags are left as they are",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "username"},
						&cli.StringFlag{Name: "bio"},
						&cli.StringFlag{Name: "avatar", Usage: "avatar image `URL`"},
					},
					Action: a.withAPI(a.updateProfile),
				},
			},
		},
		{
			Name:  "token",
			Usage: "print the session token and its claims",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "copy", Usage: "copy the token to the clipboard instead of printing it"},
			},
			Action: a.token,
		},
	}
}

func (a *App) register(cctx *cli.Context) error {
	s, err := a.sessionStore(cctx)
	if err != nil {
		return err
	}

	user, err := s.Register(cctx.Context, models.Registration{
		Email:    cctx.String("email"),
		Username: cctx.String("username"),
		Password: cctx.String("password"),
	})
	if err != nil {
		return err
	}

	return a.printJSON(user)
}

func (a *App) login(cctx *cli.Context) error {
	s, err := a.sessionStore(cctx)
	if err != nil {
		return err
	}

	err = s.Login(cctx.Context, models.Credentials{
		Email:    cctx.String("email"),
		Password: cctx.String("password"),
	})
	if err != nil {
		return err
	}

	user := s.User()
	if user == nil {
		return fmt.Errorf("login: session was rejected by the server")
	}

	return a.printJSON(user)
}

func (a *App) logout(cctx *cli.Context) error {
	s, err := a.sessionStore(cctx)
	if err != nil {
		return err
	}

	if s.IsLoggedIn() {
		// the local session ends even when the server call fails
		if _, err = a.api.Auth.Logout(cctx.Context); err != nil {
			a.logger.Warn().Err(err).Msg("server logout failed")
		}
	}

	if err = s.Logout(cctx.Context); err != nil {
		return err
	}

	return a.printJSON(models.Message{Message: "Logged out"})
}

func (a *App) whoami(cctx *cli.Context) error {
	s, err := a.sessionStore(cctx)
	if err != nil {
		return err
	}

	user := s.User()
	if user == nil {
		return errNotLoggedIn
	}

	return a.printJSON(user)
}

func (a *App) updateProfile(cctx *cli.Context, api *adapter.Client) error {
	update := models.UserUpdate{
		Username: optString(cctx, "username"),
		Bio:      optString(cctx, "bio"),
		Avatar:   optString(cctx, "avatar"),
	}
	if update == (models.UserUpdate{}) {
		return fmt.Errorf("nothing to update, pass --username, --bio or --avatar")
	}

	user, err := api.Auth.UpdateMe(cctx.Context, update)
	if err != nil {
		return err
	}

	return a.printJSON(user)
}

func (a *App) token(cctx *cli.Context) error {
	s, err := a.sessionStore(cctx)
	if err != nil {
		return err
	}

	if !s.IsLoggedIn() {
		return errNotLoggedIn
	}
	token := models.Token{AccessToken: s.Token()}

	if cctx.Bool("copy") {
		if err = clipboard.WriteAll(token.AccessToken); err != nil {
			return fmt.Errorf("copy token: %w", err)
		}
		return a.printJSON(models.Message{Message: "Token copied to clipboard"})
	}

	out := tokenOutput{AccessToken: token.AccessToken}
	if claims, err := token.Claims(); err == nil {
		out.Subject = claims.Subject
		out.ExpiresAt = claims.ExpiresAt
	} else {
		a.logger.Debug().Err(err).Msg("token is not a readable JWT")
	}

	return a.printJSON(out)
}
