package main

import (
	"context"
	"fmt"
	"strings"

	"helpbridge/internal/db"
	"helpbridge/internal/store"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v2"
)

var inspectCommand = &cli.Command{
	Name:  "inspect",
	Usage: "Dump database rows for debugging",
	Subcommands: []*cli.Command{
		{
			Name:      "request",
			Usage:     "Print a help request",
			ArgsUsage: "<request-id>",
			Action: func(c *cli.Context) error {
				requestID := strings.TrimSpace(c.Args().First())
				if requestID == "" {
					return fmt.Errorf("usage: inspect request <request-id>")
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}

				ctx := context.Background()
				pool, err := db.Connect(ctx, cfg)
				if err != nil {
					return fmt.Errorf("failed to connect to database: %w", err)
				}
				defer pool.Close()

				request, err := store.NewRequestRepository(pool).Request(ctx, requestID)
				if err != nil {
					return err
				}

				pp.Println(request)
				return nil
			},
		},
		{
			Name:      "user",
			Usage:     "Print a user's profile and roles",
			ArgsUsage: "<user-id>",
			Action: func(c *cli.Context) error {
				userID := strings.TrimSpace(c.Args().First())
				if userID == "" {
					return fmt.Errorf("usage: inspect user <user-id>")
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}

				ctx := context.Background()
				pool, err := db.Connect(ctx, cfg)
				if err != nil {
					return fmt.Errorf("failed to connect to database: %w", err)
				}
				defer pool.Close()

				profile, err := store.NewProfileRepository(pool).ProfileByUserID(ctx, userID)
				if err != nil {
					return err
				}

				grants, err := store.NewRoleRepository(pool).RolesByUser(ctx, userID)
				if err != nil {
					return err
				}

				pp.Println(profile, grants)
				return nil
			},
		},
	},
}
