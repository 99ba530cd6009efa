package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"helpbridge/internal/db"
	"helpbridge/internal/store"
	"helpbridge/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// The roles command talks to the role table directly so the first admin can
// be bootstrapped before anyone is able to use the admin pages.
var rolesCommand = &cli.Command{
	Name:  "roles",
	Usage: "Grant, revoke and list user roles",
	Subcommands: []*cli.Command{
		{
			Name:      "grant",
			Usage:     "Grant a role to a user",
			ArgsUsage: "<user-id> <role>",
			Action: func(c *cli.Context) error {
				return withRoleRepo(c, func(ctx context.Context, repo *store.RoleRepository, userID string, role types.AppRole) error {
					err := repo.InsertRoleGrant(ctx, userID, role)
					if errors.Is(err, types.ErrDuplicateRole) {
						logrus.WithField("user_id", userID).WithField("role", role).Info("User already has this role")
						return nil
					}
					if err != nil {
						return err
					}
					logrus.WithField("user_id", userID).WithField("role", role).Info("Role granted")
					return nil
				})
			},
		},
		{
			Name:      "revoke",
			Usage:     "Revoke a role from a user",
			ArgsUsage: "<user-id> <role>",
			Action: func(c *cli.Context) error {
				return withRoleRepo(c, func(ctx context.Context, repo *store.RoleRepository, userID string, role types.AppRole) error {
					if err := repo.DeleteRoleGrant(ctx, userID, role); err != nil {
						return err
					}
					logrus.WithField("user_id", userID).WithField("role", role).Info("Role revoked")
					return nil
				})
			},
		},
		{
			Name:      "list",
			Usage:     "List the roles held by a user",
			ArgsUsage: "<user-id>",
			Action: func(c *cli.Context) error {
				userID := strings.TrimSpace(c.Args().First())
				if userID == "" {
					return fmt.Errorf("usage: roles list <user-id>")
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

				grants, err := store.NewRoleRepository(pool).RolesByUser(ctx, userID)
				if err != nil {
					return err
				}

				if len(grants) == 0 {
					fmt.Printf("%s has no roles (member)\n", userID)
					return nil
				}
				for _, g := range grants {
					fmt.Printf("%s\t%s\tgranted %s\n", g.UserID, g.Role, g.CreatedAt.Format("2006-01-02 15:04"))
				}
				return nil
			},
		},
	},
}

func withRoleRepo(c *cli.Context, fn func(ctx context.Context, repo *store.RoleRepository, userID string, role types.AppRole) error) error {
	userID := strings.TrimSpace(c.Args().Get(0))
	role := types.AppRole(strings.TrimSpace(c.Args().Get(1)))
	if userID == "" || role == "" {
		return fmt.Errorf("usage: roles %s <user-id> <role>", c.Command.Name)
	}
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", role)
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

	return fn(ctx, store.NewRoleRepository(pool), userID, role)
}
