package main

import (
	"context"
	"fmt"

	"helpbridge/internal/db"
	"helpbridge/internal/seed"
	"helpbridge/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with initial data",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "fake",
			Usage: "Also seed fake profiles and help requests",
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "Number of fake help requests to create",
			Value: 40,
		},
		&cli.BoolFlag{
			Name:  "reset",
			Usage: "Delete previously seeded fake help requests first",
		},
	},
	Action: func(c *cli.Context) error {
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

		logrus.Info("Connected to database")

		categoryRepo := store.NewCategoryRepository(pool)

		logrus.Info("Seeding categories...")
		if err := seed.SeedCategories(ctx, categoryRepo); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		logrus.Info("Categories seeded successfully")

		if !c.Bool("fake") {
			return nil
		}

		logrus.Info("Seeding fake profiles...")
		if err := seed.SeedFakeProfiles(ctx, store.NewProfileRepository(pool)); err != nil {
			return fmt.Errorf("failed to seed fake profiles: %w", err)
		}

		logrus.Info("Seeding fake help requests...")
		if err := seed.SeedFakeRequests(ctx, pool, store.NewRequestRepository(pool), c.Int("count"), c.Bool("reset")); err != nil {
			return fmt.Errorf("failed to seed fake requests: %w", err)
		}

		logrus.Info("Fake data seeded successfully")
		return nil
	},
}
