// cmd/replenish/main.go
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/automation"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/cache"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/config"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/repository/postgres"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/service"
	_ "github.com/andresuchdata/shelfpilot/backend-go/pkg/logger"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func openServices(c *cli.Context) (*service.PlannerService, *service.OrderService, *postgres.DB, error) {
	db, err := postgres.NewDBFromURL(c.String("db-url"))
	if err != nil {
		return nil, nil, nil, err
	}

	itemRepo := postgres.NewItemRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	ledgerRepo := postgres.NewLedgerRepository(db)
	noop := cache.NewNoopPlannerCache()

	planner := service.NewPlannerService(itemRepo, noop)
	orders := service.NewOrderService(itemRepo, orderRepo, ledgerRepo, noop)

	return planner, orders, db, nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "replenish",
		Usage: "Replenishment engine maintenance commands",
		Commands: []*cli.Command{
			newSeedCommand(),
			newCycleCommand(),
			newUsageCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCycleCommand() *cli.Command {
	return &cli.Command{
		Name:  "cycle",
		Usage: "Run one automation cycle: re-evaluate workspaces and draft orders",
		Flags: []cli.Flag{
			newDBURLFlag(),
			&cli.StringSliceFlag{
				Name:  "workspace",
				Usage: "Workspace id to evaluate (repeatable, defaults to AUTOMATION_WORKSPACES)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Max workspaces evaluated in parallel (defaults to AUTOMATION_MAX_CONCURRENCY)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()

			workspaces := c.StringSlice("workspace")
			if len(workspaces) == 0 {
				workspaces = cfg.Automation.Workspaces
			}
			if len(workspaces) == 0 {
				return cli.Exit("no workspaces configured, pass --workspace or set AUTOMATION_WORKSPACES", 1)
			}

			concurrency := c.Int("concurrency")
			if concurrency <= 0 {
				concurrency = cfg.Automation.MaxConcurrency
			}

			_, orders, db, err := openServices(c)
			if err != nil {
				return err
			}
			defer db.Close()

			runner := automation.NewRunner(orders, workspaces, concurrency)
			results := runner.RunOnce(c.Context)

			failed := 0
			for _, result := range results {
				if result.Err != nil {
					failed++
					continue
				}
				log.Printf("workspace %s: %d draft(s) in %s", result.WorkspaceID, result.Drafts, result.Duration)
			}
			if failed > 0 {
				return cli.Exit("some workspaces failed, see log", 1)
			}

			return nil
		},
	}
}

func newUsageCommand() *cli.Command {
	return &cli.Command{
		Name:  "usage",
		Usage: "Append a daily usage sample to an item",
		Flags: []cli.Flag{
			newDBURLFlag(),
			&cli.StringFlag{Name: "workspace", Required: true},
			&cli.StringFlag{Name: "item", Usage: "Item id", Required: true},
			&cli.Float64Flag{Name: "value", Usage: "Units used today", Required: true},
		},
		Action: func(c *cli.Context) error {
			planner, _, db, err := openServices(c)
			if err != nil {
				return err
			}
			defer db.Close()

			itemID, err := parseItemID(c.String("item"))
			if err != nil {
				return err
			}

			item, err := planner.RecordUsage(c.Context, c.String("workspace"), itemID, c.Float64("value"))
			if err != nil {
				return err
			}

			log.Printf("recorded %.2f for %s (window %d samples, baseline %.2f)",
				c.Float64("value"), item.Name, len(item.DailyDemandSamples), item.AverageDailyUsage)
			return nil
		},
	}
}
