// cmd/replenish/seed.go
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/repository/postgres"
)

func newSeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load a catalog CSV into the items table",
		Flags: []cli.Flag{
			newDBURLFlag(),
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Catalog CSV path",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "workspace",
				Usage:    "Workspace id the items belong to",
				Required: true,
			},
		},
		Action: runSeed,
	}
}

func runSeed(c *cli.Context) error {
	db, err := postgres.NewDBFromURL(c.String("db-url"))
	if err != nil {
		return err
	}
	defer db.Close()

	file, err := os.Open(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	itemRepo := postgres.NewItemRepository(db)
	workspaceID := c.String("workspace")

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}

		item, err := itemFromRecord(record, cols, workspaceID)
		if err != nil {
			log.Printf("skipping row: %v", err)
			continue
		}

		if err := itemRepo.Save(c.Context, item); err != nil {
			return fmt.Errorf("failed to save item %s: %w", item.Name, err)
		}
		count++
	}

	log.Printf("seeded %d item(s) into workspace %s", count, workspaceID)
	return nil
}

func itemFromRecord(record []string, cols map[string]int, workspaceID string) (*domain.InventoryItem, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}
	intField := func(name string) int {
		v, _ := strconv.Atoi(field(name))
		return v
	}
	floatField := func(name string) float64 {
		v, _ := strconv.ParseFloat(field(name), 64)
		return v
	}

	name := field("name")
	if name == "" {
		return nil, fmt.Errorf("missing item name")
	}

	item := &domain.InventoryItem{
		ID:                   uuid.New(),
		WorkspaceID:          workspaceID,
		Name:                 name,
		Quantity:             intField("quantity"),
		UnitsPerCase:         intField("units_per_case"),
		LooseUnits:           intField("loose_units"),
		EachesPerUnit:        intField("eaches_per_unit"),
		LooseEaches:          intField("loose_eaches"),
		IsLiquid:             strings.EqualFold(field("is_liquid"), "true"),
		GallonFraction:       floatField("gallon_fraction"),
		AverageDailyUsage:    floatField("average_daily_usage"),
		LeadTimeDays:         intField("lead_time_days"),
		LeadTimeVarianceDays: intField("lead_time_variance_days"),
		SafetyStockUnits:     intField("safety_stock_units"),
		MinimumOrderQuantity: intField("minimum_order_quantity"),
		ReorderCasePack:      intField("reorder_case_pack"),
		PreferredSupplier:    field("preferred_supplier"),
		SupplierSKU:          field("supplier_sku"),
	}

	if raw := field("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", raw)
		}
		item.ID = id
	}

	return item, nil
}

func parseItemID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid item id %q", raw)
	}
	return id, nil
}
