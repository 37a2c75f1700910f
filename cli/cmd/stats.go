package cmd

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/ThinkIshdeep/Chatur-Bazar/cli/render"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// InventoryStats summarizes the persisted snapshot for the stats command.
type InventoryStats struct {
	Products    int      `json:"products"`
	UnitsOnHand int      `json:"units_on_hand"`
	StockValue  float64  `json:"stock_value"`
	Revenue     float64  `json:"revenue"`
	LowStock    []string `json:"low_stock"`
	Depleted    []string `json:"depleted"`
}

// StatsCommand returns the stats command, a read-only inventory summary.
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Show inventory statistics",
		Flags:  ReadOnlyFlags(),
		Action: statsAction,
	}
}

func statsAction(c *cli.Context) error {
	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	snap, err := loadSnapshot(context.Background(), cfg.Storage)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return r.Render(computeStats(snap))
}

func computeStats(snap *types.Snapshot) InventoryStats {
	stats := InventoryStats{
		Products: len(snap.Products),
		Revenue:  snap.Revenue,
		LowStock: []string{},
		Depleted: []string{},
	}
	for _, p := range snap.Products {
		stats.UnitsOnHand += p.Stock
		stats.StockValue += p.Price * float64(p.Stock)
		switch {
		case p.Stock == 0:
			stats.Depleted = append(stats.Depleted, p.Name)
		case p.Stock <= int(types.ReorderWarning):
			stats.LowStock = append(stats.LowStock, p.Name)
		}
	}
	return stats
}
