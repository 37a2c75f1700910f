// Package export renders a read-only inventory snapshot as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// header matches the columns of the terminal's inventory export.
var header = []string{"ID", "Name", "Category", "Price", "Stock"}

// WriteCSV writes the snapshot's catalog to w, one row per product, in
// catalog order.
func WriteCSV(w io.Writer, snap *types.Snapshot) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, p := range snap.Products {
		row := []string{
			p.ID,
			p.Name,
			p.Category,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.Itoa(p.Stock),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row for %s: %w", p.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}
