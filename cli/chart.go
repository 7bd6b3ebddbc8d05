package cli

import (
	"fmt"
	"io"
	"strings"

	"cafe-cli/models"
)

const maxBarWidth = 40

// renderSalesChart draws a horizontal bar chart of quantities sold per
// item name. Bars scale so the largest quantity fills maxBarWidth.
func renderSalesChart(w io.Writer, stats []models.SalesStat) {
	if len(stats) == 0 {
		return
	}

	maxQty := 0
	labelWidth := 0
	for _, s := range stats {
		if s.Quantity > maxQty {
			maxQty = s.Quantity
		}
		if len(s.Name) > labelWidth {
			labelWidth = len(s.Name)
		}
	}

	fmt.Fprintln(w, "--- Sales ---")
	for _, s := range stats {
		width := s.Quantity * maxBarWidth / maxQty
		if width < 1 {
			width = 1
		}
		fmt.Fprintf(w, "%-*s | %s %d\n", labelWidth, s.Name, strings.Repeat("█", width), s.Quantity)
	}
}
