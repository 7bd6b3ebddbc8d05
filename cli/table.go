package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"cafe-cli/models"
)

func renderMenuTable(w io.Writer, items []models.MenuItem, currency string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Item No.", "Item Name", fmt.Sprintf("Price (%s)", currency)})
	for _, item := range items {
		table.Append([]string{
			strconv.Itoa(item.ID),
			item.Name,
			strconv.Itoa(item.Price),
		})
	}
	table.Render()
}

func renderBillTable(w io.Writer, rows []models.BillRow, currency string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Item Name",
		"Quantity",
		fmt.Sprintf("Price (%s)", currency),
		fmt.Sprintf("Total (%s)", currency),
	})
	for _, row := range rows {
		table.Append([]string{
			row.Name,
			strconv.Itoa(row.Quantity),
			strconv.Itoa(row.UnitPrice),
			strconv.Itoa(row.LineTotal),
		})
	}
	table.Render()
}
