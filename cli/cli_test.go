package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cafe-cli/config"
	"cafe-cli/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		MenuFile: filepath.Join(dir, "menu.json"),
		BillDir:  dir,
		Currency: "₹",
		LogLevel: "info",
	}
	store := services.NewMenuStore(cfg.MenuFile, zap.NewNop())
	store.Load()
	ledger := services.NewOrderLedger()
	exporter := services.NewBillExporter(cfg.BillDir, cfg.Currency, zap.NewNop())
	return New(cfg, store, ledger, exporter)
}

func run(t *testing.T, app *App, input string) string {
	t.Helper()
	var out bytes.Buffer
	app.Run(strings.NewReader(input), &out)
	return out.String()
}

func TestRun_AddItemOrderAndBill(t *testing.T) {
	app := newTestApp(t)

	input := strings.Join([]string{
		"5",     // manage menu
		"2",     // add item
		"Juice", // name
		"40",    // price
		"5",     // back
		"1",     // place order
		"5",     // new item id
		"2",     // quantity
		"0",     // finish order
		"2",     // generate bill
		"3",     // save bill
		"4",     // visualize
		"6",     // exit
	}, "\n") + "\n"

	out := run(t, app, input)

	assert.Contains(t, out, "Added item 5: Juice (₹40)")
	assert.Contains(t, out, "Added 2 x Juice to the order.")
	assert.Contains(t, out, "Juice")
	assert.Contains(t, out, "Total Amount: ₹80")
	assert.Contains(t, out, "Bill saved to")
	assert.Contains(t, out, "--- Sales ---")
	assert.Contains(t, out, "Thank you for using the Café Management System!")
}

func TestRun_InvalidChoiceReprompts(t *testing.T) {
	app := newTestApp(t)
	out := run(t, app, "abc\n99\n6\n")

	assert.Contains(t, out, "Error: Please enter a valid number!")
	assert.Contains(t, out, "Invalid choice! Please try again.")
	assert.Contains(t, out, "Thank you for using the Café Management System!")
}

func TestPlaceOrder_InvalidQuantityReprompts(t *testing.T) {
	app := newTestApp(t)

	// Junk and non-positive quantities re-prompt at the quantity step,
	// they do not drop back to the item prompt.
	input := "1\n1\nabc\n-2\n3\n0\n6\n"
	out := run(t, app, input)

	assert.Equal(t, 2, strings.Count(out, "Error: Quantity must be greater than 0!"))
	assert.Contains(t, out, "Added 3 x Coffee to the order.")
}

func TestPlaceOrder_UnknownItemContinues(t *testing.T) {
	app := newTestApp(t)
	out := run(t, app, "1\n42\n1\n1\n0\n6\n")

	assert.Contains(t, out, "Error: Invalid item number!")
	assert.Contains(t, out, "Added 1 x Coffee to the order.")
}

func TestGenerateBill_EmptyLedger(t *testing.T) {
	app := newTestApp(t)
	out := run(t, app, "2\n4\n3\n6\n")

	assert.Contains(t, out, "No orders placed!")
	assert.Contains(t, out, "No orders placed to visualize!")
	assert.NotContains(t, out, "Bill saved to")
}

func TestManageMenu_UpdateKeepsPriceOnBadInput(t *testing.T) {
	app := newTestApp(t)

	// Rename item 1 while entering a junk price: name applies, price kept.
	input := "5\n3\n1\nEspresso\ncheap\n1\n5\n6\n"
	out := run(t, app, input)

	assert.Contains(t, out, "Error: invalid price, keeping old price")
	assert.Contains(t, out, "Updated item 1.")
	assert.Contains(t, out, "Espresso")
	assert.Contains(t, out, "50")
}

func TestManageMenu_RemoveNotFound(t *testing.T) {
	app := newTestApp(t)
	out := run(t, app, "5\n4\n42\n5\n6\n")

	assert.Contains(t, out, "Error: Invalid item number!")
}

func TestRun_EOFStops(t *testing.T) {
	app := newTestApp(t)
	out := run(t, app, "1\n")

	// Input ends mid order entry; the loop must terminate, not spin.
	require.Contains(t, out, "--- Menu ---")
}
