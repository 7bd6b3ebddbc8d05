// Package cli drives the interactive session. It owns no domain state:
// every mutation goes through the menu store or the order ledger, and
// everything rendered comes from their structured output.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"cafe-cli/config"
	"cafe-cli/services"
)

type App struct {
	cfg      *config.Config
	store    *services.MenuStore
	ledger   *services.OrderLedger
	exporter *services.BillExporter
}

func New(cfg *config.Config, store *services.MenuStore, ledger *services.OrderLedger, exporter *services.BillExporter) *App {
	return &App{cfg: cfg, store: store, ledger: ledger, exporter: exporter}
}

func (a *App) Run(in io.Reader, out io.Writer) {
	p := newPrompter(in, out)
	fmt.Fprintln(out, "\nWelcome to the Café Management System!")
	for !p.eof {
		fmt.Fprintln(out, "\n1. Place Order")
		fmt.Fprintln(out, "2. Generate Bill")
		fmt.Fprintln(out, "3. Save Bill to File")
		fmt.Fprintln(out, "4. Visualize Sales")
		fmt.Fprintln(out, "5. Manage Menu")
		fmt.Fprintln(out, "6. Exit")
		choice, ok := p.readInt("Enter your choice: ")
		if !ok {
			if p.eof {
				return
			}
			fmt.Fprintln(out, "Error: Please enter a valid number!")
			continue
		}
		switch choice {
		case 1:
			a.placeOrder(p, out)
		case 2:
			a.generateBill(out)
		case 3:
			a.saveBill(out)
		case 4:
			a.visualizeSales(out)
		case 5:
			a.manageMenu(p, out)
		case 6:
			fmt.Fprintln(out, "Thank you for using the Café Management System!")
			return
		default:
			fmt.Fprintln(out, "Invalid choice! Please try again.")
		}
	}
}

// placeOrder cycles between the item prompt (0 ends the order) and the
// quantity prompt. Bad quantity input re-prompts at the quantity step
// instead of dropping back to the item prompt.
func (a *App) placeOrder(p *prompter, out io.Writer) {
	for !p.eof {
		fmt.Fprintln(out, "\n--- Menu ---")
		renderMenuTable(out, a.store.Items(), a.cfg.Currency)

		id, ok := p.readInt("\nEnter the item number to order (or 0 to finish): ")
		if !ok {
			if p.eof {
				return
			}
			fmt.Fprintln(out, "Error: Invalid item number!")
			continue
		}
		if id == 0 {
			return
		}
		item, err := a.store.Get(id)
		if err != nil {
			fmt.Fprintln(out, "Error: Invalid item number!")
			continue
		}

		quantity := 0
		for !p.eof {
			q, ok := p.readInt(fmt.Sprintf("Enter quantity for %s: ", item.Name))
			if !ok || q <= 0 {
				fmt.Fprintln(out, "Error: Quantity must be greater than 0!")
				continue
			}
			quantity = q
			break
		}
		if quantity == 0 {
			return
		}

		if err := a.ledger.AddLine(item, quantity); err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}
		fmt.Fprintf(out, "Added %d x %s to the order.\n", quantity, item.Name)
	}
}

func (a *App) generateBill(out io.Writer) {
	if a.ledger.Empty() {
		fmt.Fprintln(out, "\nNo orders placed!")
		return
	}
	fmt.Fprintln(out, "\n--- Bill ---")
	renderBillTable(out, a.ledger.BillRows(), a.cfg.Currency)
	fmt.Fprintf(out, "Total Amount: %s%d\n", a.cfg.Currency, a.ledger.Total())
}

func (a *App) saveBill(out io.Writer) {
	if a.ledger.Empty() {
		fmt.Fprintln(out, "\nNo orders placed!")
		return
	}
	path, err := a.exporter.Export(a.ledger.BillRows(), a.ledger.Total())
	if err != nil {
		fmt.Fprintln(out, "Error saving file:", err)
		return
	}
	fmt.Fprintf(out, "\nBill saved to '%s'\n", path)
}

func (a *App) visualizeSales(out io.Writer) {
	stats := a.ledger.SalesAggregate()
	if len(stats) == 0 {
		fmt.Fprintln(out, "\nNo orders placed to visualize!")
		return
	}
	fmt.Fprintln(out)
	renderSalesChart(out, stats)
}

func (a *App) manageMenu(p *prompter, out io.Writer) {
	for !p.eof {
		fmt.Fprintln(out, "\n1. View Menu")
		fmt.Fprintln(out, "2. Add Item")
		fmt.Fprintln(out, "3. Update Item")
		fmt.Fprintln(out, "4. Remove Item")
		fmt.Fprintln(out, "5. Back")
		choice, ok := p.readInt("Enter your choice: ")
		if !ok {
			if p.eof {
				return
			}
			fmt.Fprintln(out, "Error: Please enter a valid number!")
			continue
		}
		switch choice {
		case 1:
			fmt.Fprintln(out, "\n--- Menu ---")
			renderMenuTable(out, a.store.Items(), a.cfg.Currency)
		case 2:
			a.addItem(p, out)
		case 3:
			a.updateItem(p, out)
		case 4:
			a.removeItem(p, out)
		case 5:
			return
		default:
			fmt.Fprintln(out, "Invalid choice! Please try again.")
		}
	}
}

func (a *App) addItem(p *prompter, out io.Writer) {
	name := p.readLine("Item name: ")
	if name == "" {
		fmt.Fprintln(out, "Error: name is required")
		return
	}
	price, ok := p.readInt("Item price: ")
	if !ok {
		fmt.Fprintln(out, "Error: Please enter a valid number!")
		return
	}
	item, err := a.store.AddItem(name, price)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	fmt.Fprintf(out, "Added item %d: %s (%s%d)\n", item.ID, item.Name, a.cfg.Currency, item.Price)
}

// updateItem applies blank-keeps semantics per field. A price that does
// not parse keeps the old price but a valid new name still applies.
func (a *App) updateItem(p *prompter, out io.Writer) {
	id, ok := p.readInt("Item number to update: ")
	if !ok {
		fmt.Fprintln(out, "Error: Please enter a valid number!")
		return
	}

	var namePtr *string
	if name := p.readLine("New name (blank to keep): "); name != "" {
		namePtr = &name
	}
	var pricePtr *int
	if priceStr := p.readLine("New price (blank to keep): "); priceStr != "" {
		if price, err := strconv.Atoi(priceStr); err == nil {
			pricePtr = &price
		} else {
			fmt.Fprintln(out, "Error: invalid price, keeping old price")
		}
	}

	if err := a.store.UpdateItem(id, namePtr, pricePtr); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			fmt.Fprintln(out, "Error: Invalid item number!")
			return
		}
		fmt.Fprintln(out, "Error:", err)
		return
	}
	fmt.Fprintf(out, "Updated item %d.\n", id)
}

func (a *App) removeItem(p *prompter, out io.Writer) {
	id, ok := p.readInt("Item number to remove: ")
	if !ok {
		fmt.Fprintln(out, "Error: Please enter a valid number!")
		return
	}
	if err := a.store.RemoveItem(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			fmt.Fprintln(out, "Error: Invalid item number!")
			return
		}
		fmt.Fprintln(out, "Error:", err)
		return
	}
	fmt.Fprintf(out, "Removed item %d.\n", id)
}
