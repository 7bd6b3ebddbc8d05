package services

import (
	"errors"

	"cafe-cli/models"
)

var ErrInvalidQuantity = errors.New("quantity must be greater than 0")

// OrderLedger holds the order lines for one session. Lines are append
// only; there is no cancel or edit, and the ledger dies with the session.
type OrderLedger struct {
	lines []models.OrderLine
}

func NewOrderLedger() *OrderLedger {
	return &OrderLedger{}
}

// AddLine snapshots the item's name and price at call time, so later
// menu edits leave this line untouched.
func (l *OrderLedger) AddLine(item models.MenuItem, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	l.lines = append(l.lines, models.OrderLine{
		Name:     item.Name,
		Price:    item.Price,
		Quantity: quantity,
	})
	return nil
}

func (l *OrderLedger) Empty() bool {
	return len(l.lines) == 0
}

// Total is the sum of price x quantity over all lines, 0 when empty.
func (l *OrderLedger) Total() int {
	total := 0
	for _, line := range l.lines {
		total += line.Price * line.Quantity
	}
	return total
}

// BillRows returns one row per order line, in insertion order.
func (l *OrderLedger) BillRows() []models.BillRow {
	rows := make([]models.BillRow, 0, len(l.lines))
	for _, line := range l.lines {
		rows = append(rows, models.BillRow{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
			LineTotal: line.Price * line.Quantity,
		})
	}
	return rows
}

// SalesAggregate sums quantities per item name, keeping first-seen
// order. Empty ledger yields an empty slice.
func (l *OrderLedger) SalesAggregate() []models.SalesStat {
	index := make(map[string]int)
	stats := make([]models.SalesStat, 0)
	for _, line := range l.lines {
		if i, ok := index[line.Name]; ok {
			stats[i].Quantity += line.Quantity
			continue
		}
		index[line.Name] = len(stats)
		stats = append(stats, models.SalesStat{Name: line.Name, Quantity: line.Quantity})
	}
	return stats
}
