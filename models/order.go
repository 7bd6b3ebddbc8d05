package models

// OrderLine records what was ordered. Name and Price are copied from the
// menu item when the line is placed, so later menu edits do not change
// lines already in the ledger.
type OrderLine struct {
	Name     string
	Price    int
	Quantity int
}

// BillRow is one rendered row of the bill.
type BillRow struct {
	Name      string
	Quantity  int
	UnitPrice int
	LineTotal int
}

// SalesStat is total quantity sold under one item name, in first-seen
// order. Feeds the sales chart.
type SalesStat struct {
	Name     string
	Quantity int
}
