package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-cli/models"
)

func TestOrderLedger_Empty(t *testing.T) {
	l := NewOrderLedger()

	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Total())
	assert.Empty(t, l.BillRows())
	assert.Empty(t, l.SalesAggregate())
}

func TestOrderLedger_AddLineInvalidQuantity(t *testing.T) {
	l := NewOrderLedger()
	item := models.MenuItem{ID: 1, Name: "Coffee", Price: 50}

	assert.ErrorIs(t, l.AddLine(item, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, l.AddLine(item, -3), ErrInvalidQuantity)
	assert.True(t, l.Empty())
}

func TestOrderLedger_Total(t *testing.T) {
	l := NewOrderLedger()
	require.NoError(t, l.AddLine(models.MenuItem{ID: 1, Name: "Coffee", Price: 50}, 2))
	require.NoError(t, l.AddLine(models.MenuItem{ID: 2, Name: "Tea", Price: 30}, 1))

	assert.Equal(t, 130, l.Total())
}

func TestOrderLedger_SnapshotsItemAtAddTime(t *testing.T) {
	l := NewOrderLedger()
	item := models.MenuItem{ID: 1, Name: "Coffee", Price: 50}
	require.NoError(t, l.AddLine(item, 2))

	// A later menu edit must not change the recorded line.
	item.Name = "Espresso"
	item.Price = 500

	rows := l.BillRows()
	require.Len(t, rows, 1)
	assert.Equal(t, models.BillRow{Name: "Coffee", Quantity: 2, UnitPrice: 50, LineTotal: 100}, rows[0])
	assert.Equal(t, 100, l.Total())
}

func TestOrderLedger_BillRowsInsertionOrder(t *testing.T) {
	l := NewOrderLedger()
	require.NoError(t, l.AddLine(models.MenuItem{Name: "Tea", Price: 30}, 1))
	require.NoError(t, l.AddLine(models.MenuItem{Name: "Coffee", Price: 50}, 2))
	require.NoError(t, l.AddLine(models.MenuItem{Name: "Tea", Price: 30}, 4))

	rows := l.BillRows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Tea", rows[0].Name)
	assert.Equal(t, "Coffee", rows[1].Name)
	assert.Equal(t, "Tea", rows[2].Name)
	assert.Equal(t, 120, rows[2].LineTotal)
}

func TestOrderLedger_SalesAggregate(t *testing.T) {
	l := NewOrderLedger()
	require.NoError(t, l.AddLine(models.MenuItem{Name: "Coffee", Price: 50}, 2))
	require.NoError(t, l.AddLine(models.MenuItem{Name: "Tea", Price: 30}, 1))
	require.NoError(t, l.AddLine(models.MenuItem{Name: "Coffee", Price: 50}, 3))

	want := []models.SalesStat{
		{Name: "Coffee", Quantity: 5},
		{Name: "Tea", Quantity: 1},
	}
	assert.Equal(t, want, l.SalesAggregate())
}
