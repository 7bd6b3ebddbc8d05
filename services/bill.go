package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"cafe-cli/models"
)

// BillExporter writes the current bill to a timestamped text file so
// earlier exports are never overwritten.
type BillExporter struct {
	dir      string
	currency string
	logger   *zap.Logger
	now      func() time.Time
}

func NewBillExporter(dir, currency string, logger *zap.Logger) *BillExporter {
	return &BillExporter{
		dir:      dir,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

// Export writes one line per bill row plus a grand total line and
// returns the path of the written file.
func (e *BillExporter) Export(rows []models.BillRow, total int) (string, error) {
	var b strings.Builder
	b.WriteString("--- Bill ---\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%s x %d = %s%d\n", row.Name, row.Quantity, e.currency, row.LineTotal)
	}
	fmt.Fprintf(&b, "Total Amount: %s%d\n", e.currency, total)

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create bill dir: %w", err)
	}
	name := fmt.Sprintf("bill_%s.txt", e.now().Format("20060102_150405"))
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		e.logger.Warn("bill export failed", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("write bill: %w", err)
	}
	return path, nil
}
