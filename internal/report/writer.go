package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
)

var ErrNoSales = errors.New("no sales data to save")

const (
	heavyRule = "════════════════════════════════════════════════════════════"
	lightRule = "────────────────────────────────────────────────────────────"
)

// FileName is the report name for the day of t.
func FileName(t time.Time) string {
	return fmt.Sprintf("SizzleSync_Sales_%s.txt", t.Format("20060102"))
}

// Render writes the daily sales report for orders.
func Render(w io.Writer, orders []domain.CompletedOrder, summary domain.SalesSummary, generatedAt time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "╔════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(bw, "║           SIZZLESYNC DAILY SALES REPORT                    ║")
	fmt.Fprintln(bw, "╚════════════════════════════════════════════════════════════╝")
	fmt.Fprintf(bw, "Report Date: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "Total Orders: %d\n", summary.OrderCount)
	fmt.Fprintf(bw, "%s\n\n", heavyRule)

	for _, order := range orders {
		fmt.Fprintf(bw, "ORDER #%d\n", order.OrderNumber)
		fmt.Fprintf(bw, "Customer: %s | Table: %s\n", orNA(order.CustomerName), orNA(order.TableIdentifier))
		fmt.Fprintf(bw, "Completed: %s\n", order.CompletedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintln(bw, "Items:")
		for _, item := range order.Items {
			fmt.Fprintf(bw, "  - %s x%d @ PHP%s = PHP%s\n",
				item.Name, item.Quantity, item.UnitPrice.StringFixed(2), item.Subtotal().StringFixed(2))
		}
		fmt.Fprintf(bw, "Order Total: PHP%s\n", order.Total.StringFixed(2))
		fmt.Fprintln(bw, lightRule)
	}

	fmt.Fprintf(bw, "\nTOTAL DAILY SALES: PHP%s\n", summary.TotalSales.StringFixed(2))
	fmt.Fprintf(bw, "AVERAGE ORDER VALUE: PHP%s\n", summary.AverageOrderValue.StringFixed(2))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteFile renders the report into dir, replacing any report already
// written for the same day, and returns the file path.
func WriteFile(dir string, orders []domain.CompletedOrder, summary domain.SalesSummary, generatedAt time.Time) (string, error) {
	if len(orders) == 0 {
		return "", ErrNoSales
	}

	path := filepath.Join(dir, FileName(generatedAt))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	if err := Render(f, orders, summary, generatedAt); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close report file: %w", err)
	}

	return path, nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
