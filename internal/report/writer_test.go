package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/ledger"
	"github.com/shopspring/decimal"
)

var reportTime = time.Date(2026, 10, 19, 21, 15, 0, 0, time.UTC)

func sampleLedger() *ledger.Ledger {
	l := ledger.New()
	l.Record(1001, "Alice", "T1", []domain.LineItem{
		{Name: "Fries", UnitPrice: decimal.RequireFromString("90"), Quantity: 2},
	}, decimal.RequireFromString("180"), reportTime.Add(-2*time.Hour))
	l.Record(1002, "Bob", "T2", []domain.LineItem{
		{Name: "Chicken Wings w/ BBQ", UnitPrice: decimal.RequireFromString("150"), Quantity: 1},
		{Name: "Iced Tea", UnitPrice: decimal.RequireFromString("50"), Quantity: 3},
	}, decimal.RequireFromString("300"), reportTime.Add(-time.Hour))
	return l
}

func TestFileName(t *testing.T) {
	if got := FileName(reportTime); got != "SizzleSync_Sales_20261019.txt" {
		t.Errorf("unexpected file name %q", got)
	}
}

func TestRender(t *testing.T) {
	l := sampleLedger()
	var buf bytes.Buffer

	if err := Render(&buf, l.All(), l.Summary(), reportTime); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Report Date: 2026-10-19 21:15:00",
		"Total Orders: 2",
		"ORDER #1001",
		"Customer: Alice | Table: T1",
		"Completed: 2026-10-19 19:15:00",
		"  - Fries x2 @ PHP90.00 = PHP180.00",
		"  - Chicken Wings w/ BBQ x1 @ PHP150.00 = PHP150.00",
		"  - Iced Tea x3 @ PHP50.00 = PHP150.00",
		"Order Total: PHP300.00",
		"TOTAL DAILY SALES: PHP480.00",
		"AVERAGE ORDER VALUE: PHP240.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q", want)
		}
	}

	if strings.Index(out, "ORDER #1001") > strings.Index(out, "ORDER #1002") {
		t.Errorf("orders must appear in completion order")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	l := sampleLedger()

	path, err := WriteFile(dir, l.All(), l.Summary(), reportTime)
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	if filepath.Base(path) != "SizzleSync_Sales_20261019.txt" {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "TOTAL DAILY SALES: PHP480.00") {
		t.Errorf("report file is missing totals")
	}
}

func TestWriteFile_NoSales(t *testing.T) {
	l := ledger.New()

	if _, err := WriteFile(t.TempDir(), l.All(), l.Summary(), reportTime); !errors.Is(err, ErrNoSales) {
		t.Fatalf("expected ErrNoSales, got %v", err)
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	l := sampleLedger()
	dir := filepath.Join(t.TempDir(), "missing")

	if _, err := WriteFile(dir, l.All(), l.Summary(), reportTime); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
