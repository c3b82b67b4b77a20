package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/report"
	"github.com/Beka01247/sizzlesync-pos/internal/session"
	"go.uber.org/zap"
)

// reportUploader publishes a saved report and returns where it can be read.
type reportUploader interface {
	Upload(ctx context.Context, name string, body io.Reader) (string, error)
}

type console struct {
	in        *bufio.Scanner
	out       io.Writer
	ctrl      *session.Controller
	style     string
	reportDir string
	uploader  reportUploader
	logger    *zap.SugaredLogger
	now       func() time.Time
}

func (c *console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *console) prompt(format string, args ...any) (string, bool) {
	fmt.Fprintf(c.out, format, args...)
	return c.readLine()
}

// run drives the main menu until exit is chosen or input ends.
func (c *console) run(ctx context.Context) error {
	banner(c.out,
		"SIZZLESYNC POS SYSTEM",
		"Console-Based Restaurant Management System",
	)

	for {
		renderMainMenu(c.out, c.ctrl)

		choice, ok := c.readLine()
		if !ok {
			c.exit()
			return c.in.Err()
		}

		switch choice {
		case "1":
			c.createOrder()
		case "2":
			c.addItems()
		case "3":
			c.removeLastItem()
		case "4":
			c.viewOrder()
		case "5":
			c.completeOrder(ctx)
		case "6":
			renderQueue(c.out, c.ctrl.Pending())
		case "7":
			c.processNext()
		case "8":
			renderMenu(c.out, c.ctrl.Catalog(), c.style)
		case "9":
			renderSummary(c.out, c.ctrl.Completed(), c.ctrl.Summary(), c.now())
		case "10":
			c.saveReport(ctx)
		case "11":
			c.exit()
			return nil
		default:
			fmt.Fprintln(c.out, "\nInvalid option. Please select a number from 1-11.")
		}
	}
}

func (c *console) createOrder() {
	fmt.Fprintln(c.out, "\n--- CREATE NEW ORDER ---")

	name, ok := c.prompt("Enter customer name: ")
	if !ok {
		return
	}
	if name == "" {
		fmt.Fprintln(c.out, "Error: Customer name cannot be empty.")
		return
	}

	table, ok := c.prompt("Enter table number: ")
	if !ok {
		return
	}
	if table == "" {
		fmt.Fprintln(c.out, "Error: Table number cannot be empty.")
		return
	}

	sub, err := c.ctrl.Submit(name, table)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	if sub.Activated {
		fmt.Fprintf(c.out, "\n✓ Order #%d is now active. Ready to add items!\n", sub.OrderNumber)
		return
	}

	fmt.Fprintf(c.out, "\n✓ Order #%d added to queue.\n", sub.OrderNumber)
	fmt.Fprintf(c.out, "   Customer: %s\n", name)
	fmt.Fprintf(c.out, "   Table: %s\n", table)
	fmt.Fprintf(c.out, "   Position in queue: %d\n", sub.Position)
	if _, active := c.ctrl.Active(); active {
		fmt.Fprintln(c.out, "Complete current order first.")
	}
}

func (c *console) addItems() {
	active, ok := c.ctrl.Active()
	if !ok {
		fmt.Fprintln(c.out, "\nNo active order. Please create a new order first (Option 1).")
		return
	}

	fmt.Fprintf(c.out, "\n--- TAKING ORDER FOR: %s (Table %s) ---\n",
		strings.ToUpper(active.Order.CustomerName), active.Order.TableIdentifier)
	catalog := c.ctrl.Catalog()
	renderMenu(c.out, catalog, c.style)

	for {
		input, ok := c.prompt("\nEnter menu item number (or 0 to finish): ")
		if !ok {
			return
		}
		if input == "" {
			fmt.Fprintln(c.out, "Please enter a valid number.")
			continue
		}

		number, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(c.out, "Error: Please enter a valid number.")
			continue
		}
		if number == 0 {
			return
		}

		entry, found := catalog.Lookup(number)
		if !found {
			fmt.Fprintf(c.out, "Error: Please enter a number between 1 and %d.\n", catalog.Count())
			continue
		}

		variant, ok := c.selectVariant(entry)
		if !ok {
			return
		}

		name, err := catalog.ItemName(number, variant)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}

		qtyInput, ok := c.prompt("Enter quantity for %s: ", name)
		if !ok {
			return
		}
		quantity, valid := c.parseQuantity(qtyInput)
		if !valid {
			continue
		}

		item, err := c.ctrl.AddMenuItem(number, variant, quantity)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(c.out, "✓ '%s' x%d added to order.\n", item.Name, item.Quantity)
	}
}

// selectVariant returns the 1-based add-on choice, or 0 for the plain item.
func (c *console) selectVariant(entry domain.MenuEntry) (int, bool) {
	if len(entry.Variants) == 0 {
		return 0, true
	}

	renderVariants(c.out, entry.Name, entry.Variants)
	input, ok := c.readLine()
	if !ok {
		return 0, false
	}
	if input == "" {
		return 0, true
	}

	choice, err := strconv.Atoi(input)
	if err != nil || choice < 0 || choice > len(entry.Variants) {
		fmt.Fprintln(c.out, "Invalid choice. No variation selected.")
		return 0, true
	}

	return choice, true
}

func (c *console) parseQuantity(input string) (int, bool) {
	if input == "" {
		fmt.Fprintln(c.out, "Error: Quantity cannot be empty.")
		return 0, false
	}

	quantity, err := strconv.Atoi(input)
	switch {
	case err != nil:
		fmt.Fprintln(c.out, "Error: Please enter a valid number for quantity.")
		return 0, false
	case quantity > domain.MaxQuantity:
		fmt.Fprintf(c.out, "Error: Quantity cannot exceed %d.\n", domain.MaxQuantity)
		return 0, false
	case quantity < domain.MinQuantity:
		fmt.Fprintln(c.out, "Error: Quantity must be greater than zero.")
		return 0, false
	}

	return quantity, true
}

func (c *console) removeLastItem() {
	active, ok := c.ctrl.Active()
	if !ok {
		fmt.Fprintln(c.out, "\nNo active order to modify.")
		return
	}

	fmt.Fprintf(c.out, "\n--- REMOVE LAST ITEM FROM ORDER #%d ---\n", active.Order.OrderNumber)

	item, err := c.ctrl.RemoveLastItem()
	if errors.Is(err, session.ErrEmptyOrder) {
		fmt.Fprintln(c.out, "Order is empty. Nothing to remove.")
		return
	}
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "✓ '%s' x%d removed from order.\n", item.Name, item.Quantity)
}

func (c *console) viewOrder() {
	active, ok := c.ctrl.Active()
	if !ok {
		fmt.Fprintln(c.out, "\nNo active order.")
		return
	}
	renderOrder(c.out, active)
}

func (c *console) completeOrder(ctx context.Context) {
	completed, err := c.ctrl.Complete(ctx)
	switch {
	case errors.Is(err, session.ErrNoActiveOrder):
		fmt.Fprintln(c.out, "\nNo active order to complete.")
		return
	case errors.Is(err, session.ErrEmptyOrder):
		fmt.Fprintln(c.out, "\nOrder is empty. Add items before completing.")
		return
	case err != nil:
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(c.out)
	banner(c.out, "COMPLETING ORDER")
	renderReceipt(c.out, completed)
	fmt.Fprintf(c.out, "\n✓ Order #%d completed and saved!\n", completed.OrderNumber)

	if c.ctrl.PendingCount() == 0 {
		return
	}

	fmt.Fprintln(c.out, "\n--- Next Order Ready ---")
	answer, ok := c.prompt("Process next order from queue? (y/n): ")
	if ok && strings.EqualFold(answer, "y") {
		c.processNext()
	}
}

func (c *console) processNext() {
	order, err := c.ctrl.ActivateNext()
	switch {
	case errors.Is(err, session.ErrOrderActive):
		fmt.Fprintln(c.out, "\nComplete current order before processing next one.")
		return
	case errors.Is(err, session.ErrQueueEmpty):
		fmt.Fprintln(c.out, "\n--- PROCESS NEXT ORDER ---")
		fmt.Fprintln(c.out, "No pending orders to process.")
		return
	case err != nil:
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(c.out, "\n--- PROCESS NEXT ORDER ---")
	fmt.Fprintf(c.out, "✓ Now processing Order #%d\n", order.OrderNumber)
	fmt.Fprintf(c.out, "   Customer: %s\n", order.CustomerName)
	fmt.Fprintf(c.out, "   Table: %s\n", order.TableIdentifier)
	fmt.Fprintf(c.out, "   Orders remaining in queue: %d\n", c.ctrl.PendingCount())
	fmt.Fprintf(c.out, "\n✓ Order #%d is now active. Ready to add items!\n", order.OrderNumber)
}

func (c *console) saveReport(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- SAVE SALES RECORDS TO FILE ---")

	path, err := report.WriteFile(c.reportDir, c.ctrl.Completed(), c.ctrl.Summary(), c.now())
	if errors.Is(err, report.ErrNoSales) {
		fmt.Fprintln(c.out, "No sales data to save.")
		return
	}
	if err != nil {
		c.logger.Errorw("failed to save sales report", "dir", c.reportDir, "error", err)
		fmt.Fprintf(c.out, "Error saving file: %v\n", err)
		return
	}

	c.logger.Infow("sales report saved", "path", path, "orders", c.ctrl.Summary().OrderCount)
	fmt.Fprintf(c.out, "✓ Sales records saved successfully to: %s\n", path)

	if c.uploader == nil {
		return
	}

	url, err := c.uploadReport(ctx, path)
	if err != nil {
		c.logger.Errorw("failed to upload sales report", "path", path, "error", err)
		fmt.Fprintf(c.out, "Warning: report saved locally but upload failed: %v\n", err)
		return
	}

	c.logger.Infow("sales report uploaded", "url", url)
	fmt.Fprintf(c.out, "✓ Report uploaded to: %s\n", url)
}

func (c *console) uploadReport(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	return c.uploader.Upload(ctx, filepath.Base(path), f)
}

// exit discards whatever was still in flight; nothing unfinished is recorded.
func (c *console) exit() {
	if order, err := c.ctrl.Abandon(); err == nil {
		fmt.Fprintf(c.out, "\nOrder #%d was not completed and has been discarded.\n", order.OrderNumber)
	}
	if n := c.ctrl.ClearQueue(); n > 0 {
		fmt.Fprintf(c.out, "%d pending order(s) discarded.\n", n)
	}

	fmt.Fprintln(c.out)
	banner(c.out,
		"THANK YOU FOR USING SIZZLESYNC POS",
		"Streamlined Restaurant Operations System",
	)
	fmt.Fprintln(c.out, "\nGoodbye!")
}
