package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/menu"
	"github.com/Beka01247/sizzlesync-pos/internal/session"
	"github.com/shopspring/decimal"
)

const (
	styleCompact = "compact"
	styleBoard   = "board"

	heavyRule = "════════════════════════════════════════════════════════════"
	lightRule = "────────────────────────────────────────────────────────────"
)

func php(d decimal.Decimal) string {
	return "PHP" + d.StringFixed(2)
}

func banner(w io.Writer, lines ...string) {
	fmt.Fprintln(w, "╔"+heavyRule+"╗")
	for _, line := range lines {
		pad := 60 - len([]rune(line))
		left := pad / 2
		fmt.Fprintf(w, "║%s%s%s║\n", strings.Repeat(" ", left), line, strings.Repeat(" ", pad-left))
	}
	fmt.Fprintln(w, "╚"+heavyRule+"╝")
}

func renderMainMenu(w io.Writer, ctrl *session.Controller) {
	fmt.Fprintln(w)
	banner(w, "MAIN MENU")
	fmt.Fprintln(w, "  [1]  Create New Order")
	fmt.Fprintln(w, "  [2]  Add Items to Current Order")
	fmt.Fprintln(w, "  [3]  Remove Last Item")
	fmt.Fprintln(w, "  [4]  View Current Order Details")
	fmt.Fprintln(w, "  [5]  Complete Order & Generate Receipt")
	fmt.Fprintln(w, "  [6]  View Pending Orders Queue")
	fmt.Fprintln(w, "  [7]  Process Next Order")
	fmt.Fprintln(w, "  [8]  Display Restaurant Menu")
	fmt.Fprintln(w, "  [9]  View Daily Sales Summary")
	fmt.Fprintln(w, "  [10] Save Sales Records to File")
	fmt.Fprintln(w, "  [11] Exit Application")
	fmt.Fprintln(w, heavyRule)

	if active, ok := ctrl.Active(); ok {
		fmt.Fprintf(w, "Current Order: #%d | Customer: %s | Table: %s\n",
			active.Order.OrderNumber, active.Order.CustomerName, active.Order.TableIdentifier)
		fmt.Fprintf(w, "Items in Order: %d\n", len(active.Items))
		fmt.Fprintln(w, heavyRule)
	}

	fmt.Fprint(w, "\nEnter your choice (1-11): ")
}

func renderMenu(w io.Writer, catalog *menu.Catalog, style string) {
	fmt.Fprintln(w)
	banner(w, "SIZZLESYNC RESTAURANT MENU")

	if style == styleBoard {
		renderBoard(w, catalog)
	} else {
		renderCompact(w, catalog)
	}

	fmt.Fprintln(w, "\n"+heavyRule)
}

func renderCompact(w io.Writer, catalog *menu.Catalog) {
	for _, row := range catalog.Board() {
		fmt.Fprintf(w, "\n┌%s┐\n", strings.Repeat("─", 57))
		fmt.Fprintf(w, "│  %-55s│\n", strings.ToUpper(string(row.Category)))
		fmt.Fprintf(w, "└%s┘\n", strings.Repeat("─", 57))

		for _, e := range row.Entries {
			fmt.Fprintf(w, "\n [%2d] %-30s PHP %6s\n", e.Number, e.Name, e.Price.StringFixed(2))
			for _, v := range e.Variants {
				fmt.Fprintf(w, "      w/ %s\n", v)
			}
		}
	}
}

// renderBoard lays categories out as columns and items as rows.
func renderBoard(w io.Writer, catalog *menu.Catalog) {
	board := catalog.Board()
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)

	depth := 0
	headers := make([]string, 0, len(board))
	for _, row := range board {
		headers = append(headers, strings.ToUpper(string(row.Category)))
		if len(row.Entries) > depth {
			depth = len(row.Entries)
		}
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, strings.Join(headers, "\t")+"\t")

	for i := 0; i < depth; i++ {
		cells := make([]string, 0, len(board))
		for _, row := range board {
			if i < len(row.Entries) {
				e := row.Entries[i]
				cells = append(cells, fmt.Sprintf("[%2d] %s %s", e.Number, e.Name, php(e.Price)))
			} else {
				cells = append(cells, "")
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}

	tw.Flush()
}

func renderVariants(w io.Writer, name string, variants []string) {
	fmt.Fprintf(w, "\nSelect variation for %s:\n", name)
	fmt.Fprintln(w, "  [0] No variation (plain)")
	for i, v := range variants {
		fmt.Fprintf(w, "  [%d] w/ %s\n", i+1, v)
	}
	fmt.Fprint(w, "\nYour choice: ")
}

func renderOrder(w io.Writer, active session.ActiveOrder) {
	fmt.Fprintln(w, "\n--- ORDER DETAILS ---")
	fmt.Fprintf(w, "Order Number: #%d\n", active.Order.OrderNumber)
	fmt.Fprintf(w, "Customer: %s\n", active.Order.CustomerName)
	fmt.Fprintf(w, "Table: %s\n", active.Order.TableIdentifier)

	if len(active.Items) == 0 {
		fmt.Fprintln(w, "Order is empty.")
	} else {
		fmt.Fprintf(w, "\n===== Order #%d =====\n", active.Order.OrderNumber)
		fmt.Fprintf(w, "Total Items: %d\n", len(active.Items))
		fmt.Fprintln(w, "--------------------------------")
		for i, item := range active.Items {
			fmt.Fprintf(w, "%d. %s x%d - %s\n", i+1, item.Name, item.Quantity, php(item.Subtotal()))
		}
		fmt.Fprintln(w, "================================")
	}

	fmt.Fprintf(w, "Current Total: %s\n", php(active.Total))
}

func renderReceipt(w io.Writer, order domain.CompletedOrder) {
	fmt.Fprintln(w)
	banner(w, "SIZZLESYNC RECEIPT")
	fmt.Fprintf(w, "Order #: %d\n", order.OrderNumber)
	fmt.Fprintf(w, "Customer: %s\n", strings.ToUpper(order.CustomerName))
	fmt.Fprintf(w, "Table: %s\n", order.TableIdentifier)
	fmt.Fprintf(w, "Date/Time: %s\n", order.CompletedAt.Format(time.DateTime))
	fmt.Fprintln(w, lightRule)
	fmt.Fprintln(w, "ITEMS ORDERED:")
	fmt.Fprintln(w, lightRule)

	for i, item := range order.Items {
		fmt.Fprintf(w, "  %d. %-25s x%d\n", i+1, item.Name, item.Quantity)
		fmt.Fprintf(w, "     %s each = %s\n", php(item.UnitPrice), php(item.Subtotal()))
	}

	fmt.Fprintln(w, lightRule)
	fmt.Fprintf(w, "TOTAL ITEMS: %d\n", order.ItemCount())
	fmt.Fprintf(w, "TOTAL AMOUNT: %s\n", php(order.Total))
	fmt.Fprintln(w, lightRule)
	fmt.Fprintln(w, "         THANK YOU FOR DINING WITH US!")
	fmt.Fprintln(w, heavyRule)
}

func renderQueue(w io.Writer, pending []domain.PendingOrder) {
	fmt.Fprintln(w, "\n--- PENDING ORDERS QUEUE ---")
	if len(pending) == 0 {
		fmt.Fprintln(w, "No pending orders in queue.")
		return
	}

	fmt.Fprintln(w, "\n===== PENDING ORDERS QUEUE =====")
	fmt.Fprintf(w, "Total Orders Waiting: %d\n", len(pending))
	fmt.Fprintln(w, "--------------------------------")
	for i, o := range pending {
		next := ""
		if i == 0 {
			next = " (Next to Process)"
		}
		fmt.Fprintf(w, "%d. Order #%d - %s (Table %s)%s\n", i+1, o.OrderNumber, o.CustomerName, o.TableIdentifier, next)
		fmt.Fprintf(w, "   Placed at: %s\n", o.SubmittedAt.Format(time.TimeOnly))
	}
	fmt.Fprintln(w, "================================")

	fmt.Fprintln(w, "\n===== ORDER QUEUE STATUS =====")
	fmt.Fprintln(w, "Status: ACTIVE")
	fmt.Fprintf(w, "Pending Orders: %d\n", len(pending))
	fmt.Fprintf(w, "Next to Process: Order #%d - %s\n", pending[0].OrderNumber, pending[0].CustomerName)
	fmt.Fprintln(w, "==============================")
}

func renderSummary(w io.Writer, completed []domain.CompletedOrder, summary domain.SalesSummary, now time.Time) {
	fmt.Fprintln(w)
	banner(w, "DAILY SALES SUMMARY")
	fmt.Fprintf(w, "Date: %s\n", now.Format(time.DateOnly))
	fmt.Fprintf(w, "Total Orders Completed: %d\n", summary.OrderCount)
	fmt.Fprintln(w, lightRule)

	if len(completed) == 0 {
		fmt.Fprintln(w, "No completed orders yet today.")
		return
	}

	for _, o := range completed {
		fmt.Fprintf(w, "Order #%d - %s (Table %s)\n", o.OrderNumber, o.CustomerName, o.TableIdentifier)
		fmt.Fprintf(w, "  Time: %s | Total: %s\n", o.CompletedAt.Format(time.TimeOnly), php(o.Total))
	}

	fmt.Fprintln(w, lightRule)
	fmt.Fprintf(w, "TOTAL SALES: %s\n", php(summary.TotalSales))
	fmt.Fprintf(w, "AVERAGE ORDER: %s\n", php(summary.AverageOrderValue))
	fmt.Fprintf(w, "TOTAL ITEMS SOLD: %d\n", summary.TotalItemsSold)
	fmt.Fprintln(w, heavyRule)
}
