package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fahrwerk/bikesim/internal/application/simulation/queries"
	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
)

// NewReportCommand creates the report command
func NewReportCommand() *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a business report",
		Long: `Show the business report for the running month, or for an already
closed month when --month is given.

The report covers the balance, the month's expenses and revenues by
category, storage fill levels, and the stock held in every warehouse
and market.

Examples:
  bikesim report --session mygame
  bikesim report --session mygame --month 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return runReport(sessionName, month)
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Closed month to report on (default: the running month)")

	return cmd
}

func runReport(session string, month int) error {
	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &queries.GetReportQuery{
		Session: session,
		Month:   month,
	})
	if err != nil {
		return err
	}
	result := response.(*queries.GetReportResponse)
	report := result.Report

	fmt.Printf("Month %d", report.Month)
	if result.Status == simulation.StatusGameOver {
		fmt.Print(" (game over)")
	}
	fmt.Println()
	fmt.Printf("Balance:  %s\n", formatMoney(report.Balance))
	fmt.Printf("Expenses: %s\n", formatMoney(report.Expenses))
	fmt.Printf("Revenues: %s\n", formatMoney(report.Revenues))
	fmt.Printf("Profit:   %s\n", formatMoney(report.Profit))
	fmt.Printf("Workers:  %d skilled, %d unskilled\n", report.Skilled, report.Unskilled)

	if len(report.ByCategory) > 0 {
		fmt.Println("\nCash flow by category:")
		table := tablewriter.NewTable(os.Stdout,
			tablewriter.WithHeader([]string{"Category", "Amount"}),
		)
		for _, cat := range ledger.AllCategories() {
			amount, ok := report.ByCategory[cat]
			if !ok {
				continue
			}
			table.Append([]string{cat.String(), formatMoney(amount)})
		}
		table.Render()
	}

	fmt.Println("\nStorage:")
	storage := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Warehouse", "Used", "Capacity", "Fill"}),
	)
	for _, id := range sortedMapKeys(report.Storage) {
		usage := report.Storage[id]
		storage.Append([]string{
			id,
			fmt.Sprintf("%.1f", usage.Used),
			fmt.Sprintf("%.0f", usage.Capacity),
			fmt.Sprintf("%.1f%%", usage.Percentage()),
		})
	}
	storage.Render()

	printStockTable("Warehouse stock:", "Warehouse", report.Warehouse)
	printStockTable("Market stock:", "Market", report.Markets)
	return nil
}

// printStockTable renders a location -> item -> quantity map
func printStockTable(title, location string, stock map[string]map[string]int) {
	rows := 0
	for _, items := range stock {
		rows += len(items)
	}
	if rows == 0 {
		return
	}

	fmt.Println("\n" + title)
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{location, "Item", "Quantity"}),
	)
	for _, loc := range sortedMapKeys(stock) {
		for _, item := range sortedMapKeys(stock[loc]) {
			table.Append([]string{loc, item, fmt.Sprintf("%d", stock[loc][item])})
		}
	}
	table.Render()
}
