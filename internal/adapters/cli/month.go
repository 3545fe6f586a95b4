package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fahrwerk/bikesim/internal/application/simulation/commands"
)

// NewCloseMonthCommand creates the close-month command
func NewCloseMonthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close-month",
		Short: "End the current month",
		Long: `End the current month: rent falls due when the quarter closes, the
monthly demand draw sells bicycles off the markets, and the simulation
moves on. A negative balance after the close ends the run.

Examples:
  bikesim close-month --session mygame`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return runCloseMonth(sessionName)
		},
	}
}

func runCloseMonth(session string) error {
	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &commands.CloseMonthCommand{
		Session: session,
	})
	if err != nil {
		return err
	}
	result := response.(*commands.CloseMonthResponse)

	fmt.Printf("Month %d closed\n", result.ClosedMonth)

	if result.Rent.Due {
		fmt.Printf("Rent paid: %s\n", formatMoney(result.Rent.Total))
	}

	if len(result.Sales.Sales) > 0 {
		table := tablewriter.NewTable(os.Stdout,
			tablewriter.WithHeader([]string{"Market", "Bicycle", "Tier", "Demand", "Sold", "Unsold", "Price", "Revenue"}),
		)
		for _, sale := range result.Sales.Sales {
			table.Append([]string{
				sale.Market,
				sale.Model,
				string(sale.Tier),
				fmt.Sprintf("%d", sale.Demand),
				fmt.Sprintf("%d", sale.Sold),
				fmt.Sprintf("%d", sale.Unsold),
				formatMoney(sale.Price),
				formatMoney(sale.Revenue),
			})
		}
		table.Render()
	}
	fmt.Printf("Revenue: %s\n", formatMoney(result.Sales.TotalRevenue))
	fmt.Printf("Profit:  %s\n", formatMoney(result.Report.Profit))
	fmt.Printf("Balance: %s\n", formatMoney(result.Balance))

	if result.GameOver {
		fmt.Println("The company is bankrupt. Game over.")
	}
	return nil
}
