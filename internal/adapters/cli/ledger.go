package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fahrwerk/bikesim/internal/application/simulation/queries"
)

// NewLedgerCommand creates the ledger command
func NewLedgerCommand() *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show the cash flow statement",
		Long: `Show a cash flow statement built from the session's financial ledger.

Every balance-affecting operation is booked as a ledger entry: material
purchases, labor, transfer fees, salaries, shipping, rent, and sales. The
statement groups entries by category and nets inflows against outflows.

Examples:
  bikesim ledger --session mygame
  bikesim ledger --session mygame --month 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return runLedger(sessionName, month)
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Restrict to one month (default: the whole run)")

	return cmd
}

func runLedger(session string, month int) error {
	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &queries.GetCashFlowQuery{
		Session: session,
		Month:   month,
	})
	if err != nil {
		return err
	}
	result := response.(*queries.GetCashFlowResponse)

	fmt.Printf("Cash flow for %s\n", result.Period)

	if len(result.Categories) == 0 {
		fmt.Println("No ledger entries in this period.")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Category", "Entries", "Inflow", "Outflow", "Net"}),
	)
	for _, flow := range result.Categories {
		table.Append([]string{
			flow.Category,
			fmt.Sprintf("%d", flow.Entries),
			formatMoney(flow.TotalInflow),
			formatMoney(flow.TotalOutflow),
			formatMoney(flow.NetFlow),
		})
	}
	table.Render()

	fmt.Printf("Net cash flow: %s\n", formatMoney(result.Net))
	return nil
}
