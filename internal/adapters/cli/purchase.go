package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fahrwerk/bikesim/internal/application/simulation/commands"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
)

// NewPurchaseCommand creates the purchase command
func NewPurchaseCommand() *cobra.Command {
	var lines []string

	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Order components from suppliers",
		Long: `Order components from suppliers into the home warehouse.

Each order line has the form supplier:component:quantity. Deliveries may
shrink when a supplier ships a defective batch, and are capped by the home
warehouse's free space. Only delivered units are charged.

Examples:
  bikesim purchase --session mygame --line velotech_supplies:laufradsatz_standard:20
  bikesim purchase --session mygame \
    --line bikeparts_pro:rahmen_herren:10 \
    --line bikeparts_pro:lenker_comfort:10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return runPurchase(sessionName, lines)
		},
	}

	cmd.Flags().StringArrayVar(&lines, "line", nil, "Order line supplier:component:quantity (repeatable)")
	cmd.MarkFlagRequired("line")

	return cmd
}

func runPurchase(session string, rawLines []string) error {
	order := make([]simulation.PurchaseOrderLine, 0, len(rawLines))
	for _, raw := range rawLines {
		parts, err := splitLine(raw, 3)
		if err != nil {
			return err
		}
		qty, err := parseQuantity(parts[2], raw)
		if err != nil {
			return err
		}
		order = append(order, simulation.PurchaseOrderLine{
			Supplier:  parts[0],
			Component: parts[1],
			Quantity:  qty,
		})
	}

	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &commands.PurchaseMaterialsCommand{
		Session: session,
		Lines:   order,
	})
	if err != nil {
		return err
	}
	result := response.(*commands.PurchaseMaterialsResponse)

	printWarnings(result.Result.Warnings)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Component", "Received", "Rejected"}),
	)
	for _, item := range sortedMapKeys(result.Result.Received) {
		table.Append([]string{
			item,
			fmt.Sprintf("%d", result.Result.Received[item]),
			fmt.Sprintf("%d", result.Result.Rejected[item]),
		})
	}
	table.Render()

	fmt.Printf("Total cost: %s\n", formatMoney(result.Result.TotalCost))
	fmt.Printf("Balance:    %s\n", formatMoney(result.Balance))
	return nil
}
