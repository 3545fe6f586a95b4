package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fahrwerk/bikesim/internal/application/simulation/commands"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
)

// NewShipCommand creates the ship command
func NewShipCommand() *cobra.Command {
	var lines []string

	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Ship finished bicycles to markets",
		Long: `Ship finished bicycles from the warehouses to a sales market.

Each shipment line has the form model:tier:market:quantity. Quantities are
cut to the combined warehouse stock. Each shipment drains the warehouse
with the cheapest transport route to the market first, and transport is
charged per bicycle per route.

Examples:
  bikesim ship --session mygame --line herrenrad:standard:muenster:10
  bikesim ship --session mygame --line e_bike:premium:toulouse:5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return runShip(sessionName, lines)
		},
	}

	cmd.Flags().StringArrayVar(&lines, "line", nil, "Shipment line model:tier:market:quantity (repeatable)")
	cmd.MarkFlagRequired("line")

	return cmd
}

func runShip(session string, rawLines []string) error {
	plan := make([]simulation.DistributionLine, 0, len(rawLines))
	for _, raw := range rawLines {
		parts, err := splitLine(raw, 4)
		if err != nil {
			return err
		}
		tier, err := parseTier(parts[1], raw)
		if err != nil {
			return err
		}
		qty, err := parseQuantity(parts[3], raw)
		if err != nil {
			return err
		}
		plan = append(plan, simulation.DistributionLine{
			Model:    parts[0],
			Tier:     tier,
			Market:   parts[2],
			Quantity: qty,
		})
	}

	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &commands.DistributeCommand{
		Session: session,
		Lines:   plan,
	})
	if err != nil {
		return err
	}
	result := response.(*commands.DistributeResponse)

	printWarnings(result.Result.Warnings)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Market", "Bicycle", "Shipped"}),
	)
	for _, market := range sortedMapKeys(result.Result.Shipped) {
		for _, item := range sortedMapKeys(result.Result.Shipped[market]) {
			table.Append([]string{
				market,
				item,
				fmt.Sprintf("%d", result.Result.Shipped[market][item]),
			})
		}
	}
	table.Render()

	fmt.Printf("Shipping cost: %s\n", formatMoney(result.Result.ShippingCost))
	fmt.Printf("Balance:       %s\n", formatMoney(result.Balance))
	return nil
}
