package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fahrwerk/bikesim/internal/application/simulation/commands"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
)

// NewProduceCommand creates the produce command
func NewProduceCommand() *cobra.Command {
	var lines []string

	cmd := &cobra.Command{
		Use:   "produce",
		Short: "Build bicycles from stocked components",
		Long: `Build bicycles from stocked components.

Each production line has the form model:tier:quantity, where tier is one
of budget, standard, or premium. Lines run in order and are cut down to
whatever the remaining labor hours, the scarcest component, and the home
warehouse's free space allow. Finished bicycles land in the home warehouse.

Examples:
  bikesim produce --session mygame --line herrenrad:standard:10
  bikesim produce --session mygame --line e_bike:premium:5 --line damenrad:budget:8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return runProduce(sessionName, lines)
		},
	}

	cmd.Flags().StringArrayVar(&lines, "line", nil, "Production line model:tier:quantity (repeatable)")
	cmd.MarkFlagRequired("line")

	return cmd
}

func runProduce(session string, rawLines []string) error {
	plan := make([]simulation.ProductionLine, 0, len(rawLines))
	for _, raw := range rawLines {
		parts, err := splitLine(raw, 3)
		if err != nil {
			return err
		}
		tier, err := parseTier(parts[1], raw)
		if err != nil {
			return err
		}
		qty, err := parseQuantity(parts[2], raw)
		if err != nil {
			return err
		}
		plan = append(plan, simulation.ProductionLine{
			Model:    parts[0],
			Tier:     tier,
			Quantity: qty,
		})
	}

	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &commands.ProduceBicyclesCommand{
		Session: session,
		Lines:   plan,
	})
	if err != nil {
		return err
	}
	result := response.(*commands.ProduceBicyclesResponse)

	printWarnings(result.Result.Warnings)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Bicycle", "Produced"}),
	)
	for _, item := range sortedMapKeys(result.Result.Produced) {
		table.Append([]string{item, fmt.Sprintf("%d", result.Result.Produced[item])})
	}
	table.Render()

	fmt.Printf("Skilled hours:   %.1f\n", result.Result.SkilledHours)
	fmt.Printf("Unskilled hours: %.1f\n", result.Result.UnskilledHours)
	fmt.Printf("Labor cost:      %s\n", formatMoney(result.Result.LaborCost))
	fmt.Printf("Balance:         %s\n", formatMoney(result.Balance))
	return nil
}
